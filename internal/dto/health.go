package dto

type HealthResponseDTO struct {
	Status    string `json:"status" example:"ok"`
	Message   string `json:"message" example:"Database connection successful"`
	UserCount int64  `json:"userCount" example:"42"`
	Timestamp string `json:"timestamp" example:"2024-06-10T09:15:00Z"`
}
