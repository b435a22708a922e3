package dto

type VerifyPaymentRequestDTO struct {
	DonationID string `json:"donationId" example:"9f1c2a4e-8b7d-4c21-a0e3-5d2f6b9c1e77"`
	Outcome    string `json:"outcome" enums:"success,failed" example:"success"`
}

type VerifyPaymentResponseDTO struct {
	Success  bool        `json:"success" example:"true"`
	Message  string      `json:"message" example:"Payment completed"`
	Donation DonationDTO `json:"donation"`
}
