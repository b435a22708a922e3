package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/donations/internal/domain"
)

// CreateDonationRequestDTO accepts the amount as a JSON number or a numeric string.
type CreateDonationRequestDTO struct {
	Amount *decimal.Decimal `json:"amount" swaggertype:"number" example:"500"`
}

type DonationDTO struct {
	ID            string  `json:"id" example:"9f1c2a4e-8b7d-4c21-a0e3-5d2f6b9c1e77"`
	UserID        string  `json:"userId,omitempty" example:"4b0a3e4e-9d51-4ac9-8f0e-0c1d6f7a5a11"`
	Amount        float64 `json:"amount" example:"500"`
	Currency      string  `json:"currency" example:"INR"`
	Status        string  `json:"status" example:"pending"`
	TransactionID string  `json:"transactionId,omitempty" example:"TXN_1718000000123_K3ZQ9A"`
	CreatedAt     string  `json:"createdAt" example:"2024-06-10T09:15:00Z"`
}

type CreateDonationResponseDTO struct {
	Success  bool        `json:"success" example:"true"`
	Message  string      `json:"message" example:"Donation created"`
	Donation DonationDTO `json:"donation"`
}

type GetDonationsResponseDTO struct {
	Success   bool          `json:"success" example:"true"`
	Donations []DonationDTO `json:"donations"`
}

func NewDonationDTO(d *domain.Donation) DonationDTO {
	out := DonationDTO{
		ID:        d.ID.String(),
		Amount:    d.Amount.InexactFloat64(),
		Currency:  d.Currency,
		Status:    string(d.Status),
		CreatedAt: d.CreatedAt.Format(time.RFC3339),
	}
	if d.UserID != nil {
		out.UserID = d.UserID.String()
	}
	if d.TransactionID != nil {
		out.TransactionID = *d.TransactionID
	}
	return out
}

func NewDonationDTOs(donations []domain.Donation) []DonationDTO {
	out := make([]DonationDTO, 0, len(donations))
	for i := range donations {
		out = append(out, NewDonationDTO(&donations[i]))
	}
	return out
}
