package payment

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/GlebRadaev/donations/internal/domain"
	"github.com/GlebRadaev/donations/internal/dto"
	"github.com/GlebRadaev/donations/internal/service/donationservice"
	"github.com/GlebRadaev/donations/pkg/utils"
)

//go:generate mockgen -source=payment.go -destination=mock_payment.go -package=payment

type Service interface {
	ApplyOutcome(ctx context.Context, id uuid.UUID, outcome domain.Outcome) (*domain.Donation, error)
}

type PaymentHandler struct {
	donationService Service
}

func New(donationService Service) *PaymentHandler {
	return &PaymentHandler{
		donationService: donationService,
	}
}

// Verify godoc
//
//	@Summary		Apply a simulated payment outcome
//	@Description	Move a pending donation to success (with a transaction id) or failed
//	@Tags			Payment
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.VerifyPaymentRequestDTO	true	"Payment outcome"
//	@Success		200		{object}	dto.VerifyPaymentResponseDTO
//	@Failure		400		{object}	utils.Response	"Missing donationId or outcome"
//	@Failure		404		{object}	utils.Response	"Donation not found"
//	@Failure		409		{object}	utils.Response	"Donation already finalized"
//	@Failure		500		{object}	utils.Response	"Payment verification failed"
//	@Router			/api/payment/verify [post]
func (h *PaymentHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req dto.VerifyPaymentRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.DonationID == "" || req.Outcome == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing donationId or outcome")
		return
	}
	outcome, err := domain.ParseOutcome(req.Outcome)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, `Invalid outcome. Must be "success" or "failed"`)
		return
	}
	// a malformed id cannot name an existing donation
	id, err := uuid.Parse(req.DonationID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Donation not found")
		return
	}

	donation, err := h.donationService.ApplyOutcome(r.Context(), id, outcome)
	if err != nil {
		switch {
		case errors.Is(err, donationservice.ErrDonationNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Donation not found")
		case errors.Is(err, donationservice.ErrDonationFinalized):
			utils.RespondWithError(w, http.StatusConflict, "Donation already finalized")
		case errors.Is(err, donationservice.ErrInvalidOutcome):
			utils.RespondWithError(w, http.StatusBadRequest, `Invalid outcome. Must be "success" or "failed"`)
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Payment verification failed")
		}
		return
	}

	message := "Payment failed"
	if donation.Status == domain.StatusSuccess {
		message = "Payment completed"
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.VerifyPaymentResponseDTO{
		Success:  true,
		Message:  message,
		Donation: dto.NewDonationDTO(donation),
	})
}
