package donations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/GlebRadaev/donations/internal/domain"
	"github.com/GlebRadaev/donations/internal/dto"
	"github.com/GlebRadaev/donations/internal/service/donationservice"
	"github.com/GlebRadaev/donations/pkg/auth"
	"github.com/GlebRadaev/donations/pkg/utils"
)

//go:generate mockgen -source=donations.go -destination=mock_donations.go -package=donations

type Service interface {
	Create(ctx context.Context, ownerID uuid.UUID, amount decimal.Decimal) (*domain.Donation, error)
	ListForUser(ctx context.Context, ownerID uuid.UUID) ([]domain.Donation, error)
}

type DonationHandler struct {
	donationService Service
}

func New(donationService Service) *DonationHandler {
	return &DonationHandler{
		donationService: donationService,
	}
}

// GetDonations godoc
//
//	@Summary		List donations of the current user
//	@Description	Return the caller's donations, newest first
//	@Tags			Donations
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.GetDonationsResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Failed to fetch donations"
//	@Router			/api/user/donation [get]
func (h *DonationHandler) GetDonations(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	donations, err := h.donationService.ListForUser(r.Context(), identity.UserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch donations")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.GetDonationsResponseDTO{
		Success:   true,
		Donations: dto.NewDonationDTOs(donations),
	})
}

// CreateDonation godoc
//
//	@Summary		Create a donation
//	@Description	Create a pending donation for the current user in the configured currency
//	@Tags			Donations
//	@Accept			json
//	@Produce		json
//	@Param			request	body	dto.CreateDonationRequestDTO	true	"Donation amount"
//	@Security		BearerAuth
//	@Success		201	{object}	dto.CreateDonationResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid amount"
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Failed to create donation"
//	@Router			/api/user/donation [post]
func (h *DonationHandler) CreateDonation(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.FromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req dto.CreateDonationRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Amount == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid amount")
		return
	}

	donation, err := h.donationService.Create(r.Context(), identity.UserID, *req.Amount)
	if err != nil {
		if errors.Is(err, donationservice.ErrInvalidAmount) {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid amount")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create donation")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, dto.CreateDonationResponseDTO{
		Success:  true,
		Message:  "Donation created",
		Donation: dto.NewDonationDTO(donation),
	})
}
