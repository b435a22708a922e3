package admin

import (
	"context"
	"net/http"

	"github.com/GlebRadaev/donations/internal/domain"
	"github.com/GlebRadaev/donations/internal/dto"
	"github.com/GlebRadaev/donations/pkg/utils"
)

//go:generate mockgen -source=admin.go -destination=mock_admin.go -package=admin

type Service interface {
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
}

type AdminHandler struct {
	adminService Service
}

func New(adminService Service) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
	}
}

// GetStats godoc
//
//	@Summary		Admin dashboard
//	@Description	Total users, total raised from successful donations, the ten newest donations and all users
//	@Tags			Admin
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	dto.AdminStatsResponseDTO
//	@Failure		401	{object}	utils.Response	"Unauthorized"
//	@Failure		500	{object}	utils.Response	"Failed to fetch admin stats"
//	@Router			/api/admin/stats [get]
func (h *AdminHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.adminService.Dashboard(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch admin stats")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.NewAdminStatsResponseDTO(dashboard))
}
