package health

import (
	"context"
	"net/http"
	"time"

	"github.com/GlebRadaev/donations/internal/domain"
	"github.com/GlebRadaev/donations/internal/dto"
	"github.com/GlebRadaev/donations/pkg/utils"
)

//go:generate mockgen -source=health.go -destination=mock_health.go -package=health

type Service interface {
	Check(ctx context.Context) (*domain.HealthReport, error)
}

type HealthHandler struct {
	healthService Service
}

func New(healthService Service) *HealthHandler {
	return &HealthHandler{
		healthService: healthService,
	}
}

// Check godoc
//
//	@Summary		Health check
//	@Description	Ping the database and report the number of registered users
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	dto.HealthResponseDTO
//	@Failure		500	{object}	dto.HealthResponseDTO
//	@Router			/api/health [get]
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	report, err := h.healthService.Check(r.Context())
	if err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, dto.HealthResponseDTO{
			Status:    "error",
			Message:   "Database connection failed",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.HealthResponseDTO{
		Status:    "ok",
		Message:   "Database connection successful",
		UserCount: report.UserCount,
		Timestamp: report.Timestamp.Format(time.RFC3339),
	})
}
