package admin

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/donations/internal/domain"
	"github.com/GlebRadaev/donations/internal/dto"
)

func TestGetStatsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)

	t.Run("Dashboard returned", func(t *testing.T) {
		service.EXPECT().Dashboard(gomock.Any()).Return(&domain.Dashboard{
			Stats: domain.Stats{TotalUsers: 4, TotalRaised: decimal.NewFromInt(300)},
			RecentDonations: []domain.RecentDonation{
				{Donation: domain.Donation{ID: uuid.New(), Amount: decimal.NewFromInt(200), Status: domain.StatusSuccess}, UserName: "Asha"},
				{Donation: domain.Donation{ID: uuid.New(), Amount: decimal.NewFromInt(100), Status: domain.StatusSuccess}, UserName: "Unknown"},
			},
			Users: []domain.User{{ID: uuid.New(), Name: "Asha", Email: "asha@example.com", PasswordHash: "hash", Role: domain.RoleUser}},
		}, nil)

		r := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
		w := httptest.NewRecorder()
		handler.GetStats(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "password")
		var body dto.AdminStatsResponseDTO
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, int64(4), body.Stats.TotalUsers)
		assert.Equal(t, float64(300), body.Stats.TotalRaised)
		require.Len(t, body.RecentDonations, 2)
		assert.Equal(t, "Unknown", body.RecentDonations[1].UserName)
		require.Len(t, body.Users, 1)
	})

	t.Run("Dashboard error", func(t *testing.T) {
		service.EXPECT().Dashboard(gomock.Any()).Return(nil, errors.New("database error"))

		r := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
		w := httptest.NewRecorder()
		handler.GetStats(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Failed to fetch admin stats")
		assert.NotContains(t, w.Body.String(), "database error")
	})
}
