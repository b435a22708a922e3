package health

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/donations/internal/domain"
	"github.com/GlebRadaev/donations/internal/dto"
)

func TestCheckHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)

	tests := []struct {
		name           string
		prepareMock    func()
		expectedCode   int
		expectedStatus string
		expectedCount  int64
	}{
		{
			name: "Healthy",
			prepareMock: func() {
				service.EXPECT().Check(gomock.Any()).Return(&domain.HealthReport{
					UserCount: 7,
					Timestamp: time.Date(2024, 6, 10, 9, 15, 0, 0, time.UTC),
				}, nil)
			},
			expectedCode:   http.StatusOK,
			expectedStatus: "ok",
			expectedCount:  7,
		},
		{
			name: "Database down",
			prepareMock: func() {
				service.EXPECT().Check(gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			expectedCode:   http.StatusInternalServerError,
			expectedStatus: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			r := httptest.NewRequest(http.MethodGet, "/api/health", nil)
			w := httptest.NewRecorder()
			handler.Check(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.NotContains(t, w.Body.String(), "connection refused")
			var body dto.HealthResponseDTO
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.expectedStatus, body.Status)
			assert.Equal(t, tt.expectedCount, body.UserCount)
			assert.NotEmpty(t, body.Timestamp)
		})
	}
}
