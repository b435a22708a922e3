package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/donations/internal/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		path     string
		expected Area
	}{
		{"/", AreaPublic},
		{"/login", AreaPublic},
		{"/api/auth/login", AreaPublic},
		{"/api/payment/verify", AreaPublic},
		{"/administrator", AreaPublic},
		{"/users", AreaPublic},
		{"/admin", AreaAdmin},
		{"/admin/dashboard", AreaAdmin},
		{"/api/admin/stats", AreaAdmin},
		{"/user", AreaUser},
		{"/user/dashboard", AreaUser},
		{"/api/user/donation", AreaUser},
		{"//admin/dashboard", AreaAdmin},
		{"/./admin/dashboard", AreaAdmin},
		{"/login/../admin", AreaAdmin},
		{"/./user/dashboard", AreaUser},
		{"//api//user/donation", AreaUser},
		{"/user/../login", AreaPublic},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.path))
		})
	}
}

func newGuardWithTokens(t *testing.T) (*Guard, string, string, uuid.UUID) {
	t.Helper()
	jwtService, err := NewJWTService(testSecret)
	require.NoError(t, err)

	adminID := uuid.New()
	userID := uuid.New()
	adminToken, err := jwtService.GenerateJWT(adminID, "admin@example.com", domain.RoleAdmin, time.Now().Add(time.Hour))
	require.NoError(t, err)
	userToken, err := jwtService.GenerateJWT(userID, "user@example.com", domain.RoleUser, time.Now().Add(time.Hour))
	require.NoError(t, err)

	return NewGuard(jwtService), adminToken, userToken, adminID
}

func TestGuard_Middleware(t *testing.T) {
	guard, adminToken, userToken, _ := newGuardWithTokens(t)

	tests := []struct {
		name             string
		path             string
		header           string
		cookie           string
		expectedCode     int
		expectedLocation string
		expectForward    bool
	}{
		{
			name:          "Public path without token",
			path:          "/api/auth/login",
			expectedCode:  http.StatusOK,
			expectForward: true,
		},
		{
			name:         "API without token",
			path:         "/api/user/donation",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "API with garbage token",
			path:         "/api/user/donation",
			header:       "Bearer garbage",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:          "API with bearer user token",
			path:          "/api/user/donation",
			header:        "Bearer " + userToken,
			expectedCode:  http.StatusOK,
			expectForward: true,
		},
		{
			name:          "API falls back to cookie",
			path:          "/api/user/donation",
			cookie:        userToken,
			expectedCode:  http.StatusOK,
			expectForward: true,
		},
		{
			name:          "API prefers header over cookie",
			path:          "/api/user/donation",
			header:        "Bearer " + userToken,
			cookie:        "garbage",
			expectedCode:  http.StatusOK,
			expectForward: true,
		},
		{
			name:         "API admin area with user role",
			path:         "/api/admin/stats",
			header:       "Bearer " + userToken,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:          "API admin area with admin role",
			path:          "/api/admin/stats",
			header:        "Bearer " + adminToken,
			expectedCode:  http.StatusOK,
			expectForward: true,
		},
		{
			name:             "Page without token redirects to login",
			path:             "/user/dashboard",
			expectedCode:     http.StatusSeeOther,
			expectedLocation: "/login",
		},
		{
			name:             "Page with invalid cookie redirects to login",
			path:             "/admin/dashboard",
			cookie:           "garbage",
			expectedCode:     http.StatusSeeOther,
			expectedLocation: "/login",
		},
		{
			name:             "Admin page with user role redirects to user area",
			path:             "/admin/dashboard",
			cookie:           userToken,
			expectedCode:     http.StatusSeeOther,
			expectedLocation: "/user/dashboard",
		},
		{
			name:          "Page prefers cookie over header",
			path:          "/admin/dashboard",
			cookie:        adminToken,
			header:        "Bearer " + userToken,
			expectedCode:  http.StatusOK,
			expectForward: true,
		},
		{
			name:             "Doubled slash page without token redirects to login",
			path:             "//admin/dashboard",
			expectedCode:     http.StatusSeeOther,
			expectedLocation: "/login",
		},
		{
			name:             "Dot segment page without token redirects to login",
			path:             "/./user/dashboard",
			expectedCode:     http.StatusSeeOther,
			expectedLocation: "/login",
		},
		{
			name:         "Doubled slash API without token",
			path:         "//api/admin/stats",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:          "Page accepts bearer header",
			path:          "/user/dashboard",
			header:        "Bearer " + userToken,
			expectedCode:  http.StatusOK,
			expectForward: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forwarded := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				forwarded = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: CookieName, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()

			guard.Middleware(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)
			assert.Equal(t, tt.expectForward, forwarded)
			if tt.expectedLocation != "" {
				assert.Equal(t, tt.expectedLocation, rec.Header().Get("Location"))
			}
		})
	}
}

func TestGuard_AttachesIdentity(t *testing.T) {
	guard, adminToken, _, adminID := newGuardWithTokens(t)

	var identity Identity
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok = FromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	guard.Middleware(next).ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, ok)
	assert.Equal(t, adminID, identity.UserID)
	assert.Equal(t, domain.RoleAdmin, identity.Role)
	assert.Equal(t, "admin@example.com", identity.Email)
}

func TestGuard_ValidatorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	jwtService := NewMockJWTServiceInterface(ctrl)
	jwtService.EXPECT().ValidateToken("expired").Return(nil, ErrInvalidToken)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not be forwarded")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/user/donation", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rec := httptest.NewRecorder()
	NewGuard(jwtService).Middleware(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := FromContext(req.Context())
	assert.False(t, ok)
}
