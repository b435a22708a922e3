package service

import (
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/donations/internal/repo"
	"github.com/GlebRadaev/donations/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repos := &repo.Repositories{
		DB:           mockDB,
		UserRepo:     repo.NewMockUserRepo(ctrl),
		DonationRepo: repo.NewMockDonationRepo(ctrl),
	}

	services := New(repos, auth.NewMockJWTServiceInterface(ctrl), "INR")

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.DonationService)
	assert.NotNil(t, services.PaymentService)
	assert.NotNil(t, services.AdminService)
	assert.NotNil(t, services.HealthService)
	assert.Same(t, services.DonationService, services.PaymentService)
}
