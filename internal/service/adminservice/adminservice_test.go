package adminservice

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/donations/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockUserRepo, *MockDonationRepo) {
	ctrl := gomock.NewController(t)
	userRepo := NewMockUserRepo(ctrl)
	donationRepo := NewMockDonationRepo(ctrl)
	service := New(userRepo, donationRepo)
	return service, userRepo, donationRepo
}

func TestStats(t *testing.T) {
	tests := []struct {
		name          string
		prepareMock   func(userRepo *MockUserRepo, donationRepo *MockDonationRepo)
		expected      domain.Stats
		expectedError error
	}{
		{
			name: "Only successful donations are counted",
			prepareMock: func(userRepo *MockUserRepo, donationRepo *MockDonationRepo) {
				userRepo.EXPECT().Count(gomock.Any()).Return(int64(2), nil)
				donationRepo.EXPECT().SumAmountByStatus(gomock.Any(), domain.StatusSuccess).Return(decimal.NewFromInt(300), nil)
			},
			expected: domain.Stats{TotalUsers: 2, TotalRaised: decimal.NewFromInt(300)},
		},
		{
			name: "Count error",
			prepareMock: func(userRepo *MockUserRepo, donationRepo *MockDonationRepo) {
				userRepo.EXPECT().Count(gomock.Any()).Return(int64(0), errors.New("database error"))
				donationRepo.EXPECT().SumAmountByStatus(gomock.Any(), domain.StatusSuccess).Return(decimal.Zero, nil).AnyTimes()
			},
			expectedError: errors.New("database error"),
		},
		{
			name: "Sum error",
			prepareMock: func(userRepo *MockUserRepo, donationRepo *MockDonationRepo) {
				userRepo.EXPECT().Count(gomock.Any()).Return(int64(2), nil).AnyTimes()
				donationRepo.EXPECT().SumAmountByStatus(gomock.Any(), domain.StatusSuccess).Return(decimal.Zero, errors.New("sum failed"))
			},
			expectedError: errors.New("sum failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo, donationRepo := NewMock(t)
			tt.prepareMock(userRepo, donationRepo)

			stats, err := service.Stats(context.Background())
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected.TotalUsers, stats.TotalUsers)
			assert.True(t, tt.expected.TotalRaised.Equal(stats.TotalRaised))
		})
	}
}

func TestRecentDonations(t *testing.T) {
	service, _, donationRepo := NewMock(t)
	ownerID := uuid.New()

	t.Run("Default limit and unknown owner", func(t *testing.T) {
		donationRepo.EXPECT().ListRecent(gomock.Any(), DefaultRecentLimit).Return([]domain.RecentDonation{
			{Donation: domain.Donation{ID: uuid.New(), UserID: &ownerID}, UserName: "Asha"},
			{Donation: domain.Donation{ID: uuid.New()}, UserName: ""},
		}, nil)

		recent, err := service.RecentDonations(context.Background(), 0)
		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.Equal(t, "Asha", recent[0].UserName)
		assert.Equal(t, "Unknown", recent[1].UserName)
	})

	t.Run("Explicit limit", func(t *testing.T) {
		donationRepo.EXPECT().ListRecent(gomock.Any(), 3).Return(nil, nil)

		recent, err := service.RecentDonations(context.Background(), 3)
		require.NoError(t, err)
		assert.NotNil(t, recent)
		assert.Empty(t, recent)
	})

	t.Run("Repository error", func(t *testing.T) {
		donationRepo.EXPECT().ListRecent(gomock.Any(), DefaultRecentLimit).Return(nil, errors.New("database error"))

		_, err := service.RecentDonations(context.Background(), -1)
		assert.Error(t, err)
	})
}

func TestAllUsers(t *testing.T) {
	service, userRepo, _ := NewMock(t)
	users := []domain.User{
		{ID: uuid.New(), Name: "Admin", Email: "admin@example.com", Role: domain.RoleAdmin},
		{ID: uuid.New(), Name: "Asha", Email: "asha@example.com", Role: domain.RoleUser},
	}

	userRepo.EXPECT().List(gomock.Any()).Return(users, nil)
	result, err := service.AllUsers(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, users, result)

	userRepo.EXPECT().List(gomock.Any()).Return(nil, nil)
	result, err = service.AllUsers(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, []domain.User{}, result)

	userRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("database error"))
	_, err = service.AllUsers(context.Background())
	assert.Error(t, err)
}

func TestDashboard(t *testing.T) {
	service, userRepo, donationRepo := NewMock(t)
	users := []domain.User{{ID: uuid.New(), Name: "Asha", Role: domain.RoleUser}}
	recent := []domain.RecentDonation{{Donation: domain.Donation{ID: uuid.New()}, UserName: "Asha"}}

	t.Run("All queries succeed", func(t *testing.T) {
		userRepo.EXPECT().Count(gomock.Any()).Return(int64(1), nil)
		userRepo.EXPECT().List(gomock.Any()).Return(users, nil)
		donationRepo.EXPECT().SumAmountByStatus(gomock.Any(), domain.StatusSuccess).Return(decimal.NewFromInt(300), nil)
		donationRepo.EXPECT().ListRecent(gomock.Any(), DefaultRecentLimit).Return(recent, nil)

		dashboard, err := service.Dashboard(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(1), dashboard.Stats.TotalUsers)
		assert.Equal(t, "300", dashboard.Stats.TotalRaised.String())
		assert.Equal(t, recent, dashboard.RecentDonations)
		assert.Equal(t, users, dashboard.Users)
	})

	t.Run("One failing query fails the dashboard", func(t *testing.T) {
		userRepo.EXPECT().Count(gomock.Any()).Return(int64(1), nil).AnyTimes()
		userRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("database error"))
		donationRepo.EXPECT().SumAmountByStatus(gomock.Any(), domain.StatusSuccess).Return(decimal.NewFromInt(300), nil).AnyTimes()
		donationRepo.EXPECT().ListRecent(gomock.Any(), DefaultRecentLimit).Return(recent, nil).AnyTimes()

		dashboard, err := service.Dashboard(context.Background())
		assert.Error(t, err)
		assert.Nil(t, dashboard)
	})
}
