package healthservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/donations/internal/domain"
)

func TestCheck(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		prepareMock func(db *MockPinger, users *MockUserCounter)
		expectErr   bool
		expected    *domain.HealthReport
	}{
		{
			name: "Database reachable",
			prepareMock: func(db *MockPinger, users *MockUserCounter) {
				db.EXPECT().Ping(gomock.Any()).Return(nil)
				users.EXPECT().Count(gomock.Any()).Return(int64(3), nil)
			},
			expected: &domain.HealthReport{UserCount: 3, Timestamp: fixed},
		},
		{
			name: "Ping fails",
			prepareMock: func(db *MockPinger, users *MockUserCounter) {
				db.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
			},
			expectErr: true,
		},
		{
			name: "Count fails",
			prepareMock: func(db *MockPinger, users *MockUserCounter) {
				db.EXPECT().Ping(gomock.Any()).Return(nil)
				users.EXPECT().Count(gomock.Any()).Return(int64(0), errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			db := NewMockPinger(ctrl)
			users := NewMockUserCounter(ctrl)
			tt.prepareMock(db, users)

			service := New(db, users)
			service.now = func() time.Time { return fixed }

			report, err := service.Check(context.Background())
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, report)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, report)
		})
	}
}
