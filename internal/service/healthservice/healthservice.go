package healthservice

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/GlebRadaev/donations/internal/domain"
)

//go:generate mockgen -source=healthservice.go -destination=mock_healthservice.go -package=healthservice

type Pinger interface {
	Ping(ctx context.Context) error
}

type UserCounter interface {
	Count(ctx context.Context) (int64, error)
}

type Service struct {
	db    Pinger
	users UserCounter
	now   func() time.Time
}

func New(db Pinger, users UserCounter) *Service {
	return &Service{
		db:    db,
		users: users,
		now:   time.Now,
	}
}

func (s *Service) Check(ctx context.Context) (*domain.HealthReport, error) {
	if err := s.db.Ping(ctx); err != nil {
		zap.L().Error("database ping failed", zap.Error(err))
		return nil, fmt.Errorf("database unreachable: %w", err)
	}
	count, err := s.users.Count(ctx)
	if err != nil {
		zap.L().Error("can't count users", zap.Error(err))
		return nil, err
	}
	return &domain.HealthReport{
		UserCount: count,
		Timestamp: s.now().UTC(),
	}, nil
}
