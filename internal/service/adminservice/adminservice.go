package adminservice

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/donations/internal/domain"
)

//go:generate mockgen -source=adminservice.go -destination=mock_adminservice.go -package=adminservice

const (
	DefaultRecentLimit = 10
	unknownUserName    = "Unknown"
)

type UserRepo interface {
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context) ([]domain.User, error)
}

type DonationRepo interface {
	SumAmountByStatus(ctx context.Context, status domain.DonationStatus) (decimal.Decimal, error)
	ListRecent(ctx context.Context, limit int) ([]domain.RecentDonation, error)
}

type Service struct {
	userRepo     UserRepo
	donationRepo DonationRepo
}

func New(userRepo UserRepo, donationRepo DonationRepo) *Service {
	return &Service{
		userRepo:     userRepo,
		donationRepo: donationRepo,
	}
}

func (s *Service) Stats(ctx context.Context) (domain.Stats, error) {
	g, ctx := errgroup.WithContext(ctx)
	var stats domain.Stats
	g.Go(func() error {
		count, err := s.userRepo.Count(ctx)
		if err != nil {
			return err
		}
		stats.TotalUsers = count
		return nil
	})
	g.Go(func() error {
		total, err := s.donationRepo.SumAmountByStatus(ctx, domain.StatusSuccess)
		if err != nil {
			return err
		}
		stats.TotalRaised = total
		return nil
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("failed to collect stats", zap.Error(err))
		return domain.Stats{}, err
	}
	return stats, nil
}

// RecentDonations returns the newest donations across all users. A
// non-positive limit falls back to DefaultRecentLimit.
func (s *Service) RecentDonations(ctx context.Context, limit int) ([]domain.RecentDonation, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	recent, err := s.donationRepo.ListRecent(ctx, limit)
	if err != nil {
		zap.L().Error("failed to get recent donations", zap.Error(err))
		return nil, err
	}
	for i := range recent {
		if recent[i].UserName == "" {
			recent[i].UserName = unknownUserName
		}
	}
	if recent == nil {
		recent = make([]domain.RecentDonation, 0)
	}
	return recent, nil
}

func (s *Service) AllUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		zap.L().Error("failed to list users", zap.Error(err))
		return nil, err
	}
	if users == nil {
		users = make([]domain.User, 0)
	}
	return users, nil
}

// Dashboard gathers everything the admin page shows. Any failed query fails
// the whole call.
func (s *Service) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	g, gctx := errgroup.WithContext(ctx)
	var dashboard domain.Dashboard
	g.Go(func() error {
		stats, err := s.Stats(gctx)
		if err != nil {
			return err
		}
		dashboard.Stats = stats
		return nil
	})
	g.Go(func() error {
		recent, err := s.RecentDonations(gctx, DefaultRecentLimit)
		if err != nil {
			return err
		}
		dashboard.RecentDonations = recent
		return nil
	})
	g.Go(func() error {
		users, err := s.AllUsers(gctx)
		if err != nil {
			return err
		}
		dashboard.Users = users
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &dashboard, nil
}
