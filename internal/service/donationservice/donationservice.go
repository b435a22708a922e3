package donationservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/donations/internal/domain"
)

//go:generate mockgen -source=donationservice.go -destination=mock_donationservice.go -package=donationservice

type Repo interface {
	Create(ctx context.Context, donation *domain.Donation) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Donation, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Donation, error)
	UpdateOutcome(ctx context.Context, donation *domain.Donation) (bool, error)
}

type Service struct {
	repo     Repo
	currency string
	now      func() time.Time
	newTxnID func(time.Time) (string, error)
}

func New(repo Repo, currency string) *Service {
	return &Service{
		repo:     repo,
		currency: strings.ToUpper(currency),
		now:      time.Now,
		newTxnID: newTransactionID,
	}
}

// Amounts are stored as NUMERIC(12,2).
const amountScale = 2

var maxAmount = decimal.New(1, 10)

var (
	ErrInvalidAmount     = errors.New("amount must be between 0.01 and 9999999999.99 in whole cents")
	ErrDonationNotFound  = errors.New("donation not found")
	ErrDonationFinalized = errors.New("donation already finalized")
	ErrInvalidOutcome    = errors.New("outcome must be success or failed")
)

func (s *Service) Create(ctx context.Context, ownerID uuid.UUID, amount decimal.Decimal) (*domain.Donation, error) {
	if !validAmount(amount) {
		return nil, ErrInvalidAmount
	}

	owner := ownerID
	donation := &domain.Donation{
		ID:       uuid.New(),
		UserID:   &owner,
		Amount:   amount,
		Currency: s.currency,
		Status:   domain.StatusPending,
	}
	if err := s.repo.Create(ctx, donation); err != nil {
		zap.L().Error("can't create donation", zap.Error(err))
		return nil, err
	}

	zap.L().Info("donation created",
		zap.String("donationID", donation.ID.String()),
		zap.String("userID", ownerID.String()),
		zap.String("amount", amount.String()),
	)
	return donation, nil
}

func validAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() &&
		amount.LessThan(maxAmount) &&
		amount.Equal(amount.Round(amountScale))
}

func (s *Service) ListForUser(ctx context.Context, ownerID uuid.UUID) ([]domain.Donation, error) {
	donations, err := s.repo.FindByUserID(ctx, ownerID)
	if err != nil {
		zap.L().Error("failed to get donations", zap.Error(err))
		return nil, err
	}
	if donations == nil {
		donations = make([]domain.Donation, 0)
	}
	return donations, nil
}

// ApplyOutcome finalizes a pending donation. Repeating the outcome that a
// donation already has returns it unchanged; the opposite outcome on a
// finalized donation yields ErrDonationFinalized.
func (s *Service) ApplyOutcome(ctx context.Context, id uuid.UUID, outcome domain.Outcome) (*domain.Donation, error) {
	status := outcome.Status()
	if !status.IsTerminal() {
		return nil, ErrInvalidOutcome
	}

	donation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zap.L().Error("can't find donation", zap.Error(err))
		return nil, err
	}
	if donation == nil {
		return nil, ErrDonationNotFound
	}
	if donation.Status.IsTerminal() {
		return settled(donation, status)
	}

	updated := *donation
	updated.Status = status
	updated.TransactionID = nil
	if status == domain.StatusSuccess {
		txnID, err := s.newTxnID(s.now())
		if err != nil {
			zap.L().Error("can't generate transaction id", zap.Error(err))
			return nil, err
		}
		updated.TransactionID = &txnID
	}

	ok, err := s.repo.UpdateOutcome(ctx, &updated)
	if err != nil {
		zap.L().Error("can't update donation", zap.Error(err))
		return nil, err
	}
	if !ok {
		// another verification finalized it first
		current, err := s.repo.FindByID(ctx, id)
		if err != nil {
			zap.L().Error("can't find donation", zap.Error(err))
			return nil, err
		}
		if current == nil {
			return nil, ErrDonationNotFound
		}
		return settled(current, status)
	}

	zap.L().Info("donation finalized",
		zap.String("donationID", updated.ID.String()),
		zap.String("status", string(updated.Status)),
	)
	return &updated, nil
}

func settled(donation *domain.Donation, requested domain.DonationStatus) (*domain.Donation, error) {
	if donation.Status == requested {
		return donation, nil
	}
	zap.L().Info("donation already finalized",
		zap.String("donationID", donation.ID.String()),
		zap.String("status", string(donation.Status)),
		zap.String("requested", string(requested)),
	)
	return nil, ErrDonationFinalized
}
