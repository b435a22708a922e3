package donationrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/GlebRadaev/donations/internal/domain"
	"github.com/GlebRadaev/donations/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

func scanDonation(row pgx.Row, extra ...any) (domain.Donation, error) {
	var d domain.Donation
	var status string
	dest := append([]any{&d.ID, &d.UserID, &d.Amount, &d.Currency, &status, &d.TransactionID, &d.CreatedAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return domain.Donation{}, err
	}
	parsed, err := domain.ParseDonationStatus(status)
	if err != nil {
		return domain.Donation{}, err
	}
	d.Status = parsed
	return d, nil
}

func (r *Repository) Create(ctx context.Context, donation *domain.Donation) error {
	query := `
        INSERT INTO donations (id, user_id, amount, currency, status)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING created_at
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, query, donation.ID, donation.UserID, donation.Amount, donation.Currency, string(donation.Status)).
			Scan(&donation.CreatedAt)
		if err != nil {
			zap.L().Error("can't save donation", zap.Error(err))
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Donation, error) {
	query := `
        SELECT id, user_id, amount, currency, status, transaction_id, created_at
        FROM donations
        WHERE id = $1
    `
	donation, err := scanDonation(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find donation", zap.Error(err))
		return nil, err
	}
	return &donation, nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]domain.Donation, error) {
	query := `
        SELECT id, user_id, amount, currency, status, transaction_id, created_at
        FROM donations
        WHERE user_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		zap.L().Error("can't get donations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	donations := make([]domain.Donation, 0)
	for rows.Next() {
		donation, err := scanDonation(rows)
		if err != nil {
			zap.L().Error("can't scan donation row", zap.Error(err))
			return nil, err
		}
		donations = append(donations, donation)
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate donation rows", zap.Error(err))
		return nil, err
	}
	return donations, nil
}

// UpdateOutcome moves a pending donation to its terminal status. It reports
// false when the row is no longer pending.
func (r *Repository) UpdateOutcome(ctx context.Context, donation *domain.Donation) (bool, error) {
	query := `
        UPDATE donations
        SET status = $1, transaction_id = $2
        WHERE id = $3 AND status = 'pending'
    `
	var updated bool
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		tag, err := r.db.Exec(ctx, query, string(donation.Status), donation.TransactionID, donation.ID)
		if err != nil {
			zap.L().Error("failed to update donation", zap.Error(err))
			return err
		}
		updated = tag.RowsAffected() == 1
		return nil
	})
	if err != nil {
		return false, err
	}
	return updated, nil
}

func (r *Repository) SumAmountByStatus(ctx context.Context, status domain.DonationStatus) (decimal.Decimal, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM donations
        WHERE status = $1
    `
	var total decimal.Decimal
	if err := r.db.QueryRow(ctx, query, string(status)).Scan(&total); err != nil {
		zap.L().Error("can't sum donations", zap.String("status", string(status)), zap.Error(err))
		return decimal.Zero, err
	}
	return total, nil
}

func (r *Repository) ListRecent(ctx context.Context, limit int) ([]domain.RecentDonation, error) {
	query := `
        SELECT d.id, d.user_id, d.amount, d.currency, d.status, d.transaction_id, d.created_at, COALESCE(u.name, '')
        FROM donations d
        LEFT JOIN users u ON u.id = d.user_id
        ORDER BY d.created_at DESC
        LIMIT $1
    `
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		zap.L().Error("can't get recent donations", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	recent := make([]domain.RecentDonation, 0, limit)
	for rows.Next() {
		var userName string
		donation, err := scanDonation(rows, &userName)
		if err != nil {
			zap.L().Error("can't scan recent donation row", zap.Error(err))
			return nil, err
		}
		recent = append(recent, domain.RecentDonation{Donation: donation, UserName: userName})
	}
	if err := rows.Err(); err != nil {
		zap.L().Error("can't iterate recent donation rows", zap.Error(err))
		return nil, err
	}
	return recent, nil
}
