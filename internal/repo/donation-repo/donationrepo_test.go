package donationrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/GlebRadaev/donations/internal/domain"
	"github.com/GlebRadaev/donations/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)

	return repo, mockDB, mockTxManager
}

func passThrough(txManager *pg.MockTXManager) {
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
		return fn(ctx)
	})
}

var donationColumns = []string{"id", "user_id", "amount", "currency", "status", "transaction_id", "created_at"}

func strPtr(s string) *string { return &s }

func TestRepository_Create(t *testing.T) {
	repo, mock, txManager := NewMock(t)
	donationID, userID := uuid.New(), uuid.New()
	amount := decimal.NewFromInt(100)
	createdAt := time.Now()
	insertQuery := regexp.QuoteMeta("INSERT INTO donations (id, user_id, amount, currency, status)")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Donation saved",
			mockSetup: func() {
				passThrough(txManager)
				mock.ExpectQuery(insertQuery).
					WithArgs(donationID, &userID, amount, "INR", "pending").
					WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(createdAt))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				passThrough(txManager)
				mock.ExpectQuery(insertQuery).
					WithArgs(donationID, &userID, amount, "INR", "pending").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
		{
			name: "Transaction error",
			mockSetup: func() {
				txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).Return(errors.New("can't begin transaction"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			donation := &domain.Donation{
				ID:       donationID,
				UserID:   &userID,
				Amount:   amount,
				Currency: "INR",
				Status:   domain.StatusPending,
			}
			err := repo.Create(context.Background(), donation)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, createdAt, donation.CreatedAt)
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	donationID, userID := uuid.New(), uuid.New()
	createdAt := time.Now()
	findQuery := regexp.QuoteMeta("SELECT id, user_id, amount, currency, status, transaction_id, created_at FROM donations WHERE id = $1")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Donation
	}{
		{
			name: "Donation exists",
			mockSetup: func() {
				rows := pgxmock.NewRows(donationColumns).
					AddRow(donationID, &userID, decimal.NewFromInt(250), "INR", "success", strPtr("TXN_1_ABCDEF"), createdAt)
				mock.ExpectQuery(findQuery).WithArgs(donationID).WillReturnRows(rows)
			},
			result: &domain.Donation{
				ID:            donationID,
				UserID:        &userID,
				Amount:        decimal.NewFromInt(250),
				Currency:      "INR",
				Status:        domain.StatusSuccess,
				TransactionID: strPtr("TXN_1_ABCDEF"),
				CreatedAt:     createdAt,
			},
		},
		{
			name: "Donation does not exist",
			mockSetup: func() {
				mock.ExpectQuery(findQuery).WithArgs(donationID).WillReturnError(pgx.ErrNoRows)
			},
			result: nil,
		},
		{
			name: "Unknown stored status",
			mockSetup: func() {
				rows := pgxmock.NewRows(donationColumns).
					AddRow(donationID, &userID, decimal.NewFromInt(250), "INR", "refunded", (*string)(nil), createdAt)
				mock.ExpectQuery(findQuery).WithArgs(donationID).WillReturnRows(rows)
			},
			expectErr: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(findQuery).WithArgs(donationID).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), donationID)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindByUserID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	userID := uuid.New()
	first, second := uuid.New(), uuid.New()
	newer := time.Now()
	older := newer.Add(-time.Hour)
	listQuery := regexp.QuoteMeta("FROM donations WHERE user_id = $1 ORDER BY created_at DESC")

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.Donation
	}{
		{
			name: "Donations found",
			mockSetup: func() {
				rows := pgxmock.NewRows(donationColumns).
					AddRow(first, &userID, decimal.NewFromInt(50), "INR", "pending", (*string)(nil), newer).
					AddRow(second, &userID, decimal.NewFromInt(100), "INR", "failed", (*string)(nil), older)
				mock.ExpectQuery(listQuery).WithArgs(userID).WillReturnRows(rows)
			},
			result: []domain.Donation{
				{ID: first, UserID: &userID, Amount: decimal.NewFromInt(50), Currency: "INR", Status: domain.StatusPending, CreatedAt: newer},
				{ID: second, UserID: &userID, Amount: decimal.NewFromInt(100), Currency: "INR", Status: domain.StatusFailed, CreatedAt: older},
			},
		},
		{
			name: "No donations",
			mockSetup: func() {
				mock.ExpectQuery(listQuery).WithArgs(userID).WillReturnRows(pgxmock.NewRows(donationColumns))
			},
			result: []domain.Donation{},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(listQuery).WithArgs(userID).WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByUserID(context.Background(), userID)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.result, result)
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateOutcome(t *testing.T) {
	repo, mock, txManager := NewMock(t)
	donationID := uuid.New()
	updateQuery := regexp.QuoteMeta("UPDATE donations SET status = $1, transaction_id = $2 WHERE id = $3 AND status = 'pending'")

	tests := []struct {
		name            string
		donation        *domain.Donation
		mockSetup       func()
		expectErr       bool
		expectedUpdated bool
	}{
		{
			name:     "Pending donation succeeds",
			donation: &domain.Donation{ID: donationID, Status: domain.StatusSuccess, TransactionID: strPtr("TXN_1_ABCDEF")},
			mockSetup: func() {
				passThrough(txManager)
				mock.ExpectExec(updateQuery).
					WithArgs("success", strPtr("TXN_1_ABCDEF"), donationID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectedUpdated: true,
		},
		{
			name:     "Pending donation fails",
			donation: &domain.Donation{ID: donationID, Status: domain.StatusFailed},
			mockSetup: func() {
				passThrough(txManager)
				mock.ExpectExec(updateQuery).
					WithArgs("failed", (*string)(nil), donationID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectedUpdated: true,
		},
		{
			name:     "Already terminal",
			donation: &domain.Donation{ID: donationID, Status: domain.StatusFailed},
			mockSetup: func() {
				passThrough(txManager)
				mock.ExpectExec(updateQuery).
					WithArgs("failed", (*string)(nil), donationID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectedUpdated: false,
		},
		{
			name:     "Database error",
			donation: &domain.Donation{ID: donationID, Status: domain.StatusFailed},
			mockSetup: func() {
				passThrough(txManager)
				mock.ExpectExec(updateQuery).
					WithArgs("failed", (*string)(nil), donationID).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			updated, err := repo.UpdateOutcome(context.Background(), tt.donation)
			if tt.expectErr {
				assert.Error(t, err)
				assert.False(t, updated)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedUpdated, updated)
		})
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SumAmountByStatus(t *testing.T) {
	repo, mock, _ := NewMock(t)
	sumQuery := regexp.QuoteMeta("SELECT COALESCE(SUM(amount), 0) FROM donations WHERE status = $1")

	mock.ExpectQuery(sumQuery).
		WithArgs("success").
		WillReturnRows(pgxmock.NewRows([]string{"coalesce"}).AddRow(decimal.NewFromInt(300)))
	total, err := repo.SumAmountByStatus(context.Background(), domain.StatusSuccess)
	assert.NoError(t, err)
	assert.True(t, decimal.NewFromInt(300).Equal(total))

	mock.ExpectQuery(sumQuery).
		WithArgs("success").
		WillReturnError(errors.New("database error"))
	total, err = repo.SumAmountByStatus(context.Background(), domain.StatusSuccess)
	assert.Error(t, err)
	assert.True(t, total.IsZero())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListRecent(t *testing.T) {
	repo, mock, _ := NewMock(t)
	recentQuery := regexp.QuoteMeta("LEFT JOIN users u ON u.id = d.user_id ORDER BY d.created_at DESC LIMIT $1")
	columns := append(append([]string{}, donationColumns...), "name")
	donationID, anonymousID, userID := uuid.New(), uuid.New(), uuid.New()
	newer := time.Now()
	older := newer.Add(-time.Minute)

	rows := pgxmock.NewRows(columns).
		AddRow(donationID, &userID, decimal.NewFromInt(100), "INR", "success", strPtr("TXN_1_ABCDEF"), newer, "Donor").
		AddRow(anonymousID, (*uuid.UUID)(nil), decimal.NewFromInt(5), "INR", "pending", (*string)(nil), older, "")
	mock.ExpectQuery(recentQuery).WithArgs(10).WillReturnRows(rows)

	recent, err := repo.ListRecent(context.Background(), 10)
	assert.NoError(t, err)
	assert.Len(t, recent, 2)
	assert.Equal(t, donationID, recent[0].ID)
	assert.Equal(t, "Donor", recent[0].UserName)
	assert.Equal(t, anonymousID, recent[1].ID)
	assert.Nil(t, recent[1].UserID)
	assert.Equal(t, "", recent[1].UserName)

	mock.ExpectQuery(recentQuery).WithArgs(10).WillReturnError(errors.New("database error"))
	_, err = repo.ListRecent(context.Background(), 10)
	assert.Error(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}
