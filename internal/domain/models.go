package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type User struct {
	ID           uuid.UUID `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Role         Role      `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

type Donation struct {
	ID            uuid.UUID       `db:"id"`
	UserID        *uuid.UUID      `db:"user_id"`
	Amount        decimal.Decimal `db:"amount"`
	Currency      string          `db:"currency"`
	Status        DonationStatus  `db:"status"`
	TransactionID *string         `db:"transaction_id"`
	CreatedAt     time.Time       `db:"created_at"`
}

// RecentDonation is a donation joined with the display name of its owner.
type RecentDonation struct {
	Donation
	UserName string
}

type Stats struct {
	TotalUsers  int64
	TotalRaised decimal.Decimal
}

type Dashboard struct {
	Stats           Stats
	RecentDonations []RecentDonation
	Users           []User
}

type HealthReport struct {
	UserCount int64
	Timestamp time.Time
}
