package domain

import "fmt"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdmin:
		return Role(s), nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

type DonationStatus string

const (
	StatusPending DonationStatus = "pending"
	StatusSuccess DonationStatus = "success"
	StatusFailed  DonationStatus = "failed"
)

func ParseDonationStatus(s string) (DonationStatus, error) {
	switch DonationStatus(s) {
	case StatusPending, StatusSuccess, StatusFailed:
		return DonationStatus(s), nil
	default:
		return "", fmt.Errorf("unknown donation status %q", s)
	}
}

// IsTerminal reports whether no further payment outcome may change the status.
func (s DonationStatus) IsTerminal() bool {
	switch s {
	case StatusSuccess, StatusFailed:
		return true
	default:
		return false
	}
}

// Outcome is the result reported by the payment step.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailed  Outcome = "failed"
)

func ParseOutcome(s string) (Outcome, error) {
	switch Outcome(s) {
	case OutcomeSuccess, OutcomeFailed:
		return Outcome(s), nil
	default:
		return "", fmt.Errorf("unknown payment outcome %q", s)
	}
}

func (o Outcome) Status() DonationStatus {
	switch o {
	case OutcomeSuccess:
		return StatusSuccess
	case OutcomeFailed:
		return StatusFailed
	default:
		return StatusPending
	}
}
