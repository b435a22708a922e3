package service

import (
	"github.com/GlebRadaev/donations/internal/handlers/admin"
	"github.com/GlebRadaev/donations/internal/handlers/auth"
	"github.com/GlebRadaev/donations/internal/handlers/donations"
	"github.com/GlebRadaev/donations/internal/handlers/health"
	"github.com/GlebRadaev/donations/internal/handlers/payment"
	"github.com/GlebRadaev/donations/internal/repo"
	"github.com/GlebRadaev/donations/internal/service/adminservice"
	"github.com/GlebRadaev/donations/internal/service/authservice"
	"github.com/GlebRadaev/donations/internal/service/donationservice"
	"github.com/GlebRadaev/donations/internal/service/healthservice"
	pkgauth "github.com/GlebRadaev/donations/pkg/auth"
)

type Services struct {
	AuthService     auth.Service
	DonationService donations.Service
	PaymentService  payment.Service
	AdminService    admin.Service
	HealthService   health.Service
}

// New wires the services. jwtService is the same instance the request guard
// verifies tokens with.
func New(repo *repo.Repositories, jwtService pkgauth.JWTServiceInterface, currency string) *Services {
	donationService := donationservice.New(repo.DonationRepo, currency)

	return &Services{
		AuthService:     authservice.New(repo.UserRepo, &pkgauth.HashService{}, jwtService),
		DonationService: donationService,
		PaymentService:  donationService,
		AdminService:    adminservice.New(repo.UserRepo, repo.DonationRepo),
		HealthService:   healthservice.New(repo.DB, repo.UserRepo),
	}
}
