package repo

import (
	"github.com/GlebRadaev/donations/internal/pg"
	donationrepo "github.com/GlebRadaev/donations/internal/repo/donation-repo"
	userrepo "github.com/GlebRadaev/donations/internal/repo/user-repo"
	"github.com/GlebRadaev/donations/internal/service/adminservice"
	"github.com/GlebRadaev/donations/internal/service/authservice"
	"github.com/GlebRadaev/donations/internal/service/donationservice"
)

//go:generate mockgen -source=repo.go -destination=mock_repo.go -package=repo

type UserRepo interface {
	authservice.Repo
	adminservice.UserRepo
}

type DonationRepo interface {
	donationservice.Repo
	adminservice.DonationRepo
}

type Repositories struct {
	DB           pg.Database
	UserRepo     UserRepo
	DonationRepo DonationRepo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		DB:           conn,
		UserRepo:     userrepo.New(conn),
		DonationRepo: donationrepo.New(conn, txManager),
	}
}
