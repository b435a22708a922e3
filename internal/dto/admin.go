package dto

import (
	"github.com/GlebRadaev/donations/internal/domain"
)

type StatsDTO struct {
	TotalUsers  int64   `json:"totalUsers" example:"42"`
	TotalRaised float64 `json:"totalRaised" example:"300"`
}

type RecentDonationDTO struct {
	DonationDTO
	UserName string `json:"userName" example:"Asha Rao"`
}

type AdminStatsResponseDTO struct {
	Success         bool                `json:"success" example:"true"`
	Stats           StatsDTO            `json:"stats"`
	RecentDonations []RecentDonationDTO `json:"recentDonations"`
	Users           []UserDTO           `json:"users"`
}

func NewAdminStatsResponseDTO(d *domain.Dashboard) AdminStatsResponseDTO {
	recent := make([]RecentDonationDTO, 0, len(d.RecentDonations))
	for i := range d.RecentDonations {
		recent = append(recent, RecentDonationDTO{
			DonationDTO: NewDonationDTO(&d.RecentDonations[i].Donation),
			UserName:    d.RecentDonations[i].UserName,
		})
	}
	users := make([]UserDTO, 0, len(d.Users))
	for i := range d.Users {
		users = append(users, NewUserDTO(&d.Users[i]))
	}
	return AdminStatsResponseDTO{
		Success: true,
		Stats: StatsDTO{
			TotalUsers:  d.Stats.TotalUsers,
			TotalRaised: d.Stats.TotalRaised.InexactFloat64(),
		},
		RecentDonations: recent,
		Users:           users,
	}
}
