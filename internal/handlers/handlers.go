package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/GlebRadaev/donations/docs"
	adminhandlers "github.com/GlebRadaev/donations/internal/handlers/admin"
	authhandlers "github.com/GlebRadaev/donations/internal/handlers/auth"
	donationhandlers "github.com/GlebRadaev/donations/internal/handlers/donations"
	healthhandlers "github.com/GlebRadaev/donations/internal/handlers/health"
	paymenthandlers "github.com/GlebRadaev/donations/internal/handlers/payment"
	"github.com/GlebRadaev/donations/internal/service"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type DonationHandler interface {
	GetDonations(w http.ResponseWriter, r *http.Request)
	CreateDonation(w http.ResponseWriter, r *http.Request)
}

type PaymentHandler interface {
	Verify(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	GetStats(w http.ResponseWriter, r *http.Request)
}

type HealthHandler interface {
	Check(w http.ResponseWriter, r *http.Request)
}

// Guard protects the /admin and /user areas, pages and API alike.
type Guard interface {
	Middleware(next http.Handler) http.Handler
}

type Options struct {
	CookieSecure   bool
	WebDir         string
	AllowedOrigins []string
}

type Handlers struct {
	AuthHandler     AuthHandler
	DonationHandler DonationHandler
	PaymentHandler  PaymentHandler
	AdminHandler    AdminHandler
	HealthHandler   HealthHandler

	guard Guard
	opts  Options
}

func New(s *service.Services, guard Guard, opts Options) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService, opts.CookieSecure),
		DonationHandler: donationhandlers.New(s.DonationService),
		PaymentHandler:  paymenthandlers.New(s.PaymentService),
		AdminHandler:    adminhandlers.New(s.AdminService),
		HealthHandler:   healthhandlers.New(s.HealthService),
		guard:           guard,
		opts:            opts,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	if len(h.opts.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   h.opts.AllowedOrigins,
			AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Authorization"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	r.Use(h.guard.Middleware)

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.HealthHandler.Check)
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.AuthHandler.Register)
			r.Post("/login", h.AuthHandler.Login)
			r.Post("/logout", h.AuthHandler.Logout)
		})
		r.Post("/payment/verify", h.PaymentHandler.Verify)
		r.Route("/user", func(r chi.Router) {
			r.Get("/donation", h.DonationHandler.GetDonations)
			r.Post("/donation", h.DonationHandler.CreateDonation)
		})
		r.Get("/admin/stats", h.AdminHandler.GetStats)
	})

	if h.opts.WebDir != "" {
		r.Handle("/*", pageHandler(h.opts.WebDir))
	}

	return r
}
