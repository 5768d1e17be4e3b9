package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/2400031249Gowtham/Certification-Trackerr/internal/api/handlers"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/auth"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/config"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/metrics"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/middleware"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/models"
	"github.com/2400031249Gowtham/Certification-Trackerr/internal/services"
)

type RouterDeps struct {
	Cfg     config.Config
	TM      *auth.TokenManager
	UserSvc *services.UserService
	CertSvc *services.CertificationService
	DashSvc *services.DashboardService
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(d.Cfg.RateRPS), middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	ah := handlers.NewAuthHandler(d.UserSvc, d.TM)
	uh := handlers.NewUsersHandler(d.UserSvc)
	ch := handlers.NewCertificationsHandler(d.CertSvc)
	dh := handlers.NewDashboardHandler(d.DashSvc)
	am := middleware.NewAuthMiddleware(d.TM)

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", ah.Register)
		r.Post("/auth/login", ah.Login)
		r.Post("/auth/refresh", ah.Refresh)

		r.Group(func(r chi.Router) {
			r.Use(am.Auth)

			r.With(middleware.RequireRole(models.RoleAdmin)).Get("/users", uh.List)

			r.Route("/certifications", func(r chi.Router) {
				r.Get("/", ch.List)
				r.Post("/", ch.Create)
				r.Get("/{id}", ch.Get)
				r.Patch("/{id}", ch.Patch)
				r.Delete("/{id}", ch.Delete)
			})

			r.Get("/dashboard", dh.Overview)
		})
	})

	return r
}
