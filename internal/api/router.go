package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/revelve/revelve-backend/internal/api/handlers"
	"github.com/revelve/revelve-backend/internal/auth"
	"github.com/revelve/revelve-backend/internal/config"
	"github.com/revelve/revelve-backend/internal/metrics"
	"github.com/revelve/revelve-backend/internal/middleware"
	"github.com/revelve/revelve-backend/internal/services"
)

func NewRouter(cfg config.Config, ls *services.LedgerService, cs *services.CampaignService, ds *services.DashboardService) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(cfg.RateRPS), middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	tm := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer)
	authmw := middleware.NewAuthMiddleware(tm, cfg.Env)

	credits := handlers.NewCreditsHandler(ls)
	campaigns := handlers.NewCampaignHandler(cs)
	dashboard := handlers.NewDashboardHandler(ds)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(authmw.Auth)

		r.Route("/campaigns", func(r chi.Router) {
			r.Post("/", campaigns.Create)
			r.Get("/", campaigns.List)
			r.Get("/{id}", campaigns.Get)
			r.Put("/{id}", campaigns.UpdateDetails)
			r.Patch("/{id}/status", campaigns.UpdateStatus)
			r.Post("/{id}/superboost", campaigns.Superboost)
		})

		r.Route("/credits", func(r chi.Router) {
			r.Get("/", credits.Get)
			r.Post("/deduct", credits.Deduct)
			r.Post("/claim", credits.Claim)
			r.Post("/welcome", credits.Welcome)
		})

		r.Get("/dashboard", dashboard.Summary)
	})

	return r
}
