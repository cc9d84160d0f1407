package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/arenascope/arenascope/internal/api/handler"
	"github.com/arenascope/arenascope/internal/config"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(h *handler.Handler, cfg *config.Config) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type"},
		ExposedHeaders:   []string{"X-Process-Time", "Content-Disposition"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Routes ---

	// Health check
	r.Get("/health", h.HealthCheck)

	// Swagger UI
	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Player resolution
		r.Get("/player/{gameName}/{tagLine}", h.GetPlayer)

		// Match history
		r.Get("/matches/{puuid}", h.GetMatches)
		r.Route("/arena", func(r chi.Router) {
			r.Get("/matches/{puuid}", h.GetArenaMatches)
			r.Get("/matches/{puuid}/csv", h.GetArenaMatchesCSV)
		})

		// Static asset URLs
		r.Route("/images", func(r chi.Router) {
			r.Get("/champion/{name}", h.GetChampionImage)
			r.Get("/item/{id}", h.GetItemImage)
			r.Get("/augment/{id}", h.GetAugmentImage)
			r.Post("/champions", h.GetChampionImages)
			r.Post("/items", h.GetItemImages)
		})

		// Reference data
		r.Get("/augments", h.GetAugments)

		// Prediction bridge
		r.Post("/predict-arena-win", h.PredictArenaWin)
		r.Post("/predict-arena-placements", h.PredictArenaPlacements)
	})

	return r
}
