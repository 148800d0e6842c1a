package rest

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterConfig holds the HTTP surface settings.
type RouterConfig struct {
	CORSOrigins []string
	// RateLimitPerMinute is the per-IP budget on /api, 0 disables the limit.
	RateLimitPerMinute int
}

// NewRouter wires the REST endpoints under /api, the websocket endpoint on /ws,
// /metrics and /health.
func NewRouter(log *slog.Logger, config RouterConfig, handler *Handler, ws http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: config.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         86400,
	}))

	r.Get("/health", handler.Health)
	r.Handle("/metrics", promhttp.Handler())
	if ws != nil {
		r.Handle("/ws", ws)
	}

	r.Route("/api", func(r chi.Router) {
		if config.RateLimitPerMinute > 0 {
			r.Use(httprate.Limit(config.RateLimitPerMinute, time.Minute,
				httprate.WithKeyFuncs(httprate.KeyByIP),
				httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
					respondMessage(w, log, http.StatusTooManyRequests, "Too many requests")
				})))
		}
		r.Use(Metrics)

		r.Route("/ratings", func(r chi.Router) {
			r.Post("/", handler.CreateRating)
			r.Get("/recipeId/{id}", handler.ListRatings)
			r.Get("/likes/{id}", handler.LikesCount)
			r.Get("/average/{id}", handler.AverageRating)
			r.Get("/{ratingId}", handler.GetRating)
			r.Put("/{ratingId}", handler.UpdateRating)
			r.Delete("/{ratingId}", handler.DeleteRating)
		})

		r.Route("/favorites", func(r chi.Router) {
			r.Post("/", handler.AddFavorite)
			r.Delete("/", handler.RemoveFavorite)
			r.Get("/recipeId/{id}", handler.ListFavorites)
			r.Get("/count/{id}", handler.FavoritesCount)
			r.Get("/userId/{id}", handler.ListUserFavorites)
		})

		r.Route("/comments", func(r chi.Router) {
			r.Post("/", handler.AddComment)
			r.Put("/{commentId}", handler.EditComment)
			r.Delete("/{commentId}", handler.DeleteComment)
			r.Get("/recipeId/{id}", handler.ListComments)
		})

		r.Get("/recipes/{id}/stats", handler.RecipeStats)
		r.Get("/chat/stats", handler.ChatStats)
	})

	return r
}
