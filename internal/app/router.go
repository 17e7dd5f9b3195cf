package app

import (
	gameAPI "bowling_backend/internal/api/game"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func newRouter(gameHandler *gameAPI.Handler, allowedOrigins []string) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)

	// CORS middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           60 * 15,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Game endpoints
	r.Route("/api/game", func(rr chi.Router) {
		rr.Post("/", gameHandler.Create)
		rr.Get("/{id}", gameHandler.Get)
		rr.Post("/{id}/roll", gameHandler.Roll)
	})

	return r
}
