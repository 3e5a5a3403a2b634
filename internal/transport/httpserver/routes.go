package httpserver

import (
	"net/http"
	"time"

	"exercise-app-go/internal/config"
	"exercise-app-go/internal/transport/httpserver/handler"
	"exercise-app-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(cfg config.Config, handlers *handler.Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.NewCORS(cfg.CORSOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Health)

		r.Route("/groups", func(r chi.Router) {
			r.Get("/", handlers.ListGroups)
			r.Post("/", handlers.CreateGroup)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", handlers.GetGroup)
				r.Patch("/", handlers.UpdateGroup)
				r.Delete("/", handlers.DeleteGroup)

				r.Post("/likes", handlers.IncrementLike)
				r.Delete("/likes", handlers.DecrementLike)

				r.Post("/participants", handlers.JoinGroup)
				r.Delete("/participants", handlers.LeaveGroup)

				r.Get("/records", handlers.ListRecords)
				r.Post("/records", handlers.CreateRecord)
				r.Get("/records/{recordId}", handlers.GetRecord)

				r.Get("/rankings", handlers.GetRanking)
			})
		})
	})

	return r
}
