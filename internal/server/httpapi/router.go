package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", s.Register)
		r.Post("/login", s.Login)

		r.Group(func(r chi.Router) {
			r.Use(s.authMiddleware)
			r.Get("/entries", s.ListEntries)
			r.Post("/entries/batch", s.AppendBatch)
			r.Post("/archive", s.CreateArchive)
			r.Get("/archive/url", s.GetArchiveURL)
		})
	})

	return r
}
