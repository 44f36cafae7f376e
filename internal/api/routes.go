package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

const requestTimeout = 30 * time.Second

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)
	r.Use(securityHeadersMiddleware)
	r.Use(timeoutMiddleware(requestTimeout))

	r.Get("/health", s.handleHealth)
	r.Get("/ready", s.handleReady)

	r.Get("/profiles", s.handleProfiles)
	r.Post("/profiles", s.handleCreateProfile)
	r.Route("/profiles/{profileID}", func(r chi.Router) {
		r.Use(s.profileMiddleware)

		r.Get("/", s.handleGetProfile)
		r.Delete("/", s.handleDeleteProfile)
		r.Post("/day", s.handleSetDay)

		r.Get("/cards", s.handleListCards)
		r.Post("/cards", s.handleCreateCard)
		r.Get("/cards/{cardID}", s.handleGetCard)
		r.Delete("/cards/{cardID}", s.handleDeleteCard)
		r.Get("/cards/{cardID}/hint", s.handleHint)
		r.Post("/cards/{cardID}/review", s.handleReviewCard)

		r.Post("/reviews", s.handleReviewBatch)
		r.Get("/practice", s.handlePractice)
		r.Get("/schedule", s.handleSchedule)
		r.Get("/progress", s.handleProgress)
		r.Post("/import", s.handleImport)
	})
	return r
}
