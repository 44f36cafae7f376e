package api

import (
	"net/http"

	"github.com/vytor/leitnerflash/internal/errors"
	"github.com/vytor/leitnerflash/internal/flashcard"
	"github.com/vytor/leitnerflash/internal/logger"
	"github.com/vytor/leitnerflash/internal/services"
)

type reviewRequest struct {
	Difficulty flashcard.Difficulty `json:"difficulty"`
}

type batchReviewRequest struct {
	Reviews []services.Review `json:"reviews"`
}

func (s *Server) handlePractice(w http.ResponseWriter, r *http.Request) {
	day, err := queryInt(r, "day")
	if err != nil {
		handleError(w, r, err)
		return
	}
	set, err := s.PracticeService.DueCards(r.Context(), profileFromContext(r.Context()).ID, day)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, set)
}

func (s *Server) handleReviewCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	id, err := idParam(r, "cardID")
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req reviewRequest
	if err := requireJSON(w, r, &req); err != nil {
		handleError(w, r, errors.NewBadRequestError("difficulty required: wrong, hard or easy"))
		return
	}

	result, err := s.PracticeService.ReviewCard(r.Context(), profileFromContext(r.Context()).ID, id, req.Difficulty)
	if err != nil {
		handleError(w, r, err)
		return
	}
	log.Info("card reviewed: card_id=%d, %d -> %d", id, result.FromBucket, result.ToBucket)
	writeJSON(w, r, http.StatusOK, result)
}

func (s *Server) handleReviewBatch(w http.ResponseWriter, r *http.Request) {
	var req batchReviewRequest
	if err := requireJSON(w, r, &req); err != nil {
		handleError(w, r, errors.NewBadRequestError("invalid review batch"))
		return
	}
	if len(req.Reviews) == 0 {
		handleError(w, r, errors.NewValidationError("reviews", "cannot be empty"))
		return
	}

	result, err := s.PracticeService.ReviewBatch(r.Context(), profileFromContext(r.Context()).ID, req.Reviews)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, result)
}

func (s *Server) handleSchedule(w http.ResponseWriter, r *http.Request) {
	stat, err := s.PracticeService.Schedule(r.Context(), profileFromContext(r.Context()).ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, stat)
}

func (s *Server) handleProgress(w http.ResponseWriter, r *http.Request) {
	stat, err := s.PracticeService.Progress(r.Context(), profileFromContext(r.Context()).ID)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, stat)
}
