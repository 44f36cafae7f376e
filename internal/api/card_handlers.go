package api

import (
	"net/http"

	"github.com/vytor/leitnerflash/internal/logger"
	"github.com/vytor/leitnerflash/internal/models"
)

type createCardRequest struct {
	Front string   `json:"front"`
	Back  string   `json:"back"`
	Hint  string   `json:"hint"`
	Tags  []string `json:"tags"`
}

func (s *Server) handleListCards(w http.ResponseWriter, r *http.Request) {
	filter := models.CardFilter{
		ProfileID: profileFromContext(r.Context()).ID,
		Tag:       r.URL.Query().Get("tag"),
	}

	bucket, err := queryInt(r, "bucket")
	if err != nil {
		handleError(w, r, err)
		return
	}
	filter.Bucket = bucket
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(w, r, err)
		return
	}
	if limit != nil {
		filter.Limit = *limit
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		handleError(w, r, err)
		return
	}
	if offset != nil {
		filter.Offset = *offset
	}

	cards, err := s.CardService.ListCards(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, cards)
}

func (s *Server) handleCreateCard(w http.ResponseWriter, r *http.Request) {
	var req createCardRequest
	if err := requireJSON(w, r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	card, err := s.CardService.CreateCard(r.Context(), models.Card{
		ProfileID: profileFromContext(r.Context()).ID,
		Front:     req.Front,
		Back:      req.Back,
		Hint:      req.Hint,
		Tags:      req.Tags,
	})
	if err != nil {
		handleError(w, r, err)
		return
	}
	logger.FromContext(r.Context()).Info("card created: id=%d", card.ID)
	writeJSON(w, r, http.StatusCreated, card)
}

func (s *Server) handleGetCard(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "cardID")
	if err != nil {
		handleError(w, r, err)
		return
	}
	card, err := s.CardService.GetCard(r.Context(), profileFromContext(r.Context()).ID, id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, card)
}

func (s *Server) handleDeleteCard(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "cardID")
	if err != nil {
		handleError(w, r, err)
		return
	}
	if err := s.CardService.DeleteCard(r.Context(), profileFromContext(r.Context()).ID, id); err != nil {
		handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "cardID")
	if err != nil {
		handleError(w, r, err)
		return
	}
	hint, err := s.CardService.GetHint(r.Context(), profileFromContext(r.Context()).ID, id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"card_id": id, "hint": hint})
}
