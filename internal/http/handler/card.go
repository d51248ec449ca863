package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"mnemo/internal/auth"
	"mnemo/internal/repo"
)

type CardHandler struct {
	Repo *repo.CardRepo
}

func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	deckID, err := strconv.ParseUint(r.URL.Query().Get("deck_id"), 10, 64)
	if err != nil {
		http.Error(w, "deck_id required", http.StatusBadRequest)
		return
	}

	res, err := h.Repo.List(r.Context(), uid, deckID, pageRequest(r, uid), wantDeleted(r))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writePage(w, res, uid)
}

func (h *CardHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	card, err := h.Repo.Get(r.Context(), uid, id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

type createCardReq struct {
	DeckID uint64 `json:"deck_id"`
	NoteID uint64 `json:"note_id"`
	Front  string `json:"front"`
	Back   string `json:"back"`
}

func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req createCardReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Front) == "" {
		http.Error(w, "front required", http.StatusBadRequest)
		return
	}

	card, err := h.Repo.Create(r.Context(), uid, repo.CardParams{
		DeckID: req.DeckID,
		NoteID: req.NoteID,
		Front:  req.Front,
		Back:   req.Back,
	})
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, card)
}

type suspendReq struct {
	Suspended bool `json:"suspended"`
}

func (h *CardHandler) Suspend(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req suspendReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	n, err := h.Repo.SetSuspended(r.Context(), id, uid, req.Suspended)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	if n == 0 {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type scheduleReq struct {
	DueDate  string  `json:"due_date"` // RFC3339
	Interval int     `json:"interval"`
	Ease     float64 `json:"ease"`
}

func (h *CardHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req scheduleReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	due, err := time.Parse(time.RFC3339, req.DueDate)
	if err != nil {
		http.Error(w, "invalid due_date (RFC3339)", http.StatusBadRequest)
		return
	}
	if req.Interval < 0 || req.Ease < 1.3 {
		http.Error(w, "invalid scheduling values", http.StatusBadRequest)
		return
	}

	n, err := h.Repo.Schedule(r.Context(), id, uid, repo.CardReview{
		DueDate:  due.UTC(),
		Interval: req.Interval,
		Ease:     req.Ease,
	})
	if err != nil {
		writeRepoError(w, err)
		return
	}
	if n == 0 {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.setDeleted(w, r, true)
}

func (h *CardHandler) Restore(w http.ResponseWriter, r *http.Request) {
	h.setDeleted(w, r, false)
}

func (h *CardHandler) setDeleted(w http.ResponseWriter, r *http.Request, deleted bool) {
	uid, _ := auth.UserIDFromContext(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var (
		n   int64
		err error
	)
	if deleted {
		n, err = h.Repo.Delete(r.Context(), id, uid)
	} else {
		n, err = h.Repo.Restore(r.Context(), id, uid)
	}
	if err != nil {
		writeRepoError(w, err)
		return
	}
	if n == 0 {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
