package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"mnemo/internal/auth"
	"mnemo/internal/model"
	"mnemo/internal/repo"
)

type DeckHandler struct {
	Repo *repo.DeckRepo
}

type deckReq struct {
	Name         string            `json:"name"`
	Description  *string           `json:"description"`
	IsPublic     bool              `json:"is_public"`
	IsUserOption bool              `json:"is_user_option"`
	Option       *deckOptionFields `json:"option"`
}

type deckOptionFields struct {
	NewCardsPerDay      int  `json:"new_cards_per_day"`
	ReviewLimitPerDay   int  `json:"review_limit_per_day"`
	SortOrder           int  `json:"sort_order"`
	InterdayLearningMix bool `json:"interday_learning_mix"`
}

func (o *deckOptionFields) model() *model.DeckOption {
	return &model.DeckOption{
		NewCardsPerDay:      o.NewCardsPerDay,
		ReviewLimitPerDay:   o.ReviewLimitPerDay,
		SortOrder:           model.DeckSortOrder(o.SortOrder),
		InterdayLearningMix: o.InterdayLearningMix,
	}
}

func (q deckReq) params() repo.DeckParams {
	p := repo.DeckParams{
		Name:         strings.TrimSpace(q.Name),
		Description:  q.Description,
		IsPublic:     q.IsPublic,
		IsUserOption: q.IsUserOption,
	}
	if q.Option != nil {
		p.Option = q.Option.model()
	}
	return p
}

func (h *DeckHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	res, err := h.Repo.List(r.Context(), uid, pageRequest(r, uid), wantDeleted(r))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writePage(w, res, uid)
}

func (h *DeckHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	deck, err := h.Repo.Get(r.Context(), uid, id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, deck)
}

func (h *DeckHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req deckReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	p := req.params()
	if p.Name == "" {
		http.Error(w, "name required", http.StatusBadRequest)
		return
	}

	deck, err := h.Repo.Create(r.Context(), uid, p)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, deck)
}

func (h *DeckHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req deckReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	p := req.params()
	if p.Name == "" {
		http.Error(w, "name required", http.StatusBadRequest)
		return
	}

	n, err := h.Repo.Update(r.Context(), id, uid, p)
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

func (h *DeckHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.setDeleted(w, r, true)
}

func (h *DeckHandler) Restore(w http.ResponseWriter, r *http.Request) {
	h.setDeleted(w, r, false)
}

func (h *DeckHandler) setDeleted(w http.ResponseWriter, r *http.Request, deleted bool) {
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
