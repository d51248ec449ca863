package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"mnemo/internal/auth"
	"mnemo/internal/model"
	"mnemo/internal/repo"
	"mnemo/internal/service"
)

type NoteHandler struct {
	Repo *repo.NoteRepo
	Svc  *service.NoteService
}

type createNotesReq struct {
	DeckID     uint64 `json:"deck_id"`
	NoteTypeID uint64 `json:"note_type_id"`
	Notes      []struct {
		Data model.FieldData  `json:"data"`
		Tags model.StringList `json:"tags"`
	} `json:"notes"`
}

// Create persists a batch of notes against one deck and note type; cards are
// generated from the type's templates inside the same transaction.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req createNotesReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	batch := make([]service.NewNote, 0, len(req.Notes))
	for _, n := range req.Notes {
		batch = append(batch, service.NewNote{Data: n.Data, Tags: n.Tags})
	}

	note, err := h.Svc.Create(r.Context(), uid, req.DeckID, req.NoteTypeID, batch)
	if err != nil {
		if errors.Is(err, service.ErrEmptyBatch) {
			http.Error(w, "notes required", http.StatusBadRequest)
			return
		}
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
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

func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	note, err := h.Repo.Get(r.Context(), uid, id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

type updateNoteReq struct {
	Data model.FieldData  `json:"data"`
	Tags model.StringList `json:"tags"`
}

func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateNoteReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	n, err := h.Svc.Update(r.Context(), id, uid, repo.NoteUpdate{Data: req.Data, Tags: req.Tags})
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

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.setDeleted(w, r, true)
}

func (h *NoteHandler) Restore(w http.ResponseWriter, r *http.Request) {
	h.setDeleted(w, r, false)
}

func (h *NoteHandler) setDeleted(w http.ResponseWriter, r *http.Request, deleted bool) {
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
