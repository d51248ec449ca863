package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"mnemo/internal/auth"
	"mnemo/internal/model"
	"mnemo/internal/repo"
	"mnemo/internal/service"
)

type NoteTypeHandler struct {
	Repo *repo.NoteTypeRepo
	Svc  *service.NoteTypeService
}

type noteTypeReq struct {
	Name      string `json:"name"`
	Templates []struct {
		Front string `json:"front"`
		Back  string `json:"back"`
	} `json:"templates"`
	CssStyle string `json:"css_style"`
}

func (q noteTypeReq) params() repo.NoteTypeParams {
	p := repo.NoteTypeParams{
		Name:     strings.TrimSpace(q.Name),
		CssStyle: q.CssStyle,
	}
	for _, t := range q.Templates {
		p.Templates = append(p.Templates, model.Template{Front: t.Front, Back: t.Back})
	}
	return p
}

func (h *NoteTypeHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	res, err := h.Repo.List(r.Context(), uid, pageRequest(r, uid), wantDeleted(r))
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writePage(w, res, uid)
}

func (h *NoteTypeHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	nt, err := h.Repo.Get(r.Context(), uid, id)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nt)
}

func (h *NoteTypeHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())

	var req noteTypeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	p := req.params()
	if p.Name == "" {
		http.Error(w, "name required", http.StatusBadRequest)
		return
	}
	if len(p.Templates) == 0 {
		http.Error(w, "at least one template required", http.StatusBadRequest)
		return
	}

	nt, err := h.Svc.Create(r.Context(), uid, p)
	if err != nil {
		writeRepoError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, nt)
}

func (h *NoteTypeHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, _ := auth.UserIDFromContext(r.Context())
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req noteTypeReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	p := req.params()
	if p.Name == "" {
		http.Error(w, "name required", http.StatusBadRequest)
		return
	}

	n, err := h.Svc.Update(r.Context(), id, uid, p)
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

func (h *NoteTypeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.setDeleted(w, r, true)
}

func (h *NoteTypeHandler) Restore(w http.ResponseWriter, r *http.Request) {
	h.setDeleted(w, r, false)
}

func (h *NoteTypeHandler) setDeleted(w http.ResponseWriter, r *http.Request, deleted bool) {
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
