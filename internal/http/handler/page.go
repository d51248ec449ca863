package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"mnemo/internal/pagination"
	"mnemo/internal/repo"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const defaultPageSize = 20

// pageRequest reads the page_size and cursor query params. The opaque cursor
// binds a row position to the user it was issued for; a malformed or foreign
// token degrades to the first page rather than erroring.
func pageRequest(r *http.Request, userID string) pagination.Request {
	req := pagination.Request{PageSize: defaultPageSize}

	if v := r.URL.Query().Get("page_size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= pagination.MinPageSize && n <= pagination.MaxPageSize {
			req.PageSize = n
		}
	}

	if token := r.URL.Query().Get("cursor"); token != "" {
		if rowID, owner, ok := pagination.DecodeCursor[uint64](token); ok && owner.String() == userID {
			req.CursorID = &rowID
		}
	}
	return req
}

func wantDeleted(r *http.Request) bool {
	return r.URL.Query().Get("deleted") == "true"
}

type pageDTO[T any] struct {
	Data        []T    `json:"data"`
	TotalCount  int64  `json:"total_count"`
	PageSize    int    `json:"page_size"`
	HasPrevious bool   `json:"has_previous"`
	HasNext     bool   `json:"has_next"`
	NextCursor  string `json:"next_cursor,omitempty"`
}

func writePage[T pagination.Row](w http.ResponseWriter, res *pagination.Result[T], userID string) {
	var next string
	if res.HasNext && len(res.Data) > 0 {
		if owner, err := uuid.Parse(userID); err == nil {
			next = pagination.EncodeCursor(res.Data[len(res.Data)-1].KeysetID(), owner)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(pageDTO[T]{
		Data:        res.Data,
		TotalCount:  res.TotalCount,
		PageSize:    res.PageSize,
		HasPrevious: res.HasPrevious,
		HasNext:     res.HasNext,
		NextCursor:  next,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeRepoError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repo.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, repo.ErrDeckNotFound):
		http.Error(w, "deck not found", http.StatusNotFound)
	case errors.Is(err, repo.ErrNoteTypeNotFound):
		http.Error(w, "note type not found", http.StatusNotFound)
	case errors.Is(err, repo.ErrNoteNotFound):
		http.Error(w, "note not found", http.StatusNotFound)
	case errors.Is(err, repo.ErrNameTaken):
		http.Error(w, "name already taken", http.StatusConflict)
	case errors.Is(err, repo.ErrMissingOption):
		http.Error(w, "deck option required", http.StatusUnprocessableEntity)
	default:
		http.Error(w, "server error", http.StatusInternalServerError)
	}
}

func pathID(r *http.Request, param string) (uint64, bool) {
	id, err := strconv.ParseUint(chi.URLParam(r, param), 10, 64)
	return id, err == nil
}
