package repo

import "errors"

// Creation and update failures are reported as distinct sentinels so the
// HTTP layer can map each to its own status instead of a bare nil result.
var (
	ErrNotFound         = errors.New("not found")
	ErrNameTaken        = errors.New("name already taken")
	ErrMissingOption    = errors.New("deck option unresolved")
	ErrDeckNotFound     = errors.New("deck not found")
	ErrNoteTypeNotFound = errors.New("note type not found")
	ErrNoteNotFound     = errors.New("note not found")
)
