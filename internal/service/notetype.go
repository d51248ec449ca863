package service

import (
	"context"

	"mnemo/internal/model"
	"mnemo/internal/repo"
	"mnemo/internal/sanitize"
)

// NoteTypeService sanitizes template markup and styles before anything
// reaches the repository.
type NoteTypeService struct {
	Repo *repo.NoteTypeRepo
}

func (s *NoteTypeService) Create(ctx context.Context, creatorID string, p repo.NoteTypeParams) (*model.NoteType, error) {
	return s.Repo.Create(ctx, creatorID, cleanupNoteType(p))
}

func (s *NoteTypeService) Update(ctx context.Context, id uint64, creatorID string, p repo.NoteTypeParams) (int64, error) {
	return s.Repo.Update(ctx, id, creatorID, cleanupNoteType(p))
}

// cleanupNoteType re-serializes every template face through the HTML
// sanitizer and the stylesheet through the CSS parser. A template whose
// front or back carries no usable markup is dropped from the set.
func cleanupNoteType(p repo.NoteTypeParams) repo.NoteTypeParams {
	cleaned := make(model.TemplateList, 0, len(p.Templates))
	for _, t := range p.Templates {
		front, okFront := sanitize.HTML(t.Front)
		back, okBack := sanitize.HTML(t.Back)
		if !okFront || !okBack {
			continue
		}
		cleaned = append(cleaned, model.Template{Front: front, Back: back})
	}
	p.Templates = cleaned
	p.CssStyle = sanitize.CSS(p.CssStyle)
	return p
}
