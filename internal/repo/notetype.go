package repo

import (
	"context"
	"errors"

	"mnemo/internal/model"
	"mnemo/internal/pagination"

	"gorm.io/gorm"
)

type NoteTypeRepo struct {
	DB *gorm.DB
}

type NoteTypeParams struct {
	Name      string
	Templates model.TemplateList
	CssStyle  string
}

// List pages the caller's note types together with the global ones
// (creator_id IS NULL).
func (r *NoteTypeRepo) List(ctx context.Context, creatorID string, req pagination.Request, deleted bool) (*pagination.Result[model.NoteType], error) {
	q := r.DB.Model(&model.NoteType{}).
		Where(r.DB.Where("creator_id = ?", creatorID).Or("creator_id IS NULL"))
	if deleted {
		q = q.Unscoped().Where("is_deleted = ?", true)
	}
	return pagination.Paginate[model.NoteType](ctx, q, req)
}

func (r *NoteTypeRepo) Get(ctx context.Context, creatorID string, id uint64) (*model.NoteType, error) {
	var nt model.NoteType
	err := r.DB.WithContext(ctx).
		Where("id = ?", id).
		Where(r.DB.Where("creator_id = ?", creatorID).Or("creator_id IS NULL")).
		Take(&nt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &nt, nil
}

// nameTaken checks the global namespace plus the caller's own: a name that
// collides with any global type is rejected for every user, and a user may
// not reuse one of their own names.
func (r *NoteTypeRepo) nameTaken(ctx context.Context, creatorID, name string, excludeID uint64) (bool, error) {
	q := r.DB.WithContext(ctx).Model(&model.NoteType{}).
		Where("name = ?", name).
		Where(r.DB.Where("creator_id IS NULL").Or("creator_id = ?", creatorID))
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	err := q.Count(&n).Error
	return n > 0, err
}

func (r *NoteTypeRepo) Create(ctx context.Context, creatorID string, p NoteTypeParams) (*model.NoteType, error) {
	taken, err := r.nameTaken(ctx, creatorID, p.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrNameTaken
	}

	nt := model.NoteType{
		CreatorID: &creatorID,
		Name:      p.Name,
		Templates: p.Templates,
		CssStyle:  p.CssStyle,
	}
	if err := r.DB.WithContext(ctx).Create(&nt).Error; err != nil {
		return nil, err
	}
	return &nt, nil
}

// Update only touches rows the caller owns; global types are read-only here.
func (r *NoteTypeRepo) Update(ctx context.Context, id uint64, creatorID string, p NoteTypeParams) (int64, error) {
	taken, err := r.nameTaken(ctx, creatorID, p.Name, id)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, ErrNameTaken
	}

	res := r.DB.WithContext(ctx).Model(&model.NoteType{}).
		Where("id = ? AND creator_id = ?", id, creatorID).
		Updates(map[string]any{
			"name":      p.Name,
			"templates": p.Templates,
			"css_style": p.CssStyle,
		})
	return res.RowsAffected, res.Error
}

func (r *NoteTypeRepo) Delete(ctx context.Context, id uint64, creatorID string) (int64, error) {
	return model.SetSoftDelete(
		r.DB.WithContext(ctx).Model(&model.NoteType{}).Where("id = ? AND creator_id = ?", id, creatorID),
		true,
	)
}

func (r *NoteTypeRepo) Restore(ctx context.Context, id uint64, creatorID string) (int64, error) {
	return model.SetSoftDelete(
		r.DB.WithContext(ctx).Model(&model.NoteType{}).Where("id = ? AND creator_id = ?", id, creatorID),
		false,
	)
}
