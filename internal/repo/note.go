package repo

import (
	"context"
	"errors"

	"mnemo/internal/model"
	"mnemo/internal/pagination"

	"gorm.io/gorm"
)

type NoteRepo struct {
	DB *gorm.DB
}

type NoteParams struct {
	DeckID     uint64
	NoteTypeID uint64
	Data       model.FieldData
	Tags       model.StringList

	// Cards generated from the note type's templates; persisted together
	// with the note.
	Cards []model.Card
}

type NoteUpdate struct {
	Data model.FieldData
	Tags model.StringList
}

func (r *NoteRepo) List(ctx context.Context, creatorID string, deckID uint64, req pagination.Request, deleted bool) (*pagination.Result[model.Note], error) {
	q := r.DB.Model(&model.Note{}).Where("creator_id = ? AND deck_id = ?", creatorID, deckID)
	if deleted {
		q = q.Unscoped().Where("is_deleted = ?", true)
	}
	return pagination.Paginate[model.Note](ctx, q, req)
}

func (r *NoteRepo) Get(ctx context.Context, creatorID string, id uint64) (*model.Note, error) {
	var n model.Note
	err := r.DB.WithContext(ctx).Where("id = ? AND creator_id = ?", id, creatorID).Take(&n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *NoteRepo) deckExists(ctx context.Context, creatorID string, deckID uint64) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.Deck{}).
		Where("id = ? AND creator_id = ?", deckID, creatorID).Count(&n).Error
	return n > 0, err
}

func (r *NoteRepo) noteTypeExists(ctx context.Context, creatorID string, noteTypeID uint64) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.NoteType{}).
		Where("id = ?", noteTypeID).
		Where(r.DB.Where("creator_id = ?", creatorID).Or("creator_id IS NULL")).
		Count(&n).Error
	return n > 0, err
}

func (r *NoteRepo) Create(ctx context.Context, creatorID string, p NoteParams) (*model.Note, error) {
	ok, err := r.deckExists(ctx, creatorID, p.DeckID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrDeckNotFound
	}
	ok, err = r.noteTypeExists(ctx, creatorID, p.NoteTypeID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNoteTypeNotFound
	}

	note := model.Note{
		DeckID:     p.DeckID,
		NoteTypeID: p.NoteTypeID,
		CreatorID:  creatorID,
		Data:       p.Data,
		Tags:       p.Tags,
		Cards:      p.Cards,
	}
	if err := r.DB.WithContext(ctx).Create(&note).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

func (r *NoteRepo) Update(ctx context.Context, id uint64, creatorID string, u NoteUpdate) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&model.Note{}).
		Where("id = ? AND creator_id = ?", id, creatorID).
		Updates(map[string]any{
			"data": u.Data,
			"tags": u.Tags,
		})
	return res.RowsAffected, res.Error
}

func (r *NoteRepo) Delete(ctx context.Context, id uint64, creatorID string) (int64, error) {
	return model.SetSoftDelete(
		r.DB.WithContext(ctx).Model(&model.Note{}).Where("id = ? AND creator_id = ?", id, creatorID),
		true,
	)
}

func (r *NoteRepo) Restore(ctx context.Context, id uint64, creatorID string) (int64, error) {
	return model.SetSoftDelete(
		r.DB.WithContext(ctx).Model(&model.Note{}).Where("id = ? AND creator_id = ?", id, creatorID),
		false,
	)
}
