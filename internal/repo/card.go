package repo

import (
	"context"
	"errors"
	"time"

	"mnemo/internal/jobs"
	"mnemo/internal/model"
	"mnemo/internal/pagination"

	"gorm.io/gorm"
)

type CardRepo struct {
	DB *gorm.DB
}

type CardParams struct {
	DeckID uint64
	NoteID uint64
	Front  string
	Back   string
}

// CardReview carries the scheduling fields written back after a review.
type CardReview struct {
	DueDate  time.Time
	Interval int
	Ease     float64
}

func (r *CardRepo) List(ctx context.Context, creatorID string, deckID uint64, req pagination.Request, deleted bool) (*pagination.Result[model.Card], error) {
	q := r.DB.Model(&model.Card{}).Where("creator_id = ? AND deck_id = ?", creatorID, deckID)
	if deleted {
		q = q.Unscoped().Where("is_deleted = ?", true)
	}
	return pagination.Paginate[model.Card](ctx, q, req)
}

func (r *CardRepo) Get(ctx context.Context, creatorID string, id uint64) (*model.Card, error) {
	var c model.Card
	err := r.DB.WithContext(ctx).Where("id = ? AND creator_id = ?", id, creatorID).Take(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create is the manual path for adding an extra card to an existing note;
// the usual path is generation at note creation time.
func (r *CardRepo) Create(ctx context.Context, creatorID string, p CardParams) (*model.Card, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.Note{}).
		Where("id = ? AND creator_id = ?", p.NoteID, creatorID).Count(&n).Error
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrNoteNotFound
	}

	now := time.Now().UTC()
	card := model.Card{
		DeckID:      p.DeckID,
		NoteID:      p.NoteID,
		CreatorID:   creatorID,
		Front:       p.Front,
		Back:        p.Back,
		IsSuspended: false,
		DueDate:     &now,
		Interval:    0,
		Ease:        2.5,
	}
	if err := r.DB.WithContext(ctx).Create(&card).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

// SetSuspended flips the flag and queues a statistics rebuild for the card's
// deck, since suspension changes the Due count.
func (r *CardRepo) SetSuspended(ctx context.Context, id uint64, creatorID string, suspended bool) (int64, error) {
	var affected int64
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c model.Card
		err := tx.Where("id = ? AND creator_id = ?", id, creatorID).Take(&c).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		res := tx.Model(&model.Card{}).
			Where("id = ? AND creator_id = ?", id, creatorID).
			Updates(map[string]any{"is_suspended": suspended})
		if res.Error != nil {
			return res.Error
		}
		affected = res.RowsAffected
		if affected == 0 {
			return nil
		}
		return jobs.EnqueueDeckStatsRefresh(tx, creatorID, c.DeckID, tx.NowFunc())
	})
	return affected, err
}

func (r *CardRepo) Schedule(ctx context.Context, id uint64, creatorID string, rev CardReview) (int64, error) {
	res := r.DB.WithContext(ctx).Model(&model.Card{}).
		Where("id = ? AND creator_id = ?", id, creatorID).
		Updates(map[string]any{
			"due_date": rev.DueDate,
			"interval": rev.Interval,
			"ease":     rev.Ease,
		})
	return res.RowsAffected, res.Error
}

func (r *CardRepo) Delete(ctx context.Context, id uint64, creatorID string) (int64, error) {
	return model.SetSoftDelete(
		r.DB.WithContext(ctx).Model(&model.Card{}).Where("id = ? AND creator_id = ?", id, creatorID),
		true,
	)
}

func (r *CardRepo) Restore(ctx context.Context, id uint64, creatorID string) (int64, error) {
	return model.SetSoftDelete(
		r.DB.WithContext(ctx).Model(&model.Card{}).Where("id = ? AND creator_id = ?", id, creatorID),
		false,
	)
}
