package service

import (
	"context"
	"errors"
	"time"

	"mnemo/internal/jobs"
	"mnemo/internal/model"
	"mnemo/internal/render"
	"mnemo/internal/repo"

	"gorm.io/gorm"
)

var ErrEmptyBatch = errors.New("empty note batch")

// NoteService orchestrates note creation: one validation pass for the deck
// and note type, then per note a field cleanup and one generated card per
// template, all persisted in a single transaction.
type NoteService struct {
	DB        *gorm.DB
	Notes     *repo.NoteRepo
	NoteTypes *repo.NoteTypeRepo
}

type NewNote struct {
	Data model.FieldData
	Tags model.StringList
}

func (s *NoteService) Create(ctx context.Context, creatorID string, deckID, noteTypeID uint64, batch []NewNote) (*model.Note, error) {
	if len(batch) == 0 {
		return nil, ErrEmptyBatch
	}

	var n int64
	if err := s.DB.WithContext(ctx).Model(&model.Deck{}).
		Where("id = ? AND creator_id = ?", deckID, creatorID).Count(&n).Error; err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, repo.ErrDeckNotFound
	}

	noteType, err := s.NoteTypes.Get(ctx, creatorID, noteTypeID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, repo.ErrNoteTypeNotFound
		}
		return nil, err
	}
	fields := noteType.Fields()

	now := time.Now().UTC()
	notes := make([]model.Note, 0, len(batch))
	for _, in := range batch {
		data := cleanupData(fields, in.Data)

		cards := make([]model.Card, 0, len(noteType.Templates))
		for _, t := range noteType.Templates {
			due := now
			cards = append(cards, model.Card{
				DeckID:      deckID,
				CreatorID:   creatorID,
				Front:       render.Render(t.Front, data),
				Back:        render.Render(t.Back, data),
				IsSuspended: false,
				DueDate:     &due,
				Interval:    0,
				Ease:        2.5,
			})
		}

		notes = append(notes, model.Note{
			DeckID:     deckID,
			NoteTypeID: noteTypeID,
			CreatorID:  creatorID,
			Data:       data,
			Tags:       in.Tags,
			Cards:      cards,
		})
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&notes).Error; err != nil {
			return err
		}
		// deck counters are refreshed off the request path
		return jobs.EnqueueDeckStatsRefresh(tx, creatorID, deckID, now)
	})
	if err != nil {
		return nil, err
	}
	return &notes[0], nil
}

// Update re-runs field cleanup against the note's type before the scoped
// update. A missing or foreign note reports zero rows affected, same as the
// repository would.
func (s *NoteService) Update(ctx context.Context, id uint64, creatorID string, u repo.NoteUpdate) (int64, error) {
	note, err := s.Notes.Get(ctx, creatorID, id)
	if errors.Is(err, repo.ErrNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	noteType, err := s.NoteTypes.Get(ctx, creatorID, note.NoteTypeID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	u.Data = cleanupData(noteType.Fields(), u.Data)
	return s.Notes.Update(ctx, id, creatorID, u)
}

// cleanupData keeps exactly the note type's field set: unknown keys are
// dropped, missing ones default to the empty string.
func cleanupData(fields []string, data model.FieldData) model.FieldData {
	out := make(model.FieldData, len(fields))
	for _, f := range fields {
		out[f] = data[f]
	}
	return out
}
