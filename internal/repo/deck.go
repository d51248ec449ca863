package repo

import (
	"context"
	"errors"

	"mnemo/internal/model"
	"mnemo/internal/pagination"

	"gorm.io/gorm"
)

type DeckRepo struct {
	DB *gorm.DB
}

type DeckParams struct {
	Name         string
	Description  *string
	IsPublic     bool
	IsUserOption bool
	Option       *model.DeckOption
}

// List pages the caller's decks. deleted=true switches to the hidden rows
// only, through an unscoped session.
func (r *DeckRepo) List(ctx context.Context, creatorID string, req pagination.Request, deleted bool) (*pagination.Result[model.Deck], error) {
	q := r.DB.Model(&model.Deck{}).Where("creator_id = ?", creatorID)
	if deleted {
		q = q.Unscoped().Where("is_deleted = ?", true)
	}
	return pagination.Paginate[model.Deck](ctx, q, req)
}

func (r *DeckRepo) Get(ctx context.Context, creatorID string, id uint64) (*model.Deck, error) {
	var d model.Deck
	err := r.DB.WithContext(ctx).Where("id = ? AND creator_id = ?", id, creatorID).Take(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// resolveOption picks the effective deck option: the request payload, or the
// owning user's stored default when the deck opts into IsUserOption.
func (r *DeckRepo) resolveOption(ctx context.Context, creatorID string, p DeckParams) (*model.DeckOption, error) {
	if !p.IsUserOption {
		if p.Option == nil {
			return nil, ErrMissingOption
		}
		return p.Option, nil
	}

	var u model.User
	err := r.DB.WithContext(ctx).Where("id = ?", creatorID).Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMissingOption
	}
	if err != nil {
		return nil, err
	}
	opt := u.DeckOption
	return &opt, nil
}

func (r *DeckRepo) nameTaken(ctx context.Context, creatorID, name string, excludeID uint64) (bool, error) {
	q := r.DB.WithContext(ctx).Model(&model.Deck{}).
		Where("creator_id = ? AND name = ?", creatorID, name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	var n int64
	err := q.Count(&n).Error
	return n > 0, err
}

func (r *DeckRepo) Create(ctx context.Context, creatorID string, p DeckParams) (*model.Deck, error) {
	opt, err := r.resolveOption(ctx, creatorID, p)
	if err != nil {
		return nil, err
	}

	taken, err := r.nameTaken(ctx, creatorID, p.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrNameTaken
	}

	deck := model.Deck{
		CreatorID:    creatorID,
		Name:         p.Name,
		Description:  p.Description,
		IsPublic:     p.IsPublic,
		IsUserOption: p.IsUserOption,
		Option:       *opt,
		Statistic:    model.DeckStatistic{},
	}
	// The unique (creator_id, name) index is the backstop for creates racing
	// past the pre-check.
	if err := r.DB.WithContext(ctx).Create(&deck).Error; err != nil {
		return nil, err
	}
	return &deck, nil
}

func (r *DeckRepo) Update(ctx context.Context, id uint64, creatorID string, p DeckParams) (int64, error) {
	opt, err := r.resolveOption(ctx, creatorID, p)
	if err != nil {
		return 0, err
	}

	taken, err := r.nameTaken(ctx, creatorID, p.Name, id)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, ErrNameTaken
	}

	res := r.DB.WithContext(ctx).Model(&model.Deck{}).
		Where("id = ? AND creator_id = ?", id, creatorID).
		Updates(map[string]any{
			"name":                         p.Name,
			"description":                  p.Description,
			"is_public":                    p.IsPublic,
			"is_user_option":               p.IsUserOption,
			"option_new_cards_per_day":     opt.NewCardsPerDay,
			"option_review_limit_per_day":  opt.ReviewLimitPerDay,
			"option_sort_order":            opt.SortOrder,
			"option_interday_learning_mix": opt.InterdayLearningMix,
		})
	return res.RowsAffected, res.Error
}

func (r *DeckRepo) Delete(ctx context.Context, id uint64, creatorID string) (int64, error) {
	return model.SetSoftDelete(
		r.DB.WithContext(ctx).Model(&model.Deck{}).Where("id = ? AND creator_id = ?", id, creatorID),
		true,
	)
}

func (r *DeckRepo) Restore(ctx context.Context, id uint64, creatorID string) (int64, error) {
	return model.SetSoftDelete(
		r.DB.WithContext(ctx).Model(&model.Deck{}).Where("id = ? AND creator_id = ?", id, creatorID),
		false,
	)
}
