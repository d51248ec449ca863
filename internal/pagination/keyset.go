package pagination

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"
)

const (
	MinPageSize = 1
	MaxPageSize = 100
)

var ErrInvalidPageSize = errors.New("page size out of range")

// Row is satisfied by entities with the deterministic total order
// (updated_at desc, id desc) the keyset engine pages over.
type Row interface {
	KeysetID() uint64
	KeysetUpdatedAt() time.Time
}

type Request struct {
	CursorID *uint64
	PageSize int
}

type Result[T any] struct {
	Data        []T   `json:"data"`
	TotalCount  int64 `json:"total_count"`
	PageSize    int   `json:"page_size"`
	HasPrevious bool  `json:"has_previous"`
	HasNext     bool  `json:"has_next"`
}

// Paginate pages forward through query, a filtered single-table source.
// The cursor names the last row of the previous page; the returned page
// starts strictly after it. A cursor id that matches no row under the
// caller's filters (including the soft-delete filter) falls back to the
// first page.
func Paginate[T Row](ctx context.Context, query *gorm.DB, req Request) (*Result[T], error) {
	if req.PageSize < MinPageSize || req.PageSize > MaxPageSize {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPageSize, req.PageSize)
	}

	base := query.WithContext(ctx)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, err
	}

	var ref T
	hasRef := false
	if req.CursorID != nil {
		err := base.Session(&gorm.Session{}).Where("id = ?", *req.CursorID).Take(&ref).Error
		switch {
		case err == nil:
			hasRef = true
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			return nil, err
		}
	}

	page := base.Session(&gorm.Session{})
	if hasRef {
		page = page.Where(
			"updated_at < ? OR (updated_at = ? AND id < ?)",
			ref.KeysetUpdatedAt(), ref.KeysetUpdatedAt(), ref.KeysetID(),
		)
	}

	var rows []T
	if err := page.Order("updated_at DESC, id DESC").Limit(req.PageSize).Find(&rows).Error; err != nil {
		return nil, err
	}

	// The database already ordered the page; re-assert in case a dialect or
	// a composed query dropped the ORDER BY.
	sort.SliceStable(rows, func(i, j int) bool {
		ti, tj := rows[i].KeysetUpdatedAt(), rows[j].KeysetUpdatedAt()
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return rows[i].KeysetID() > rows[j].KeysetID()
	})

	hasPrevious := false
	if hasRef {
		ok, err := probe(base, "updated_at > ? OR (updated_at = ? AND id > ?)", ref)
		if err != nil {
			return nil, err
		}
		hasPrevious = ok
	}

	hasNext := false
	if len(rows) > 0 {
		ok, err := probe(base, "updated_at < ? OR (updated_at = ? AND id < ?)", rows[len(rows)-1])
		if err != nil {
			return nil, err
		}
		hasNext = ok
	}

	return &Result[T]{
		Data:        rows,
		TotalCount:  total,
		PageSize:    len(rows),
		HasPrevious: hasPrevious,
		HasNext:     hasNext,
	}, nil
}

func probe(base *gorm.DB, cond string, at Row) (bool, error) {
	var n int64
	err := base.Session(&gorm.Session{}).
		Where(cond, at.KeysetUpdatedAt(), at.KeysetUpdatedAt(), at.KeysetID()).
		Count(&n).Error
	return n > 0, err
}
