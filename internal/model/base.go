package model

import (
	"time"

	"gorm.io/gorm"
)

// Tracked is embedded by every persisted entity. Timestamps are stamped in
// UTC before each write; IsDeleted carries the reversible soft-delete state.
type Tracked struct {
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;index" json:"updated_at"`
	IsDeleted Deleted   `gorm:"not null;default:false;index" json:"is_deleted"`
}

func (t *Tracked) BeforeCreate(*gorm.DB) error {
	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now
	return nil
}

func (t *Tracked) BeforeSave(*gorm.DB) error {
	if !t.CreatedAt.IsZero() {
		t.UpdatedAt = time.Now().UTC()
	}
	return nil
}
