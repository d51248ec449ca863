package model

import "time"

// Card is derived, not authored: Front/Back come from rendering the note
// type's templates against the note's field data at note creation time.
// The scheduling columns feed the (future) review queue.
type Card struct {
	Tracked
	ID        uint64 `gorm:"primaryKey" json:"id"`
	DeckID    uint64 `gorm:"index;not null" json:"deck_id"`
	NoteID    uint64 `gorm:"index;not null" json:"note_id"`
	CreatorID string `gorm:"type:uuid;index;not null" json:"creator_id"`

	Front       string `gorm:"type:text;not null" json:"front"`
	Back        string `gorm:"type:text;not null" json:"back"`
	IsSuspended bool   `gorm:"not null;default:false" json:"is_suspended"`

	DueDate  *time.Time `json:"due_date"`
	Interval int        `gorm:"not null;default:0" json:"interval"`
	Ease     float64    `gorm:"not null;default:2.5" json:"ease"`

	Deck    Deck `gorm:"foreignKey:DeckID" json:"-"`
	Note    Note `gorm:"foreignKey:NoteID" json:"-"`
	Creator User `gorm:"foreignKey:CreatorID" json:"-"`
}

func (c Card) KeysetID() uint64 { return c.ID }

func (c Card) KeysetUpdatedAt() time.Time { return c.UpdatedAt }
