package model

import "time"

type Note struct {
	Tracked
	ID         uint64 `gorm:"primaryKey" json:"id"`
	DeckID     uint64 `gorm:"index;not null" json:"deck_id"`
	NoteTypeID uint64 `gorm:"index;not null" json:"note_type_id"`
	CreatorID  string `gorm:"type:uuid;index;not null" json:"creator_id"`

	Data FieldData  `gorm:"type:text;not null" json:"data"`
	Tags StringList `gorm:"type:text;not null" json:"tags"`

	Deck     Deck     `gorm:"foreignKey:DeckID" json:"-"`
	NoteType NoteType `gorm:"foreignKey:NoteTypeID" json:"-"`
	Creator  User     `gorm:"foreignKey:CreatorID" json:"-"`
	Cards    []Card   `gorm:"foreignKey:NoteID" json:"cards,omitempty"`
}

func (n Note) KeysetID() uint64 { return n.ID }

func (n Note) KeysetUpdatedAt() time.Time { return n.UpdatedAt }
