package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	Tracked
	ID           string `gorm:"type:uuid;primaryKey" json:"id"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	ProfileImageURL string `json:"profile_image_url"`

	// Default deck option, applied when a deck opts into IsUserOption.
	DeckOption DeckOption `gorm:"embedded;embeddedPrefix:deck_option_" json:"deck_option"`

	Decks []Deck `gorm:"foreignKey:CreatorID" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return u.Tracked.BeforeCreate(tx)
}
