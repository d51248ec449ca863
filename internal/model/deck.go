package model

import "time"

// DeckSortOrder controls how new cards are drawn from a deck.
type DeckSortOrder int

const (
	SortOrderDateAdded DeckSortOrder = iota
	SortOrderAlphabetical
	SortOrderRandom
)

// DeckOption holds per-deck study limits. Embedded in Deck and, as the
// user-wide default, in User.
type DeckOption struct {
	NewCardsPerDay      int           `gorm:"not null;default:0" json:"new_cards_per_day"`
	ReviewLimitPerDay   int           `gorm:"not null;default:0" json:"review_limit_per_day"`
	SortOrder           DeckSortOrder `gorm:"not null;default:0" json:"sort_order"`
	InterdayLearningMix bool          `gorm:"not null;default:false" json:"interday_learning_mix"`
}

// DeckStatistic is maintained by the stats worker, not by request handlers.
type DeckStatistic struct {
	Due int `gorm:"not null;default:0" json:"due"`
	New int `gorm:"not null;default:0" json:"new"`
}

// Deck name is unique per creator (index created in db.AutoMigrateAndIndexes).
type Deck struct {
	Tracked
	ID          uint64  `gorm:"primaryKey" json:"id"`
	CreatorID   string  `gorm:"type:uuid;index;not null" json:"creator_id"`
	Name        string  `gorm:"not null" json:"name"`
	Description *string `json:"description"`
	IsPublic    bool    `gorm:"not null;default:false" json:"is_public"`

	// IsUserOption means Option was resolved from the creator's default
	// at create/update time.
	IsUserOption bool          `gorm:"not null;default:false" json:"is_user_option"`
	Option       DeckOption    `gorm:"embedded;embeddedPrefix:option_" json:"option"`
	Statistic    DeckStatistic `gorm:"embedded;embeddedPrefix:stat_" json:"statistic"`

	Creator User `gorm:"foreignKey:CreatorID" json:"-"`
}

func (d Deck) KeysetID() uint64 { return d.ID }

func (d Deck) KeysetUpdatedAt() time.Time { return d.UpdatedAt }
