package jobs

import "time"

const TypeDeckStatsRefresh = "DECK_STATS_REFRESH"

type Job struct {
	ID     uint64 `gorm:"primaryKey"`
	UserID string `gorm:"type:uuid;index;not null"`

	Type    string `gorm:"type:text;not null"` // DECK_STATS_REFRESH
	Payload []byte `gorm:"type:jsonb;not null"`

	RunAt  time.Time `gorm:"index;not null"`
	Status string    `gorm:"index;not null;default:'PENDING'"` // PENDING/RUNNING/DONE/FAILED/CANCELLED

	Attempts    int `gorm:"not null;default:0"`
	MaxAttempts int `gorm:"not null;default:8"`

	LockedBy *string    `gorm:"type:text"`
	LockedAt *time.Time `gorm:"type:timestamptz"`

	LastError *string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}
