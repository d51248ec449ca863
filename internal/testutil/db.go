// Package testutil opens isolated in-memory databases for package tests.
package testutil

import (
	"testing"
	"time"

	"mnemo/internal/jobs"
	"mnemo/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// OpenDB opens a fresh in-memory database with the full schema. Each call
// gets its own database; cache=shared only ties together the connections of
// this one pool.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
		Logger:  logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, gdb.AutoMigrate(
		&model.User{},
		&model.Deck{},
		&model.NoteType{},
		&model.Note{},
		&model.Card{},
		&jobs.Job{},
	))
	return gdb
}

func SeedUser(t *testing.T, gdb *gorm.DB) model.User {
	t.Helper()

	u := model.FakeUser()
	require.NoError(t, gdb.Create(&u).Error)
	return u
}

// SeedDecks creates n decks for creatorID with ascending ids and strictly
// ascending updated_at stamps, so the keyset order (updated_at desc, id desc)
// is exactly id descending. deletedFrom marks every deck with id >= that
// value as soft deleted; pass 0 to keep all active.
func SeedDecks(t *testing.T, gdb *gorm.DB, creatorID string, n int, deletedFrom uint64) []model.Deck {
	t.Helper()

	base := time.Now().UTC().Add(-time.Hour)
	decks := make([]model.Deck, 0, n)
	for i := 1; i <= n; i++ {
		d := model.FakeDeck(creatorID, deletedFrom != 0 && uint64(i) >= deletedFrom)
		d.Name = d.Name + "-" + uuid.NewString() // sidestep the unique name check
		require.NoError(t, gdb.Create(&d).Error)

		ts := base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, gdb.Model(&model.Deck{}).Unscoped().
			Where("id = ?", d.ID).
			UpdateColumn("updated_at", ts).Error)
		d.UpdatedAt = ts
		decks = append(decks, d)
	}
	return decks
}
