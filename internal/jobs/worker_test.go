package jobs_test

import (
	"testing"
	"time"

	"mnemo/internal/jobs"
	"mnemo/internal/model"
	"mnemo/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedCard(t *testing.T, gdb *gorm.DB, deckID, noteID uint64, uid string, due time.Time, interval int, suspended bool) {
	t.Helper()
	c := model.Card{
		DeckID:      deckID,
		NoteID:      noteID,
		CreatorID:   uid,
		Front:       "f",
		Back:        "b",
		IsSuspended: suspended,
		DueDate:     &due,
		Interval:    interval,
		Ease:        2.5,
	}
	require.NoError(t, gdb.Create(&c).Error)
}

func TestRefreshDeckStatistic(t *testing.T) {
	gdb := testutil.OpenDB(t)
	u := testutil.SeedUser(t, gdb)

	deck := model.FakeDeck(u.ID, false)
	require.NoError(t, gdb.Create(&deck).Error)

	nt := model.FakeNoteType(&u.ID, false, "")
	require.NoError(t, gdb.Create(&nt).Error)
	note := model.Note{DeckID: deck.ID, NoteTypeID: nt.ID, CreatorID: u.ID, Data: model.FieldData{}, Tags: model.StringList{}}
	require.NoError(t, gdb.Create(&note).Error)

	past := time.Now().UTC().Add(-time.Hour)
	future := time.Now().UTC().Add(24 * time.Hour)

	seedCard(t, gdb, deck.ID, note.ID, u.ID, past, 0, false)   // due + new
	seedCard(t, gdb, deck.ID, note.ID, u.ID, past, 3, false)   // due only
	seedCard(t, gdb, deck.ID, note.ID, u.ID, past, 0, true)    // suspended, new only
	seedCard(t, gdb, deck.ID, note.ID, u.ID, future, 0, false) // not due yet, new

	require.NoError(t, jobs.RefreshDeckStatistic(gdb, deck.ID))

	var got model.Deck
	require.NoError(t, gdb.Where("id = ?", deck.ID).Take(&got).Error)
	assert.Equal(t, 2, got.Statistic.Due)
	assert.Equal(t, 3, got.Statistic.New)
}

func TestRefreshDeckStatisticMissingDeck(t *testing.T) {
	gdb := testutil.OpenDB(t)

	assert.NoError(t, jobs.RefreshDeckStatistic(gdb, 424242))
}

func TestEnqueueDeckStatsRefresh(t *testing.T) {
	gdb := testutil.OpenDB(t)
	u := testutil.SeedUser(t, gdb)

	runAt := time.Now().UTC()
	require.NoError(t, jobs.EnqueueDeckStatsRefresh(gdb, u.ID, 7, runAt))

	var job jobs.Job
	require.NoError(t, gdb.Where("user_id = ?", u.ID).Take(&job).Error)
	assert.Equal(t, jobs.TypeDeckStatsRefresh, job.Type)
	assert.Equal(t, "PENDING", job.Status)
	assert.JSONEq(t, `{"deck_id": 7}`, string(job.Payload))
}
