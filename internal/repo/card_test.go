package repo_test

import (
	"context"
	"testing"
	"time"

	"mnemo/internal/jobs"
	"mnemo/internal/model"
	"mnemo/internal/repo"
	"mnemo/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cardFixture struct {
	cards *repo.CardRepo
	user  model.User
	deck  model.Deck
	note  model.Note
}

func newCardFixture(t *testing.T) cardFixture {
	t.Helper()
	gdb := testutil.OpenDB(t)
	u := testutil.SeedUser(t, gdb)

	d := model.FakeDeck(u.ID, false)
	require.NoError(t, gdb.Create(&d).Error)

	nt := model.FakeNoteType(&u.ID, false, "")
	require.NoError(t, gdb.Create(&nt).Error)

	n := model.Note{
		DeckID:     d.ID,
		NoteTypeID: nt.ID,
		CreatorID:  u.ID,
		Data:       model.FieldData{"front": "hola", "back": "hello"},
		Tags:       model.StringList{},
	}
	require.NoError(t, gdb.Create(&n).Error)

	return cardFixture{
		cards: &repo.CardRepo{DB: gdb},
		user:  u,
		deck:  d,
		note:  n,
	}
}

func (f cardFixture) params() repo.CardParams {
	return repo.CardParams{
		DeckID: f.deck.ID,
		NoteID: f.note.ID,
		Front:  "hola",
		Back:   "hello",
	}
}

func TestCardCreateDefaults(t *testing.T) {
	f := newCardFixture(t)

	card, err := f.cards.Create(context.Background(), f.user.ID, f.params())
	require.NoError(t, err)

	assert.False(t, card.IsSuspended)
	assert.Equal(t, 0, card.Interval)
	assert.Equal(t, 2.5, card.Ease)
	require.NotNil(t, card.DueDate)
	assert.WithinDuration(t, time.Now().UTC(), *card.DueDate, time.Minute)
}

func TestCardCreateUnknownNote(t *testing.T) {
	f := newCardFixture(t)

	p := f.params()
	p.NoteID = 9999
	_, err := f.cards.Create(context.Background(), f.user.ID, p)
	assert.ErrorIs(t, err, repo.ErrNoteNotFound)
}

func TestCardSuspendToggle(t *testing.T) {
	f := newCardFixture(t)
	ctx := context.Background()

	card, err := f.cards.Create(ctx, f.user.ID, f.params())
	require.NoError(t, err)

	n, err := f.cards.SetSuspended(ctx, card.ID, f.user.ID, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := f.cards.Get(ctx, f.user.ID, card.ID)
	require.NoError(t, err)
	assert.True(t, got.IsSuspended)

	// suspension queues a deck statistics rebuild
	var queued int64
	require.NoError(t, f.cards.DB.Model(&jobs.Job{}).
		Where("type = ?", jobs.TypeDeckStatsRefresh).Count(&queued).Error)
	assert.Equal(t, int64(1), queued)

	_, err = f.cards.SetSuspended(ctx, card.ID, f.user.ID, false)
	require.NoError(t, err)

	got, err = f.cards.Get(ctx, f.user.ID, card.ID)
	require.NoError(t, err)
	assert.False(t, got.IsSuspended)
}

func TestCardSchedule(t *testing.T) {
	f := newCardFixture(t)
	ctx := context.Background()

	card, err := f.cards.Create(ctx, f.user.ID, f.params())
	require.NoError(t, err)

	due := time.Now().UTC().Add(72 * time.Hour).Truncate(time.Second)
	n, err := f.cards.Schedule(ctx, card.ID, f.user.ID, repo.CardReview{
		DueDate:  due,
		Interval: 3,
		Ease:     2.36,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := f.cards.Get(ctx, f.user.ID, card.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Interval)
	assert.Equal(t, 2.36, got.Ease)
	require.NotNil(t, got.DueDate)
	assert.True(t, due.Equal(got.DueDate.UTC()))
}

func TestCardDeleteAndRestore(t *testing.T) {
	f := newCardFixture(t)
	ctx := context.Background()

	card, err := f.cards.Create(ctx, f.user.ID, f.params())
	require.NoError(t, err)

	_, err = f.cards.Delete(ctx, card.ID, f.user.ID)
	require.NoError(t, err)

	_, err = f.cards.Get(ctx, f.user.ID, card.ID)
	assert.ErrorIs(t, err, repo.ErrNotFound)

	_, err = f.cards.Restore(ctx, card.ID, f.user.ID)
	require.NoError(t, err)

	got, err := f.cards.Get(ctx, f.user.ID, card.ID)
	require.NoError(t, err)
	assert.Equal(t, card.Front, got.Front)
}
