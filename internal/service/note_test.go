package service_test

import (
	"context"
	"testing"

	"mnemo/internal/jobs"
	"mnemo/internal/model"
	"mnemo/internal/repo"
	"mnemo/internal/service"
	"mnemo/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type noteSvcFixture struct {
	db       *gorm.DB
	svc      *service.NoteService
	user     model.User
	deck     model.Deck
	noteType model.NoteType
}

func newNoteSvcFixture(t *testing.T) noteSvcFixture {
	t.Helper()
	gdb := testutil.OpenDB(t)
	u := testutil.SeedUser(t, gdb)

	d := model.FakeDeck(u.ID, false)
	require.NoError(t, gdb.Create(&d).Error)

	nt := model.NoteType{
		CreatorID: &u.ID,
		Name:      "Vocab",
		Templates: model.TemplateList{
			{Front: "{{word}}", Back: "{{meaning}}"},
			{Front: "{{meaning}}", Back: "{{word}} ({{hint}})"},
		},
	}
	require.NoError(t, gdb.Create(&nt).Error)

	notes := &repo.NoteRepo{DB: gdb}
	return noteSvcFixture{
		db:       gdb,
		svc:      &service.NoteService{DB: gdb, Notes: notes, NoteTypes: &repo.NoteTypeRepo{DB: gdb}},
		user:     u,
		deck:     d,
		noteType: nt,
	}
}

func TestNoteServiceCreateGeneratesCards(t *testing.T) {
	f := newNoteSvcFixture(t)
	ctx := context.Background()

	note, err := f.svc.Create(ctx, f.user.ID, f.deck.ID, f.noteType.ID, []service.NewNote{{
		Data: model.FieldData{"word": "perro", "meaning": "dog", "hint": "animal"},
		Tags: model.StringList{"spanish"},
	}})
	require.NoError(t, err)

	require.Len(t, note.Cards, 2)
	assert.Equal(t, "perro", note.Cards[0].Front)
	assert.Equal(t, "dog", note.Cards[0].Back)
	assert.Equal(t, "dog", note.Cards[1].Front)
	assert.Equal(t, "perro (animal)", note.Cards[1].Back)

	for _, c := range note.Cards {
		assert.Equal(t, f.deck.ID, c.DeckID)
		assert.Equal(t, note.ID, c.NoteID)
		assert.Equal(t, 2.5, c.Ease)
		assert.NotNil(t, c.DueDate)
	}
}

func TestNoteServiceCreateCleansFieldData(t *testing.T) {
	f := newNoteSvcFixture(t)

	note, err := f.svc.Create(context.Background(), f.user.ID, f.deck.ID, f.noteType.ID, []service.NewNote{{
		Data: model.FieldData{
			"word":    "gato",
			"bogus":   "dropped",
			"meaning": "cat",
			// "hint" omitted on purpose
		},
	}})
	require.NoError(t, err)

	assert.Equal(t, model.FieldData{"word": "gato", "meaning": "cat", "hint": ""}, note.Data)
}

func TestNoteServiceCreateBatch(t *testing.T) {
	f := newNoteSvcFixture(t)
	ctx := context.Background()

	first, err := f.svc.Create(ctx, f.user.ID, f.deck.ID, f.noteType.ID, []service.NewNote{
		{Data: model.FieldData{"word": "uno"}},
		{Data: model.FieldData{"word": "dos"}},
		{Data: model.FieldData{"word": "tres"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "uno", first.Data["word"])

	var count int64
	require.NoError(t, f.db.Model(&model.Note{}).Where("deck_id = ?", f.deck.ID).Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestNoteServiceCreateEnqueuesStatsJob(t *testing.T) {
	f := newNoteSvcFixture(t)

	_, err := f.svc.Create(context.Background(), f.user.ID, f.deck.ID, f.noteType.ID, []service.NewNote{{
		Data: model.FieldData{"word": "sol"},
	}})
	require.NoError(t, err)

	var n int64
	require.NoError(t, f.db.Model(&jobs.Job{}).
		Where("user_id = ? AND type = ? AND status = ?", f.user.ID, jobs.TypeDeckStatsRefresh, "PENDING").
		Count(&n).Error)
	assert.Equal(t, int64(1), n)
}

func TestNoteServiceCreateValidation(t *testing.T) {
	f := newNoteSvcFixture(t)
	ctx := context.Background()
	batch := []service.NewNote{{Data: model.FieldData{"word": "x"}}}

	_, err := f.svc.Create(ctx, f.user.ID, f.deck.ID, f.noteType.ID, nil)
	assert.ErrorIs(t, err, service.ErrEmptyBatch)

	_, err = f.svc.Create(ctx, f.user.ID, 9999, f.noteType.ID, batch)
	assert.ErrorIs(t, err, repo.ErrDeckNotFound)

	_, err = f.svc.Create(ctx, f.user.ID, f.deck.ID, 9999, batch)
	assert.ErrorIs(t, err, repo.ErrNoteTypeNotFound)
}

func TestNoteServiceUpdateCleansData(t *testing.T) {
	f := newNoteSvcFixture(t)
	ctx := context.Background()

	note, err := f.svc.Create(ctx, f.user.ID, f.deck.ID, f.noteType.ID, []service.NewNote{{
		Data: model.FieldData{"word": "luna", "meaning": "moon", "hint": "sky"},
	}})
	require.NoError(t, err)

	n, err := f.svc.Update(ctx, note.ID, f.user.ID, repo.NoteUpdate{
		Data: model.FieldData{"word": "sol", "bogus": "dropped"},
		Tags: model.StringList{"astro"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := f.svc.Notes.Get(ctx, f.user.ID, note.ID)
	require.NoError(t, err)
	assert.Equal(t, model.FieldData{"word": "sol", "meaning": "", "hint": ""}, got.Data)
	assert.Equal(t, model.StringList{"astro"}, got.Tags)
}

func TestNoteServiceUpdateMissingNote(t *testing.T) {
	f := newNoteSvcFixture(t)

	n, err := f.svc.Update(context.Background(), 9999, f.user.ID, repo.NoteUpdate{
		Data: model.FieldData{"word": "x"},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
