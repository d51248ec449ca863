package service_test

import (
	"context"
	"testing"

	"mnemo/internal/model"
	"mnemo/internal/repo"
	"mnemo/internal/service"
	"mnemo/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNoteTypeSvc(t *testing.T) (*service.NoteTypeService, model.User) {
	t.Helper()
	gdb := testutil.OpenDB(t)
	u := testutil.SeedUser(t, gdb)
	return &service.NoteTypeService{Repo: &repo.NoteTypeRepo{DB: gdb}}, u
}

func TestNoteTypeServiceSanitizesTemplates(t *testing.T) {
	svc, u := newNoteTypeSvc(t)

	nt, err := svc.Create(context.Background(), u.ID, repo.NoteTypeParams{
		Name: "Vocab",
		Templates: model.TemplateList{
			{Front: `<b>{{word}}</b><script>steal()</script>`, Back: "{{meaning}}"},
		},
	})
	require.NoError(t, err)

	require.Len(t, nt.Templates, 1)
	assert.Equal(t, "<b>{{word}}</b>", nt.Templates[0].Front)
	assert.Equal(t, "{{meaning}}", nt.Templates[0].Back)
}

func TestNoteTypeServiceDropsEmptyTemplates(t *testing.T) {
	svc, u := newNoteTypeSvc(t)

	nt, err := svc.Create(context.Background(), u.ID, repo.NoteTypeParams{
		Name: "Vocab",
		Templates: model.TemplateList{
			{Front: `<script>alert(1)</script>`, Back: "{{meaning}}"}, // front sanitizes to nothing
			{Front: "{{word}}", Back: "{{meaning}}"},
		},
	})
	require.NoError(t, err)

	require.Len(t, nt.Templates, 1)
	assert.Equal(t, "{{word}}", nt.Templates[0].Front)
}

func TestNoteTypeServiceCleansCss(t *testing.T) {
	svc, u := newNoteTypeSvc(t)
	ctx := context.Background()

	nt, err := svc.Create(ctx, u.ID, repo.NoteTypeParams{
		Name:      "Styled",
		Templates: model.TemplateList{{Front: "{{q}}", Back: "{{a}}"}},
		CssStyle:  ".card { font-size: 16px; }",
	})
	require.NoError(t, err)
	assert.Contains(t, nt.CssStyle, "font-size: 16px")

	// the css parser is lenient: malformed input comes back normalized
	n, err := svc.Update(ctx, nt.ID, u.ID, repo.NoteTypeParams{
		Name:      "Styled",
		Templates: nt.Templates,
		CssStyle:  ".note { color: navy",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	got, err := svc.Repo.Get(ctx, u.ID, nt.ID)
	require.NoError(t, err)
	assert.Contains(t, got.CssStyle, ".note")
}
