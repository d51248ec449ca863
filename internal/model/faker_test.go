package model_test

import (
	"strings"
	"testing"

	"mnemo/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestFakeUser(t *testing.T) {
	u := model.FakeUser()

	assert.NotEmpty(t, u.Username)
	assert.Contains(t, u.Email, "@")
	assert.NotEmpty(t, u.PasswordHash)
	assert.True(t, strings.HasPrefix(u.ProfileImageURL, "http"))
}

func TestFakeDeck(t *testing.T) {
	active := model.FakeDeck("creator", false)
	assert.False(t, active.IsDeleted.Bool())
	assert.NotEmpty(t, active.Name)

	gone := model.FakeDeck("creator", true)
	assert.True(t, gone.IsDeleted.Bool())
}

func TestFakeNoteType(t *testing.T) {
	global := model.FakeNoteType(nil, false, "Basic")
	assert.Nil(t, global.CreatorID)
	assert.Equal(t, "Basic", global.Name)
	assert.NotEmpty(t, global.Templates)

	uid := "creator"
	named := model.FakeNoteType(&uid, false, "")
	assert.NotEmpty(t, named.Name)
}
