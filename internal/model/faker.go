package model

import "github.com/brianvoe/gofakeit/v6"

// Model fakers for seeding test databases.

func FakeUser() User {
	return User{
		Username:        gofakeit.Username(),
		Email:           gofakeit.Email(),
		PasswordHash:    gofakeit.Password(true, true, true, true, false, 24),
		ProfileImageURL: gofakeit.URL(),
		DeckOption:      FakeDeckOption(),
	}
}

func FakeDeckOption() DeckOption {
	return DeckOption{
		NewCardsPerDay:      gofakeit.Number(5, 50),
		ReviewLimitPerDay:   gofakeit.Number(50, 500),
		SortOrder:           DeckSortOrder(gofakeit.Number(0, 2)),
		InterdayLearningMix: gofakeit.Bool(),
	}
}

func FakeDeck(creatorID string, deleted bool) Deck {
	desc := gofakeit.Sentence(8)
	return Deck{
		Tracked:      Tracked{IsDeleted: Deleted(deleted)},
		CreatorID:    creatorID,
		Name:         gofakeit.Sentence(3),
		Description:  &desc,
		IsPublic:     gofakeit.Bool(),
		IsUserOption: false,
		Option:       FakeDeckOption(),
	}
}

// FakeNoteType builds a note type; pass name to pin the (otherwise random)
// name, and nil creatorID for a global type.
func FakeNoteType(creatorID *string, deleted bool, name string) NoteType {
	if name == "" {
		name = gofakeit.ProductName()
	}
	return NoteType{
		Tracked:   Tracked{IsDeleted: Deleted(deleted)},
		CreatorID: creatorID,
		Name:      name,
		Templates: TemplateList{
			{Front: "{{front}}", Back: "{{back}}"},
		},
		CssStyle: ".card { font-size: 16px; }",
	}
}
