package db

import (
	"fmt"
	"time"

	"mnemo/internal/jobs"
	"mnemo/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the postgres connection. Timestamps are generated in UTC so
// keyset ordering and the soft-delete transition stamp are comparable across
// app instances.
func Connect(dsn string) (*gorm.DB, error) {
	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, err
	}
	return gdb, nil
}

func AutoMigrateAndIndexes(gdb *gorm.DB) error {
	// Tables
	if err := gdb.AutoMigrate(
		&model.User{},
		&model.Deck{},
		&model.NoteType{},
		&model.Note{},
		&model.Card{},
		&jobs.Job{},
	); err != nil {
		return err
	}

	// Deck names are unique per creator
	if err := gdb.Exec(`create unique index if not exists uq_decks_creator_name on decks(creator_id, name);`).Error; err != nil {
		return err
	}

	// Note type names are unique within the global namespace (creator_id null)
	if err := gdb.Exec(`
create unique index if not exists uq_note_types_global_name
on note_types(name)
where creator_id is null;
`).Error; err != nil {
		return err
	}

	// ... and unique per owning user
	if err := gdb.Exec(`
create unique index if not exists uq_note_types_creator_name
on note_types(creator_id, name)
where creator_id is not null;
`).Error; err != nil {
		return err
	}

	// Keyset listing + worker indexes
	stmts := []string{
		`create index if not exists idx_decks_creator_updated on decks(creator_id, updated_at desc, id desc);`,
		`create index if not exists idx_note_types_creator_updated on note_types(creator_id, updated_at desc, id desc);`,
		`create index if not exists idx_notes_creator_deck_updated on notes(creator_id, deck_id, updated_at desc, id desc);`,
		`create index if not exists idx_cards_creator_deck_updated on cards(creator_id, deck_id, updated_at desc, id desc);`,
		`create index if not exists idx_cards_deck_due on cards(deck_id, due_date) where is_suspended = false;`,
		`create index if not exists idx_jobs_due on jobs(status, run_at);`,
		`create index if not exists idx_jobs_lock on jobs(status, locked_at);`,
	}
	for _, s := range stmts {
		if err := gdb.Exec(s).Error; err != nil {
			return fmt.Errorf("index exec failed: %w (sql=%s)", err, s)
		}
	}

	return nil
}
