package model

import (
	"time"

	"mnemo/internal/render"
)

// NoteType defines the templates notes are rendered with. A nil CreatorID
// marks a global type shared across all users; names are unique within the
// global namespace (partial index in db.AutoMigrateAndIndexes).
type NoteType struct {
	Tracked
	ID        uint64       `gorm:"primaryKey" json:"id"`
	CreatorID *string      `gorm:"type:uuid;index" json:"creator_id"`
	Name      string       `gorm:"not null;index" json:"name"`
	Templates TemplateList `gorm:"type:text;not null" json:"templates"`
	CssStyle  string       `gorm:"type:text" json:"css_style"`

	Creator *User `gorm:"foreignKey:CreatorID" json:"-"`
}

// Fields derives the note type's field set from the {{placeholder}} names
// used across every template face.
func (nt NoteType) Fields() []string {
	faces := make([]string, 0, len(nt.Templates)*2)
	for _, t := range nt.Templates {
		faces = append(faces, t.Front, t.Back)
	}
	return render.Fields(faces)
}

func (nt NoteType) KeysetID() uint64 { return nt.ID }

func (nt NoteType) KeysetUpdatedAt() time.Time { return nt.UpdatedAt }
