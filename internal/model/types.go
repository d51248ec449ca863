package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// JSON-encoded column types. Kept portable (plain TEXT) so the same models
// run against postgres in production and sqlite in tests.

// FieldData maps a note type's field names to this note's values.
type FieldData map[string]string

func (d FieldData) Value() (driver.Value, error) {
	if d == nil {
		d = FieldData{}
	}
	b, err := json.Marshal(d)
	return string(b), err
}

func (d *FieldData) Scan(src any) error {
	return scanJSON(src, d)
}

// StringList is a JSON-encoded list column (note tags).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(src any) error {
	return scanJSON(src, l)
}

// Template is one front/back pair of a note type. Placeholders use
// {{field}} syntax; the distinct placeholder names across all templates
// form the note type's field set.
type Template struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// TemplateList is the JSON-encoded template column of a note type.
type TemplateList []Template

func (l TemplateList) Value() (driver.Value, error) {
	if l == nil {
		l = TemplateList{}
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *TemplateList) Scan(src any) error {
	return scanJSON(src, l)
}

func scanJSON(src, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("unsupported column type %T", src)
	}
}
