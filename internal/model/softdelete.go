package model

import (
	"database/sql/driver"
	"fmt"
	"reflect"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/schema"
)

// Deleted is the soft-delete flag column. Declaring a field of this type
// changes how GORM builds statements for the owning model, following the
// same statement-modifier mechanism as gorm.DeletedAt:
//
//   - reads and updates are filtered to is_deleted = FALSE unless the
//     session is Unscoped;
//   - Delete is rewritten into UPDATE ... SET is_deleted = TRUE.
//
// The flag is a plain bool in the schema, so rows stay addressable for
// Restore through an Unscoped session.
type Deleted bool

func (d Deleted) Bool() bool { return bool(d) }

// Scan accepts the driver representations of a boolean column; sqlite hands
// back int64, postgres bool.
func (d *Deleted) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*d = false
	case bool:
		*d = Deleted(v)
	case int64:
		*d = v != 0
	default:
		return fmt.Errorf("unsupported soft-delete column type %T", src)
	}
	return nil
}

func (d Deleted) Value() (driver.Value, error) {
	return bool(d), nil
}

func (Deleted) QueryClauses(f *schema.Field) []clause.Interface {
	return []clause.Interface{softDeleteQueryClause{Field: f}}
}

func (Deleted) UpdateClauses(f *schema.Field) []clause.Interface {
	return []clause.Interface{softDeleteUpdateClause{Field: f}}
}

func (Deleted) DeleteClauses(f *schema.Field) []clause.Interface {
	return []clause.Interface{softDeleteDeleteClause{Field: f}}
}

type softDeleteQueryClause struct {
	Field *schema.Field
}

func (softDeleteQueryClause) Name() string { return "" }

func (softDeleteQueryClause) Build(clause.Builder) {}

func (softDeleteQueryClause) MergeClause(*clause.Clause) {}

func (sd softDeleteQueryClause) ModifyStatement(stmt *gorm.Statement) {
	if _, ok := stmt.Clauses["soft_delete_enabled"]; ok || stmt.Statement.Unscoped {
		return
	}

	if c, ok := stmt.Clauses["WHERE"]; ok {
		if where, ok := c.Expression.(clause.Where); ok && len(where.Exprs) >= 1 {
			for _, expr := range where.Exprs {
				if orCond, ok := expr.(clause.OrConditions); ok && len(orCond.Exprs) == 1 {
					where.Exprs = []clause.Expression{clause.And(where.Exprs...)}
					c.Expression = where
					stmt.Clauses["WHERE"] = c
					break
				}
			}
		}
	}

	stmt.AddClause(clause.Where{Exprs: []clause.Expression{
		clause.Eq{
			Column: clause.Column{Table: clause.CurrentTable, Name: sd.Field.DBName},
			Value:  false,
		},
	}})
	stmt.Clauses["soft_delete_enabled"] = clause.Clause{}
}

type softDeleteUpdateClause struct {
	Field *schema.Field
}

func (softDeleteUpdateClause) Name() string { return "" }

func (softDeleteUpdateClause) Build(clause.Builder) {}

func (softDeleteUpdateClause) MergeClause(*clause.Clause) {}

func (sd softDeleteUpdateClause) ModifyStatement(stmt *gorm.Statement) {
	if stmt.SQL.Len() == 0 && !stmt.Statement.Unscoped {
		softDeleteQueryClause(sd).ModifyStatement(stmt)
	}
}

type softDeleteDeleteClause struct {
	Field *schema.Field
}

func (softDeleteDeleteClause) Name() string { return "" }

func (softDeleteDeleteClause) Build(clause.Builder) {}

func (softDeleteDeleteClause) MergeClause(*clause.Clause) {}

// ModifyStatement turns the pending DELETE into a soft-delete UPDATE, also
// bumping updated_at so keyset ordering reflects the transition.
func (sd softDeleteDeleteClause) ModifyStatement(stmt *gorm.Statement) {
	if stmt.SQL.Len() != 0 || stmt.Statement.Unscoped {
		return
	}

	now := stmt.DB.NowFunc()
	assignments := []clause.Assignment{
		{Column: clause.Column{Name: sd.Field.DBName}, Value: true},
	}
	if stmt.Schema != nil {
		if updated := stmt.Schema.LookUpField("UpdatedAt"); updated != nil {
			assignments = append(assignments, clause.Assignment{
				Column: clause.Column{Name: updated.DBName}, Value: now,
			})
			stmt.SetColumn(updated.DBName, now, true)
		}
	}
	stmt.AddClause(clause.Set(assignments))
	stmt.SetColumn(sd.Field.DBName, true, true)

	if stmt.Schema != nil {
		_, queryValues := schema.GetIdentityFieldValuesMap(stmt.Context, stmt.ReflectValue, stmt.Schema.PrimaryFields)
		column, values := schema.ToQueryValues(stmt.Table, stmt.Schema.PrimaryFieldDBNames, queryValues)
		if len(values) > 0 {
			stmt.AddClause(clause.Where{Exprs: []clause.Expression{clause.IN{Column: column, Values: values}}})
		}

		if stmt.ReflectValue.CanAddr() && stmt.Dest != stmt.Model && stmt.Model != nil {
			_, queryValues = schema.GetIdentityFieldValuesMap(stmt.Context, reflect.ValueOf(stmt.Model), stmt.Schema.PrimaryFields)
			column, values = schema.ToQueryValues(stmt.Table, stmt.Schema.PrimaryFieldDBNames, queryValues)
			if len(values) > 0 {
				stmt.AddClause(clause.Where{Exprs: []clause.Expression{clause.IN{Column: column, Values: values}}})
			}
		}
	}

	softDeleteQueryClause(sd).ModifyStatement(stmt)
	stmt.AddClauseIfNotExists(clause.Update{})
	stmt.Build(stmt.DB.Callback().Update().Clauses...)
}

// SetSoftDelete flips is_deleted for every row matched by query in one bulk
// UPDATE. The session is Unscoped so already-hidden rows can be targeted,
// which is what lets Restore find a deleted row.
func SetSoftDelete(query *gorm.DB, deleted bool) (int64, error) {
	res := query.Unscoped().UpdateColumns(map[string]any{
		"is_deleted": deleted,
		"updated_at": query.NowFunc(),
	})
	return res.RowsAffected, res.Error
}
