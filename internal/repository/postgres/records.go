package postgres

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/Perfectmodels/perfect-model-hub-sub001/internal/normalize"
)

// keyedTables conflict on "key" instead of "id": the flat key/value
// collections folded into maps by the aggregator.
var keyedTables = map[string]bool{
	TableSocialLinks: true,
	TableSiteImages:  true,
}

// UpsertRecord writes one camelCase-keyed record into a watched table,
// renaming keys to the backend's snake_case on the way out. The record must
// carry the table's conflict key. Admin screens use this for the small
// editorial collections that have no typed repository of their own.
func (db *DB) UpsertRecord(ctx context.Context, table string, record map[string]any) error {
	if !watchedTables[table] {
		return fmt.Errorf("unknown collection %q", table)
	}

	conflictKey := "id"
	if keyedTables[table] {
		conflictKey = "key"
	}

	row := normalize.ToExternal(record)
	if _, ok := row[conflictKey]; !ok {
		return fmt.Errorf("record for %s is missing %q", table, conflictKey)
	}

	columns := make([]string, 0, len(row))
	for col := range row {
		columns = append(columns, col)
	}
	sort.Strings(columns)

	quoted := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	updates := make([]string, 0, len(columns))
	args := make([]any, len(columns))

	for i, col := range columns {
		quoted[i] = pgx.Identifier{col}.Sanitize()
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = row[col]
		if col != conflictKey {
			updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", quoted[i], quoted[i]))
		}
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (%s) DO UPDATE SET %s",
		table,
		strings.Join(quoted, ", "),
		strings.Join(placeholders, ", "),
		conflictKey,
		strings.Join(updates, ", "),
	)

	if _, err := db.Pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to upsert record in %s: %w", table, err)
	}
	return nil
}

// DeleteRecord removes one row by its conflict key from a watched table.
func (db *DB) DeleteRecord(ctx context.Context, table, id string) error {
	if !watchedTables[table] {
		return fmt.Errorf("unknown collection %q", table)
	}

	column := "id"
	if keyedTables[table] {
		column = "key"
	}

	if _, err := db.Pool.Exec(ctx, "DELETE FROM "+table+" WHERE "+column+" = $1", id); err != nil {
		return fmt.Errorf("failed to delete record from %s: %w", table, err)
	}
	return nil
}
