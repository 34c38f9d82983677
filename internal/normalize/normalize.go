// Package normalize converts between the backend's snake_case row keys and
// the application's camelCase record keys. Both transforms are shallow: only
// top-level keys are renamed, values (including nested maps and slices) pass
// through untouched. Colliding keys after transformation are a known
// limitation; last assignment wins.
package normalize

import "strings"

// ToInternal renames snake_case keys to camelCase. A nil map is returned as is.
func ToInternal(row map[string]any) map[string]any {
	if row == nil {
		return nil
	}

	record := make(map[string]any, len(row))
	for k, v := range row {
		record[snakeToCamel(k)] = v
	}
	return record
}

// ToExternal renames camelCase keys to snake_case. A nil map is returned as is.
func ToExternal(record map[string]any) map[string]any {
	if record == nil {
		return nil
	}

	row := make(map[string]any, len(record))
	for k, v := range record {
		row[camelToSnake(k)] = v
	}
	return row
}

func snakeToCamel(key string) string {
	parts := strings.Split(key, "_")
	if len(parts) == 1 {
		return key
	}

	var b strings.Builder
	b.Grow(len(key))
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

func camelToSnake(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	for i, r := range key {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
