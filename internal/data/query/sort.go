package query

import "fmt"

// sortColumns is the allow-list of sortable fields. Client-supplied sort
// names resolve through this map only; unknown names never reach the
// storage layer as identifiers.
var sortColumns = map[string]string{
	"title":            "title",
	"originalTitle":    "original_title",
	"releaseDate":      "release_date",
	"createdAt":        "created_at",
	"productionBudget": "production_budget",
}

// SortColumn resolves a client sort field to its column name.
func SortColumn(field string) (string, bool) {
	col, ok := sortColumns[field]
	return col, ok
}

// OrderBy renders an ORDER BY body for an allow-listed field. It returns an
// error for anything outside the allow-list.
func OrderBy(field, order string) (string, error) {
	col, ok := sortColumns[field]
	if !ok {
		return "", fmt.Errorf("unsortable field %q", field)
	}
	dir := "ASC"
	if order == "desc" {
		dir = "DESC"
	}
	return fmt.Sprintf("%s %s", col, dir), nil
}
