package persistence

import "strings"

// OrderClause builds a safe ORDER BY expression. The field is checked
// against a per-entity whitelist because it gets interpolated into SQL;
// anything not whitelisted falls back to defaultField. Direction is
// normalized to ASC or DESC, defaulting to DESC.
func OrderClause(field, dir string, allowed map[string]bool, defaultField string) string {
	return sortField(field, allowed, defaultField) + " " + sortOrder(dir)
}

func sortField(field string, allowed map[string]bool, defaultField string) string {
	field = strings.TrimSpace(field)
	if field == "" || !allowed[field] {
		return defaultField
	}
	return field
}

func sortOrder(dir string) string {
	if strings.EqualFold(strings.TrimSpace(dir), "asc") {
		return "ASC"
	}
	return "DESC"
}

// ProductSortFields lists the sortable columns of community products.
var ProductSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"updated_at":  true,
	"title":       true,
	"price":       true,
	"category":    true,
	"status":      true,
	"sync_status": true,
}

// StoreSortFields lists the sortable columns of stores.
var StoreSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"name":       true,
	"slug":       true,
	"status":     true,
}

// CommunitySortFields lists the sortable columns of communities.
var CommunitySortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"code":       true,
	"name":       true,
	"status":     true,
}
