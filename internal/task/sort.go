package task

import (
	"strings"

	"github.com/lib/pq"
)

// sortColumns is the only source of ORDER BY identifiers. Caller input never
// reaches the query text; anything outside this map drops the clause.
var sortColumns = map[string]string{
	"created_at": "created_at",
	"updated_at": "updated_at",
	"due_date":   "due_date",
	"title":      "title",
	"status":     "status",
	"priority":   "priority",
}

// OrderClause maps a Sort onto a store-native ORDER BY expression.
// Unrecognized field or order returns "" and the list keeps the store's
// default (unspecified) order.
func OrderClause(s Sort) string {
	col, ok := sortColumns[s.Field]
	if !ok {
		return ""
	}
	dir := strings.ToUpper(s.Order)
	if dir != "ASC" && dir != "DESC" {
		return ""
	}
	return pq.QuoteIdentifier(col) + " " + dir
}
