package repository

import (
	"fmt"
	"strings"
	"time"

	"github.com/noah-isme/student-management-api/internal/models"
)

// QueryObserver receives the duration of every repository query.
type QueryObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
}

type queryTimer struct {
	observer QueryObserver
}

func (t queryTimer) observe(label string, start time.Time) {
	if t.observer == nil {
		return
	}
	t.observer.ObserveDBQuery(label, time.Since(start))
}

// baseSortColumns are sortable on every table.
var baseSortColumns = map[string]string{
	"id":        "id",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

func sortColumns(extra map[string]string) map[string]string {
	columns := make(map[string]string, len(baseSortColumns)+len(extra))
	for field, column := range baseSortColumns {
		columns[field] = column
	}
	for field, column := range extra {
		columns[field] = column
	}
	return columns
}

// pageClause renders ORDER BY / LIMIT / OFFSET for req. Only fields present in
// columns may be sorted on.
func pageClause(req models.PageRequest, columns map[string]string) (string, error) {
	req = req.WithDefaults()
	terms := make([]string, 0, len(req.Sort))
	for _, order := range req.Sort {
		column, ok := columns[order.Field]
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrInvalidSort, order.Field)
		}
		direction := "ASC"
		if order.Direction == models.SortDesc {
			direction = "DESC"
		}
		terms = append(terms, column+" "+direction)
	}
	return fmt.Sprintf(" ORDER BY %s LIMIT %d OFFSET %d", strings.Join(terms, ", "), req.Size, req.Offset()), nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds a lower-cased LIKE pattern matching q anywhere.
func containsPattern(q string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(q)) + "%"
}
