package postgres

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"villa-service/internal/domain/villa"
	"villa-service/pkg/security"
)

// applyFilters narrows db with filters. Only columns listed in allowed may be
// referenced since some operators are rendered as raw SQL fragments.
func applyFilters(db *gorm.DB, allowed map[string]bool, filters []villa.Filter) (*gorm.DB, error) {
	for _, f := range filters {
		if !allowed[f.Column] {
			return nil, fmt.Errorf("unsupported filter column %q", f.Column)
		}

		switch f.Op {
		case villa.OpEq:
			db = db.Where(clause.Eq{Column: clause.Column{Name: f.Column}, Value: f.Value})
		case villa.OpContains:
			s, ok := f.Value.(string)
			if !ok {
				return nil, fmt.Errorf("filter on %q expects a string", f.Column)
			}
			pattern := "%" + security.SanitizeSearchString(strings.ToLower(s)) + "%"
			db = db.Where(fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, f.Column), pattern)
		default:
			return nil, fmt.Errorf("unsupported filter operator %d", f.Op)
		}
	}
	return db, nil
}

func applyPage(db *gorm.DB, page villa.Page) *gorm.DB {
	if page.Size == 0 {
		return db
	}
	return db.Offset(page.Offset()).Limit(page.Size)
}
