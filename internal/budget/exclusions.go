package budget

import (
	"strings"

	"github.com/fundflow/backend/internal/models"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
	"golang.org/x/text/cases"
)

// Exclusions decides which categories are internal transfers.
//
// A category is a transfer if its ID is one of the well known transfer
// IDs, one of the configured IDs, or if its name matches one of the
// configured glob patterns. Names are compared case insensitively.
type Exclusions struct {
	ids      map[uuid.UUID]struct{}
	patterns []string
}

// NewExclusions returns Exclusions for the well known transfer categories
// plus ids and patterns.
func NewExclusions(ids []uuid.UUID, patterns []string) Exclusions {
	e := Exclusions{
		ids: make(map[uuid.UUID]struct{}, len(models.TransferCategoryIDs)+len(ids)),
	}

	for _, id := range models.TransferCategoryIDs {
		e.ids[id] = struct{}{}
	}

	for _, id := range ids {
		e.ids[id] = struct{}{}
	}

	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		e.patterns = append(e.patterns, fold(p))
	}

	return e
}

// Excludes reports if id is a transfer category by ID alone.
func (e Exclusions) Excludes(id uuid.UUID) bool {
	_, ok := e.ids[id]
	return ok
}

// Matches reports if the category name matches a transfer pattern.
func (e Exclusions) Matches(name string) bool {
	name = fold(name)

	for _, p := range e.patterns {
		if glob.Glob(p, name) {
			return true
		}
	}

	return false
}

// resolve returns the set of excluded category IDs among the given
// categories. Subcategories of an excluded main category are excluded too.
func (e Exclusions) resolve(subcategories []models.Subcategory, mainCategories []models.MainCategory) map[uuid.UUID]struct{} {
	excluded := make(map[uuid.UUID]struct{}, len(e.ids))
	for id := range e.ids {
		excluded[id] = struct{}{}
	}

	for _, m := range mainCategories {
		if e.Matches(m.Name) {
			excluded[m.ID] = struct{}{}
		}
	}

	for _, s := range subcategories {
		_, parentExcluded := excluded[s.MainCategoryID]
		if parentExcluded || e.Matches(s.Name) {
			excluded[s.ID] = struct{}{}
		}
	}

	return excluded
}

func fold(s string) string {
	return cases.Fold().String(s)
}
