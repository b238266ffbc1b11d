package report

import "expense-tracker/internal/core"

// FindCategory looks up a category by id.
func FindCategory(categories []core.Category, id string) (core.Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return core.Category{}, false
}

// LookupCategory is FindCategory with the placeholder substituted for
// references that no longer resolve.
func LookupCategory(categories []core.Category, id string) core.Category {
	if c, ok := FindCategory(categories, id); ok {
		return c
	}
	return core.UnknownCategory(id)
}

// CategoriesForType returns the categories a transaction of typ may use.
func CategoriesForType(categories []core.Category, typ core.TransactionType) []core.Category {
	out := make([]core.Category, 0, len(categories))
	for _, c := range categories {
		if c.Type == typ {
			out = append(out, c)
		}
	}
	return out
}
