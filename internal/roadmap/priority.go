// Package roadmap turns gap-analysis output into an ordered, resourced
// learning plan.
package roadmap

// categoryPriority orders skill categories for roadmap sequencing:
// foundational categories first, tooling and soft skills last. Categories
// absent from this table sort after everything listed.
var categoryPriority = map[string]int{
	"Core CS":         1,
	"Programming":     2,
	"Web Development": 3,
	"Database":        4,
	"AI/ML":           5,
	"Data Science":    6,
	"Tools":           7,
	"Cloud":           8,
	"Soft Skills":     9,
	"Methodology":     10,
}

const unknownCategoryPriority = 99

// priorityFor returns the sequencing priority for a category.
func priorityFor(category string) int {
	if p, ok := categoryPriority[category]; ok {
		return p
	}
	return unknownCategoryPriority
}
