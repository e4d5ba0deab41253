// Package category maps free-text product descriptions to category tags.
package category

import (
	"strings"

	"github.com/davemendes/salespipe/internal/cleaning"
)

// Fallback labels.
const (
	Unknown = "Unknown"
	Other   = "Other"
)

// rule pairs a category with the keywords that select it.
type rule struct {
	category string
	keywords []string
}

// rules is evaluated top to bottom, first match wins. Keywords overlap
// across categories ("box" selects Gift before Storage ever sees it), so
// the order is part of the classifier's contract and must not change.
var rules = []rule{
	{"Gift", []string{"gift", "set", "box", "christmas", "holiday"}},
	{"Kitchen", []string{"kitchen", "cook", "bake", "spoon", "fork", "knife", "plate", "cup", "kettle", "jar", "bottle"}},
	{"Garden", []string{"garden", "outdoor", "plant", "flower", "seed"}},
	{"Decoration", []string{"decor", "decoration", "ornament", "candle", "frame", "sign", "holder"}},
	{"Storage", []string{"box", "bag", "storage", "basket", "tin", "case"}},
	{"Bathroom", []string{"bath", "shower", "soap", "towel"}},
	{"Clothing", []string{"bag", "hat", "scarf", "shirt", "cloth"}},
	{"Toys", []string{"toy", "game", "play", "puzzle"}},
	{"Stationery", []string{"paper", "card", "pen", "pencil", "tape", "notebook"}},
	{"Food", []string{"coffee", "tea", "chocolate", "cake", "food", "drink"}},
}

// Classify returns the category for a product description. Descriptions
// that are empty or were filled in as unknown by the cleaner skip keyword
// matching entirely.
func Classify(description string) string {
	if description == "" || description == cleaning.UnknownDescription {
		return Unknown
	}

	lower := strings.ToLower(description)

	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.category
			}
		}
	}

	return Other
}
