package grocery

import "strings"

// Categorize guesses the category for a grocery item name so new items land
// in a sensible aisle without a backend round trip. Case-insensitive: exact
// match first, then substring match, "Other" as the fallback.
func Categorize(itemName string) string {
	name := strings.ToLower(strings.TrimSpace(itemName))
	if name == "" {
		return "Other"
	}

	if cat, ok := exactMatch[name]; ok {
		return cat
	}

	for _, entry := range substringMatches {
		if strings.Contains(name, entry.keyword) {
			return entry.category
		}
	}

	return "Other"
}

var exactMatch = map[string]string{
	// Produce
	"apples":   "Produce",
	"bananas":  "Produce",
	"tomatoes": "Produce",
	"potatoes": "Produce",
	"onions":   "Produce",
	"garlic":   "Produce",
	"lettuce":  "Produce",
	"spinach":  "Produce",
	"avocado":  "Produce",
	"lemons":   "Produce",

	// Dairy
	"milk":   "Dairy",
	"butter": "Dairy",
	"cheese": "Dairy",
	"yogurt": "Dairy",
	"eggs":   "Dairy",
	"cream":  "Dairy",

	// Bakery
	"bread":    "Bakery",
	"bagels":   "Bakery",
	"tortilla": "Bakery",

	// Pantry
	"rice":   "Pantry",
	"pasta":  "Pantry",
	"flour":  "Pantry",
	"sugar":  "Pantry",
	"salt":   "Pantry",
	"beans":  "Pantry",
	"cereal": "Pantry",

	// Beverages
	"coffee": "Beverages",
	"tea":    "Beverages",
	"juice":  "Beverages",
	"soda":   "Beverages",
	"beer":   "Beverages",
	"wine":   "Beverages",

	// Household
	"dish soap":         "Household",
	"paper towels":      "Household",
	"toilet paper":      "Household",
	"trash bags":        "Household",
	"sponges":           "Household",
	"laundry detergent": "Household",
}

type substringEntry struct {
	keyword  string
	category string
}

var substringMatches = []substringEntry{
	// Longer, more specific phrases first
	{"chicken breast", "Meat & Seafood"},
	{"ground beef", "Meat & Seafood"},
	{"ground turkey", "Meat & Seafood"},
	{"chicken", "Meat & Seafood"},
	{"beef", "Meat & Seafood"},
	{"pork", "Meat & Seafood"},
	{"salmon", "Meat & Seafood"},
	{"shrimp", "Meat & Seafood"},
	{"frozen", "Frozen"},
	{"ice cream", "Frozen"},
	{"chips", "Snacks"},
	{"crackers", "Snacks"},
	{"cookies", "Snacks"},
	{"shampoo", "Personal Care"},
	{"toothpaste", "Personal Care"},
	{"deodorant", "Personal Care"},
	{"soap", "Personal Care"},
	{"cleaner", "Household"},
	{"detergent", "Household"},
	{"milk", "Dairy"},
	{"cheese", "Dairy"},
	{"juice", "Beverages"},
	{"water", "Beverages"},
	{"bread", "Bakery"},
	{"sauce", "Pantry"},
	{"oil", "Pantry"},
}
