// Package emoji maps free-text ingredient names to a representative emoji.
package emoji

import (
	"sort"
	"strings"
)

// DefaultEmoji is returned when no table entry matches.
const DefaultEmoji = "🥘"

type category struct {
	name    string
	entries map[string]string
}

// The lookup table is an ordered list of categories so that the exact-match
// pass has a defined iteration order. Keys are lowercase.
var categories = []category{
	{"viandes", map[string]string{
		"poulet":   "🍗",
		"volaille": "🍗",
		"bœuf":     "🥩",
		"boeuf":    "🥩",
		"steak":    "🥩",
		"porc":     "🥓",
		"jambon":   "🥓",
		"lard":     "🥓",
		"agneau":   "🐑",
	}},
	{"poissons", map[string]string{
		"poisson":  "🐟",
		"saumon":   "🐟",
		"truite":   "🐟",
		"crevette": "🦐",
		"crabe":    "🦀",
		"homard":   "🦞",
		"moule":    "🦪",
		"huître":   "🦪",
	}},
	{"légumes", map[string]string{
		"tomate":         "🍅",
		"carotte":        "🥕",
		"brocoli":        "🥦",
		"aubergine":      "🍆",
		"poivron":        "🌶️",
		"piment":         "🌶️",
		"maïs":           "🌽",
		"champignon":     "🍄",
		"pomme de terre": "🥔",
		"patate":         "🥔",
		"concombre":      "🥒",
		"laitue":         "🥬",
		"salade":         "🥬",
		"avocat":         "🥑",
		"oignon":         "🧅",
		"ail":            "🧄",
	}},
	{"fruits", map[string]string{
		"pomme":      "🍎",
		"banane":     "🍌",
		"orange":     "🍊",
		"clémentine": "🍊",
		"citron":     "🍋",
		"fraise":     "🍓",
		"raisin":     "🍇",
		"pastèque":   "🍉",
		"melon":      "🍉",
		"pêche":      "🍑",
		"abricot":    "🍑",
		"cerise":     "🍒",
		"ananas":     "🍍",
		"kiwi":       "🥝",
		"mangue":     "🥭",
	}},
	{"laitages", map[string]string{
		"lait":          "🥛",
		"fromage":       "🧀",
		"beurre":        "🧈",
		"yaourt":        "🥛",
		"yogourt":       "🥛",
		"crème":         "🥛",
		"crème fraîche": "🥛",
		"crème glacée":  "🍨",
	}},
	{"œufs", map[string]string{
		"œuf":  "🥚",
		"oeuf": "🥚",
	}},
	{"céréales", map[string]string{
		"pain":      "🍞",
		"riz":       "🍚",
		"pâtes":     "🍝",
		"pates":     "🍝",
		"spaghetti": "🍝",
		"macaroni":  "🍝",
		"farine":    "🌾",
		"croissant": "🥐",
	}},
	{"condiments", map[string]string{
		"sel":   "🧂",
		"sucre": "🍬",
		"miel":  "🍯",
		"huile": "🫗",
	}},
	{"noix", map[string]string{
		"cacahuète":  "🥜",
		"cacahouète": "🥜",
		"arachide":   "🥜",
		"noix":       "🌰",
		"noisette":   "🌰",
		"amande":     "🌰",
	}},
	{"boissons", map[string]string{
		"vin":   "🍷",
		"bière": "🍺",
		"café":  "☕",
		"thé":   "🍵",
	}},
}

type entry struct {
	key   string
	emoji string
}

// flattened holds every table entry sorted by key length descending so the
// substring pass prefers the most specific key ("crème glacée" before
// "crème"). Ties break lexicographically to keep the order deterministic
// rather than map-iteration dependent.
var flattened = flatten()

func flatten() []entry {
	var all []entry
	for _, c := range categories {
		for k, v := range c.entries {
			all = append(all, entry{key: k, emoji: v})
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if len(all[i].key) != len(all[j].key) {
			return len(all[i].key) > len(all[j].key)
		}
		return all[i].key < all[j].key
	})
	return all
}

// Classify returns the emoji for an ingredient name. It never fails: names
// with no table entry get DefaultEmoji. Safe for concurrent use.
func Classify(name string) string {
	n := strings.TrimSpace(strings.ToLower(name))
	if n == "" {
		return DefaultEmoji
	}

	// Exact match first, category by category.
	for _, c := range categories {
		if e, ok := c.entries[n]; ok {
			return e
		}
	}

	// Then longest substring match across the whole table.
	for _, e := range flattened {
		if strings.Contains(n, e.key) {
			return e.emoji
		}
	}

	return DefaultEmoji
}
