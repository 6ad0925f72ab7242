// Package catalog computes the visible subset of a recipe collection from
// user-selected predicates, plus the tag vocabulary driving the filter UI.
// It is purely in-memory: no sorting, no persistence, input order preserved.
package catalog

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/petitplat/backend/internal/types"
)

// ViewMode narrows the collection to a subset of creators.
type ViewMode string

const (
	ViewAll          ViewMode = "all"
	ViewFavorites    ViewMode = "favorites"
	ViewOwnCreations ViewMode = "custom"
	ViewOwnedBy      ViewMode = "owned"
)

// FilterSpec is the set of predicates a viewer has selected. All predicates
// are combined with AND.
//
// RequiredTags uses match-ALL semantics: a recipe passes when its tag set is
// a superset of the required set. An empty required set always matches.
type FilterSpec struct {
	Search       string
	View         ViewMode
	ViewerID     *uuid.UUID
	FavoriteIDs  map[uint]bool
	RequiredTags []string
}

// Filter returns the recipes matching every predicate in spec, in the same
// order they were given. Filtering an already-filtered result with the same
// spec returns the same set.
func Filter(recipes []types.RecipeView, spec FilterSpec) []types.RecipeView {
	out := make([]types.RecipeView, 0, len(recipes))
	for _, r := range recipes {
		if matchesSearch(r, spec.Search) && matchesView(r, spec) && matchesTags(r, spec.RequiredTags) {
			out = append(out, r)
		}
	}
	return out
}

func matchesSearch(r types.RecipeView, search string) bool {
	if search == "" {
		return true
	}
	q := strings.ToLower(search)
	if strings.Contains(strings.ToLower(r.Title), q) {
		return true
	}
	for _, ing := range r.Ingredients {
		if strings.Contains(strings.ToLower(ing.Name), q) {
			return true
		}
	}
	return false
}

func matchesView(r types.RecipeView, spec FilterSpec) bool {
	switch spec.View {
	case ViewFavorites:
		return spec.FavoriteIDs[r.ID]
	case ViewOwnCreations:
		return r.IsCustom
	case ViewOwnedBy:
		// Nobody signed in means nothing is owned.
		if spec.ViewerID == nil || r.UserID == nil {
			return false
		}
		return *r.UserID == *spec.ViewerID
	default:
		return true
	}
}

func matchesTags(r types.RecipeView, required []string) bool {
	if len(required) == 0 {
		return true
	}
	have := make(map[string]bool, len(r.Tags))
	for _, t := range r.Tags {
		have[t] = true
	}
	for _, t := range required {
		if !have[t] {
			return false
		}
	}
	return true
}

// DistinctTags returns the deduplicated union of every recipe's tags, sorted
// lexicographically.
func DistinctTags(recipes []types.RecipeView) []string {
	seen := make(map[string]bool)
	for _, r := range recipes {
		for _, t := range r.Tags {
			seen[t] = true
		}
	}
	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}
