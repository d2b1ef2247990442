// Package browse derives the visible slice of the prompt directory from the
// cached full list and the current search, category, sort and pagination
// state. Everything here is a pure function of its inputs, so callers can
// recompute on every keystroke.
package browse

import (
	"sort"
	"strconv"
	"strings"

	"systemprompthub/internal/models"
)

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	// SortRating orders by numeric rating, highest first.
	SortRating SortKey = "rating"
	// SortNewest orders by title ascending. The data model carries no
	// creation timestamp, so this mirrors the original placeholder
	// ordering rather than true recency.
	SortNewest SortKey = "newest"
	// SortPopular orders by title length descending, the original
	// placeholder for a popularity signal that was never recorded.
	SortPopular SortKey = "popular"
)

const (
	// CategoryAll is the sentinel that disables category filtering.
	CategoryAll = "all"
	// DefaultVisible is the initial pagination window.
	DefaultVisible = 9
	// LoadMoreStep is how much each "load more" widens the window.
	LoadMoreStep = 6
)

// State is the full input of the pipeline besides the prompt list itself.
type State struct {
	SearchQuery      string
	SelectedCategory string
	SortBy           SortKey
	VisibleCount     int
}

// NewState returns the default browse state: no filters, rating sort, the
// first page of results.
func NewState() State {
	return State{
		SearchQuery:      "",
		SelectedCategory: CategoryAll,
		SortBy:           SortRating,
		VisibleCount:     DefaultVisible,
	}
}

// LoadMore widens the pagination window. Widening past the end of the
// filtered list is harmless; Visible clamps.
func (s *State) LoadMore() {
	s.VisibleCount += LoadMoreStep
}

// ClearFilters resets search, category and the pagination window in one
// step. The sort key is a display preference and survives the reset.
func (s *State) ClearFilters() {
	s.SearchQuery = ""
	s.SelectedCategory = CategoryAll
	s.VisibleCount = DefaultVisible
}

// Filter keeps prompts that match the search term in title, description,
// author or any tag (case-insensitive substring, empty term matches all)
// and belong to the selected category. Relative order is preserved.
func Filter(prompts []models.Prompt, searchQuery, selectedCategory string) []models.Prompt {
	term := strings.ToLower(searchQuery)
	out := make([]models.Prompt, 0, len(prompts))
	for _, p := range prompts {
		if matchesSearch(&p, term) && matchesCategory(&p, selectedCategory) {
			out = append(out, p)
		}
	}
	return out
}

func matchesSearch(p *models.Prompt, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Title), term) ||
		strings.Contains(strings.ToLower(p.Description), term) ||
		strings.Contains(strings.ToLower(p.Author), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

func matchesCategory(p *models.Prompt, selected string) bool {
	return selected == CategoryAll || p.Category == selected
}

// Sort returns a sorted copy of the given prompts. All orderings are
// stable: ties keep their filter-stage relative order.
func Sort(prompts []models.Prompt, key SortKey) []models.Prompt {
	out := make([]models.Prompt, len(prompts))
	copy(out, prompts)

	switch key {
	case SortNewest:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Title < out[j].Title
		})
	case SortPopular:
		sort.SliceStable(out, func(i, j int) bool {
			return len(out[i].Title) > len(out[j].Title)
		})
	default: // SortRating
		sort.SliceStable(out, func(i, j int) bool {
			return ratingValue(out[i].Rating) > ratingValue(out[j].Rating)
		})
	}

	return out
}

// Ratings are free-form decimal text; anything unparseable sorts as zero.
func ratingValue(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// Visible runs the whole pipeline: filter, sort, then clamp to the
// pagination window.
func Visible(prompts []models.Prompt, s State) []models.Prompt {
	result := Sort(Filter(prompts, s.SearchQuery, s.SelectedCategory), s.SortBy)
	if s.VisibleCount < len(result) {
		result = result[:s.VisibleCount]
	}
	return result
}
