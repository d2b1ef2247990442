package browse_test

import (
	"testing"

	"systemprompthub/internal/browse"
	"systemprompthub/internal/models"

	"github.com/stretchr/testify/assert"
)

func samplePrompts() []models.Prompt {
	return []models.Prompt{
		{
			ID:          "p1",
			Title:       "Code Reviewer",
			Description: "Reviews code for issues",
			Category:    "Code Prompt",
			Author:      "sarah_dev",
			Rating:      "4.8",
			Tags:        []string{"code-review", "security"},
		},
		{
			ID:          "p2",
			Title:       "UI Generator",
			Description: "Generates UI mockups",
			Category:    "UI/UX Design",
			Author:      "alex_design",
			Rating:      "4.9",
			Tags:        []string{"mobile", "ui"},
		},
	}
}

func TestFilterBySearchQuery(t *testing.T) {
	prompts := samplePrompts()

	result := browse.Filter(prompts, "ui", browse.CategoryAll)

	assert.Len(t, result, 1)
	assert.Equal(t, "UI Generator", result[0].Title)
}

func TestFilterSearchIsCaseInsensitive(t *testing.T) {
	prompts := samplePrompts()

	assert.Len(t, browse.Filter(prompts, "CODE", browse.CategoryAll), 1)
	assert.Len(t, browse.Filter(prompts, "code", browse.CategoryAll), 1)
}

func TestFilterMatchesTagsAndAuthor(t *testing.T) {
	prompts := samplePrompts()

	byTag := browse.Filter(prompts, "security", browse.CategoryAll)
	assert.Len(t, byTag, 1)
	assert.Equal(t, "p1", byTag[0].ID)

	byAuthor := browse.Filter(prompts, "alex_design", browse.CategoryAll)
	assert.Len(t, byAuthor, 1)
	assert.Equal(t, "p2", byAuthor[0].ID)
}

func TestFilterByCategory(t *testing.T) {
	prompts := samplePrompts()

	result := browse.Filter(prompts, "", "Code Prompt")

	assert.Len(t, result, 1)
	assert.Equal(t, "Code Reviewer", result[0].Title)
}

func TestFilterEmptyInputsKeepEverything(t *testing.T) {
	prompts := samplePrompts()

	result := browse.Filter(prompts, "", browse.CategoryAll)

	assert.Len(t, result, len(prompts))
}

func TestFilterNoMatchesIsEmptyNotNil(t *testing.T) {
	prompts := samplePrompts()

	result := browse.Filter(prompts, "no such prompt", browse.CategoryAll)

	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestSortByRatingDescending(t *testing.T) {
	prompts := samplePrompts()

	result := browse.Sort(prompts, browse.SortRating)

	assert.Equal(t, "UI Generator", result[0].Title)
	assert.Equal(t, "Code Reviewer", result[1].Title)

	for i := 0; i < len(result)-1; i++ {
		assert.GreaterOrEqual(t, result[i].Rating, result[i+1].Rating)
	}
}

func TestSortByRatingIsStableOnTies(t *testing.T) {
	prompts := []models.Prompt{
		{ID: "a", Title: "First", Rating: "4.5"},
		{ID: "b", Title: "Second", Rating: "4.5"},
		{ID: "c", Title: "Third", Rating: "4.5"},
	}

	result := browse.Sort(prompts, browse.SortRating)

	assert.Equal(t, []string{"a", "b", "c"}, []string{result[0].ID, result[1].ID, result[2].ID})
}

func TestSortUnparseableRatingSortsLast(t *testing.T) {
	prompts := []models.Prompt{
		{ID: "bad", Title: "Broken", Rating: "not-a-number"},
		{ID: "good", Title: "Fine", Rating: "3.0"},
	}

	result := browse.Sort(prompts, browse.SortRating)

	assert.Equal(t, "good", result[0].ID)
	assert.Equal(t, "bad", result[1].ID)
}

func TestSortNewestIsTitleAscending(t *testing.T) {
	prompts := []models.Prompt{
		{Title: "Zebra Prompt"},
		{Title: "Alpha Prompt"},
		{Title: "Mid Prompt"},
	}

	result := browse.Sort(prompts, browse.SortNewest)

	assert.Equal(t, "Alpha Prompt", result[0].Title)
	assert.Equal(t, "Mid Prompt", result[1].Title)
	assert.Equal(t, "Zebra Prompt", result[2].Title)
}

func TestSortPopularIsTitleLengthDescending(t *testing.T) {
	prompts := []models.Prompt{
		{Title: "Tiny"},
		{Title: "A considerably longer title"},
		{Title: "Medium one"},
	}

	result := browse.Sort(prompts, browse.SortPopular)

	assert.Equal(t, "A considerably longer title", result[0].Title)
	assert.Equal(t, "Medium one", result[1].Title)
	assert.Equal(t, "Tiny", result[2].Title)
}

func TestSortDoesNotMutateInput(t *testing.T) {
	prompts := []models.Prompt{
		{Title: "B", Rating: "1.0"},
		{Title: "A", Rating: "5.0"},
	}

	browse.Sort(prompts, browse.SortRating)

	assert.Equal(t, "B", prompts[0].Title)
}

func TestVisibleIsDeterministic(t *testing.T) {
	prompts := samplePrompts()
	state := browse.NewState()
	state.SearchQuery = "e"

	first := browse.Visible(prompts, state)
	second := browse.Visible(prompts, state)

	assert.Equal(t, first, second)
}

func TestVisiblePaginationWindow(t *testing.T) {
	prompts := make([]models.Prompt, 12)
	for i := range prompts {
		prompts[i] = models.Prompt{ID: string(rune('a' + i)), Title: "Prompt", Rating: "4.0"}
	}

	state := browse.NewState()
	assert.Len(t, browse.Visible(prompts, state), 9)

	state.LoadMore()
	assert.Len(t, browse.Visible(prompts, state), 12)

	// Already showing everything; a further load-more changes nothing.
	state.LoadMore()
	result := browse.Visible(prompts, state)
	assert.Len(t, result, 12)

	seen := map[string]bool{}
	for _, p := range result {
		assert.False(t, seen[p.ID], "no duplicates")
		seen[p.ID] = true
	}
}

func TestLoadMoreSurvivesFilterChanges(t *testing.T) {
	state := browse.NewState()
	state.LoadMore()

	// Changing search or category does not implicitly reset the window.
	state.SearchQuery = "ui"
	state.SelectedCategory = "Creative"

	assert.Equal(t, browse.DefaultVisible+browse.LoadMoreStep, state.VisibleCount)
}

func TestClearFiltersResetsAtomically(t *testing.T) {
	state := browse.NewState()
	state.SearchQuery = "reviewer"
	state.SelectedCategory = "Code Prompt"
	state.SortBy = browse.SortPopular
	state.LoadMore()
	state.LoadMore()

	state.ClearFilters()

	assert.Equal(t, "", state.SearchQuery)
	assert.Equal(t, browse.CategoryAll, state.SelectedCategory)
	assert.Equal(t, browse.DefaultVisible, state.VisibleCount)
	// Sort is a display preference, not a filter.
	assert.Equal(t, browse.SortPopular, state.SortBy)
}
