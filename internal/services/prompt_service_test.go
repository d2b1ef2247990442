package services_test

import (
	"fmt"
	"testing"

	"systemprompthub/internal/database"
	"systemprompthub/internal/models"
	"systemprompthub/internal/services"
	"systemprompthub/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/glebarez/sqlite"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	logger.Log = zap.NewNop()
	database.RedisClient = nil

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(fmt.Sprintf("failed to connect database: %v", err))
	}
	database.DB = db

	if err := database.Reset(db); err != nil {
		panic("failed to migrate database")
	}
	if err := database.Seed(db); err != nil {
		panic("failed to seed database")
	}
}

func setupTestRedis(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	database.RedisClient = redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})
	return mr
}

func validInput() services.CreatePromptInput {
	return services.CreatePromptInput{
		Title:       "Test Prompt",
		Description: "A prompt used in tests",
		Content:     "You are a test assistant...",
		Category:    "Code Prompt",
		Author:      "test_author",
		Rating:      "4.2",
		Tags:        []string{"testing"},
	}
}

func TestListPromptsReturnsSeedCorpus(t *testing.T) {
	setupTestDB(t)

	prompts, err := services.ListPrompts()

	assert.NoError(t, err)
	assert.Len(t, prompts, 9)
}

func TestGetPromptNotFound(t *testing.T) {
	setupTestDB(t)

	_, err := services.GetPrompt("no-such-id")

	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestGetPromptUsesCache(t *testing.T) {
	setupTestDB(t)
	mr := setupTestRedis(t)
	defer mr.Close()

	prompts, _ := services.ListPrompts()
	target := prompts[0]

	first, err := services.GetPrompt(target.ID)
	assert.NoError(t, err)
	assert.Equal(t, target.Title, first.Title)

	// Primed on first read.
	assert.True(t, mr.Exists(services.PromptCacheKeyPrefix+target.ID))

	second, err := services.GetPrompt(target.ID)
	assert.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSearchPromptsMatchesTitleDescriptionTags(t *testing.T) {
	setupTestDB(t)

	byTitle, err := services.SearchPrompts("code reviewer")
	assert.NoError(t, err)
	assert.Len(t, byTitle, 1)
	assert.Equal(t, "Advanced Code Reviewer", byTitle[0].Title)

	byDescription, err := services.SearchPrompts("writer's block")
	assert.NoError(t, err)
	assert.Len(t, byDescription, 1)
	assert.Equal(t, "Storytelling Assistant", byDescription[0].Title)

	byTag, err := services.SearchPrompts("pandas")
	assert.NoError(t, err)
	assert.Len(t, byTag, 1)
	assert.Equal(t, "Python Data Analyst", byTag[0].Title)
}

func TestSearchPromptsIsCaseInsensitive(t *testing.T) {
	setupTestDB(t)

	lower, err := services.SearchPrompts("storytelling")
	assert.NoError(t, err)
	upper, err := services.SearchPrompts("STORYTELLING")
	assert.NoError(t, err)

	assert.Equal(t, lower, upper)
	assert.NotEmpty(t, lower)
}

func TestSearchPromptsEmptyQueryReturnsAll(t *testing.T) {
	setupTestDB(t)

	all, err := services.ListPrompts()
	assert.NoError(t, err)

	result, err := services.SearchPrompts("")
	assert.NoError(t, err)
	assert.Equal(t, all, result)
}

func TestSearchPromptsResultsAreSubsetAndMatch(t *testing.T) {
	setupTestDB(t)

	results, err := services.SearchPrompts("marketing")
	assert.NoError(t, err)
	assert.NotEmpty(t, results)

	all, _ := services.ListPrompts()
	ids := map[string]bool{}
	for _, p := range all {
		ids[p.ID] = true
	}
	for _, p := range results {
		assert.True(t, ids[p.ID], "result must come from the stored set")
	}
}

func TestPromptsByCategoryIsExactMatch(t *testing.T) {
	setupTestDB(t)

	results, err := services.PromptsByCategory("Code Prompt")
	assert.NoError(t, err)
	assert.Len(t, results, 3)
	for _, p := range results {
		assert.Equal(t, "Code Prompt", p.Category)
	}

	// Category names are matched case-sensitively.
	none, err := services.PromptsByCategory("code prompt")
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestCreatePromptStoresAndUpdatesStats(t *testing.T) {
	setupTestDB(t)

	before, _ := services.GetStats()

	created, err := services.CreatePrompt(validInput())
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Test Prompt", created.Title)
	assert.Equal(t, "4.2", created.Rating)

	prompts, _ := services.ListPrompts()
	assert.Len(t, prompts, before.PromptsCount+1)

	after, err := services.GetStats()
	assert.NoError(t, err)
	assert.Equal(t, before.PromptsCount+1, after.PromptsCount)

	// The other counters are curated values and stay put.
	assert.Equal(t, before.CategoriesCount, after.CategoriesCount)
	assert.Equal(t, before.ContributorsCount, after.ContributorsCount)
	assert.Equal(t, before.InsightsCount, after.InsightsCount)
}

func TestCreatePromptDefaults(t *testing.T) {
	setupTestDB(t)

	input := validInput()
	input.Rating = ""
	input.Tags = nil

	created, err := services.CreatePrompt(input)

	assert.NoError(t, err)
	assert.Equal(t, "0.0", created.Rating)
	assert.NotNil(t, created.Tags)
	assert.Empty(t, created.Tags)
}

func TestCreatePromptAssignsUniqueIDs(t *testing.T) {
	setupTestDB(t)

	first, err := services.CreatePrompt(validInput())
	assert.NoError(t, err)
	second, err := services.CreatePrompt(validInput())
	assert.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestCreatePromptValidationFailureDoesNotMutate(t *testing.T) {
	setupTestDB(t)

	before, _ := services.ListPrompts()
	statsBefore, _ := services.GetStats()

	input := validInput()
	input.Title = ""
	input.Author = "   "

	_, err := services.CreatePrompt(input)

	var verr *services.ValidationError
	assert.ErrorAs(t, err, &verr)

	fields := map[string]bool{}
	for _, f := range verr.Fields {
		fields[f.Field] = true
	}
	assert.True(t, fields["title"])
	assert.True(t, fields["author"])

	after, _ := services.ListPrompts()
	assert.Equal(t, len(before), len(after))

	statsAfter, _ := services.GetStats()
	assert.Equal(t, statsBefore.PromptsCount, statsAfter.PromptsCount)
}

func TestCreatePromptInvalidatesStatsCache(t *testing.T) {
	setupTestDB(t)
	mr := setupTestRedis(t)
	defer mr.Close()

	// Prime the cache, then write.
	_, err := services.GetStats()
	assert.NoError(t, err)
	assert.True(t, mr.Exists(services.StatsCacheKey))

	_, err = services.CreatePrompt(validInput())
	assert.NoError(t, err)
	assert.False(t, mr.Exists(services.StatsCacheKey))

	stats, err := services.GetStats()
	assert.NoError(t, err)
	assert.Equal(t, 10, stats.PromptsCount)
}

func TestGetCategoryNotFound(t *testing.T) {
	setupTestDB(t)

	_, err := services.GetCategory("missing")

	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestListCategoriesReturnsSeedPalette(t *testing.T) {
	setupTestDB(t)

	categories, err := services.ListCategories()
	assert.NoError(t, err)
	assert.Len(t, categories, 5)

	byName := map[string]models.Category{}
	for _, c := range categories {
		byName[c.Name] = c
	}
	assert.Equal(t, "blue", byName["Code Prompt"].Color)
	assert.Equal(t, "palette", byName["UI/UX Design"].Icon)
}
