package services

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"systemprompthub/internal/database"
	"systemprompthub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PromptCacheKeyPrefix = "prompt:id:"
	PromptCacheDuration  = 24 * time.Hour
)

// CreatePromptInput is the payload for a prompt submission. Rating and Tags
// are optional and default to "0.0" and an empty list.
type CreatePromptInput struct {
	Title       string
	Description string
	Content     string
	Category    string
	Author      string
	Rating      string
	Tags        []string
}

// ListPrompts returns all prompts in insertion order.
func ListPrompts() ([]models.Prompt, error) {
	var prompts []models.Prompt
	if err := database.DB.Find(&prompts).Error; err != nil {
		return nil, err
	}
	return prompts, nil
}

// GetPrompt retrieves a prompt by id, using cache
func GetPrompt(id string) (*models.Prompt, error) {
	cacheKey := PromptCacheKeyPrefix + id

	// Try cache
	if database.RedisClient != nil {
		if val, err := database.RedisClient.Get(database.Ctx, cacheKey).Result(); err == nil {
			var prompt models.Prompt
			if err := json.Unmarshal([]byte(val), &prompt); err == nil {
				return &prompt, nil
			}
		}
	}

	var prompt models.Prompt
	if err := database.DB.Where("id = ?", id).First(&prompt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// Prompts are immutable once stored, so the cache never goes stale
	if database.RedisClient != nil {
		if data, err := json.Marshal(prompt); err == nil {
			database.RedisClient.Set(database.Ctx, cacheKey, data, PromptCacheDuration)
		}
	}

	return &prompt, nil
}

// SearchPrompts returns prompts whose title, description, or any tag
// contains the query, case-insensitively. An empty query matches
// everything. Results keep store iteration order; there is no ranking.
func SearchPrompts(query string) ([]models.Prompt, error) {
	prompts, err := ListPrompts()
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(query)
	matched := make([]models.Prompt, 0, len(prompts))
	for _, p := range prompts {
		if promptMatches(&p, term) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

// Tags live in a JSON column, so matching happens here rather than in SQL.
func promptMatches(p *models.Prompt, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Title), term) ||
		strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// PromptsByCategory returns prompts whose category equals the given name
// exactly. Category is a logical key, so an unknown name yields an empty
// list rather than an error.
func PromptsByCategory(category string) ([]models.Prompt, error) {
	var prompts []models.Prompt
	if err := database.DB.Where("category = ?", category).Find(&prompts).Error; err != nil {
		return nil, err
	}
	return prompts, nil
}

// CreatePrompt validates the payload, stores the prompt under a fresh id,
// and recomputes stats.prompts_count in the same transaction. A validation
// failure leaves the store untouched.
func CreatePrompt(input CreatePromptInput) (*models.Prompt, error) {
	if err := validateCreatePrompt(&input); err != nil {
		return nil, err
	}

	if input.Rating == "" {
		input.Rating = "0.0"
	}
	if input.Tags == nil {
		input.Tags = []string{}
	}

	prompt := &models.Prompt{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Content:     input.Content,
		Category:    input.Category,
		Author:      input.Author,
		Rating:      input.Rating,
		Tags:        input.Tags,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(prompt).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&models.Prompt{}).Count(&count).Error; err != nil {
			return err
		}

		return tx.Model(&models.Stats{}).
			Where("1 = 1").
			Update("prompts_count", count).Error
	})
	if err != nil {
		return nil, err
	}

	invalidateStatsCache()

	return prompt, nil
}

func validateCreatePrompt(input *CreatePromptInput) error {
	required := []struct {
		field string
		value string
	}{
		{"title", input.Title},
		{"description", input.Description},
		{"content", input.Content},
		{"category", input.Category},
		{"author", input.Author},
	}

	var fields []FieldError
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			fields = append(fields, FieldError{
				Field:   r.field,
				Message: "must be a non-empty string",
			})
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
