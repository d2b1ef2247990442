package services

import (
	"encoding/json"
	"errors"
	"time"

	"systemprompthub/internal/database"
	"systemprompthub/internal/models"

	"gorm.io/gorm"
)

const (
	StatsCacheKey      = "stats"
	StatsCacheDuration = time.Hour
)

// GetStats returns the singleton stats record. prompts_count is the only
// derived counter; the rest are curated values carried from seeding.
func GetStats() (*models.Stats, error) {
	if database.RedisClient != nil {
		if val, err := database.RedisClient.Get(database.Ctx, StatsCacheKey).Result(); err == nil {
			var stats models.Stats
			if err := json.Unmarshal([]byte(val), &stats); err == nil {
				return &stats, nil
			}
		}
	}

	var stats models.Stats
	if err := database.DB.First(&stats).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if database.RedisClient != nil {
		if data, err := json.Marshal(stats); err == nil {
			database.RedisClient.Set(database.Ctx, StatsCacheKey, data, StatsCacheDuration)
		}
	}

	return &stats, nil
}

// invalidateStatsCache drops the cached stats record after a write bumps
// prompts_count.
func invalidateStatsCache() {
	if database.RedisClient != nil {
		database.RedisClient.Del(database.Ctx, StatsCacheKey)
	}
}
