package stats_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"systemprompthub/internal/api/stats"
	"systemprompthub/internal/database"
	"systemprompthub/internal/models"
	"systemprompthub/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTestDB() {
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

func TestGetStats(t *testing.T) {
	setupTestDB()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/api/stats", nil)

	stats.GetStats(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var got models.Stats
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 9, got.PromptsCount)
	assert.Equal(t, 8, got.CategoriesCount)
	assert.Equal(t, 156, got.ContributorsCount)
	assert.Equal(t, 32, got.InsightsCount)
}
