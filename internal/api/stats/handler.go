package stats

import (
	"net/http"

	"systemprompthub/internal/services"
	"systemprompthub/internal/utils"

	"github.com/gin-gonic/gin"
)

// GetStats godoc
// @Summary Get directory stats
// @Description Aggregate counters for the corpus and community
// @Tags stats
// @Produce json
// @Success 200 {object} models.Stats
// @Failure 500 {object} utils.ErrorResponse
// @Router /stats [get]
func GetStats(c *gin.Context) {
	stats, err := services.GetStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to fetch stats"))
		return
	}

	c.JSON(http.StatusOK, stats)
}
