package category

import (
	"errors"
	"net/http"

	"systemprompthub/internal/services"
	"systemprompthub/internal/utils"

	"github.com/gin-gonic/gin"
)

// ListCategories godoc
// @Summary List all categories
// @Tags categories
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {object} utils.ErrorResponse
// @Router /categories [get]
func ListCategories(c *gin.Context) {
	categories, err := services.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to fetch categories"))
		return
	}

	c.JSON(http.StatusOK, categories)
}

// GetCategory godoc
// @Summary Get a category
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} models.Category
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /categories/{id} [get]
func GetCategory(c *gin.Context) {
	category, err := services.GetCategory(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("Category not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to fetch category"))
		return
	}

	c.JSON(http.StatusOK, category)
}
