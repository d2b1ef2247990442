package prompt

import (
	"errors"
	"net/http"

	"systemprompthub/internal/services"
	"systemprompthub/internal/utils"

	"github.com/gin-gonic/gin"
)

// ListPrompts godoc
// @Summary List all prompts
// @Description Get every prompt in the directory
// @Tags prompts
// @Produce json
// @Success 200 {array} models.Prompt
// @Failure 500 {object} utils.ErrorResponse
// @Router /prompts [get]
func ListPrompts(c *gin.Context) {
	prompts, err := services.ListPrompts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to fetch prompts"))
		return
	}

	c.JSON(http.StatusOK, prompts)
}

// GetPrompt godoc
// @Summary Get a prompt
// @Description Get a single prompt by its id
// @Tags prompts
// @Produce json
// @Param id path string true "Prompt ID"
// @Success 200 {object} models.Prompt
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /prompts/{id} [get]
func GetPrompt(c *gin.Context) {
	prompt, err := services.GetPrompt(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("Prompt not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to fetch prompt"))
		return
	}

	c.JSON(http.StatusOK, prompt)
}

// SearchPrompts godoc
// @Summary Search prompts
// @Description Case-insensitive substring search over title, description and tags
// @Tags prompts
// @Produce json
// @Param query path string true "Search term"
// @Success 200 {array} models.Prompt
// @Failure 500 {object} utils.ErrorResponse
// @Router /prompts/search/{query} [get]
func SearchPrompts(c *gin.Context) {
	prompts, err := services.SearchPrompts(c.Param("query"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to search prompts"))
		return
	}

	c.JSON(http.StatusOK, prompts)
}

// PromptsByCategory godoc
// @Summary List prompts in a category
// @Description Get prompts whose category matches the given name exactly
// @Tags prompts
// @Produce json
// @Param category path string true "Category name"
// @Success 200 {array} models.Prompt
// @Failure 500 {object} utils.ErrorResponse
// @Router /prompts/category/{category} [get]
func PromptsByCategory(c *gin.Context) {
	prompts, err := services.PromptsByCategory(c.Param("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to fetch prompts by category"))
		return
	}

	c.JSON(http.StatusOK, prompts)
}

// CreatePrompt godoc
// @Summary Submit a new prompt
// @Description Validate and store a prompt submission
// @Tags prompts
// @Accept json
// @Produce json
// @Param request body CreatePromptRequest true "Prompt submission"
// @Success 201 {object} models.Prompt
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /prompts [post]
func CreatePrompt(c *gin.Context) {
	var req CreatePromptRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	created, err := services.CreatePrompt(services.CreatePromptInput{
		Title:       req.Title,
		Description: req.Description,
		Content:     req.Content,
		Category:    req.Category,
		Author:      req.Author,
		Rating:      req.Rating,
		Tags:        req.Tags,
	})
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			details := make([]utils.ValidationErrorDetail, 0, len(verr.Fields))
			for _, f := range verr.Fields {
				details = append(details, utils.ValidationErrorDetail{
					Field:   f.Field,
					Message: f.Message,
				})
			}
			c.JSON(http.StatusBadRequest, utils.NewValidationErrorResponse("Invalid prompt data", details))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to create prompt"))
		return
	}

	c.JSON(http.StatusCreated, created)
}
