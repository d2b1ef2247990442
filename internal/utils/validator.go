package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// BindAndValidate binds the request body to the given object and validates it.
// If validation fails, it sends a formatted error response and returns false.
// If validation succeeds, it returns true.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if err == nil {
		return true
	}

	var details []ValidationErrorDetail

	if errs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range errs {
			detail := ValidationErrorDetail{
				Field:   e.Field(),
				Message: fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", e.Field(), e.Tag()),
			}

			switch e.Tag() {
			case "required":
				detail.Message = fmt.Sprintf("Field '%s' is required", e.Field())
			case "min":
				detail.Message = fmt.Sprintf("Field '%s' must be at least %s characters long", e.Field(), e.Param())
			case "max":
				detail.Message = fmt.Sprintf("Field '%s' must be at most %s characters long", e.Field(), e.Param())
			}

			details = append(details, detail)
		}
	} else if jsonErr, ok := err.(*json.UnmarshalTypeError); ok {
		details = append(details, ValidationErrorDetail{
			Field:   jsonErr.Field,
			Message: fmt.Sprintf("Field '%s' has invalid type, expected %s", jsonErr.Field, jsonErr.Type.String()),
		})
	} else {
		details = append(details, ValidationErrorDetail{
			Field:   "body",
			Message: "Malformed JSON or invalid request body",
		})
	}

	c.JSON(http.StatusBadRequest, NewValidationErrorResponse("Invalid prompt data", details))
	return false
}
