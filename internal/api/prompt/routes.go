package prompt

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	promptGroup := router.Group("/prompts")
	{
		promptGroup.GET("", ListPrompts)
		promptGroup.POST("", CreatePrompt)
		promptGroup.GET("/search/:query", SearchPrompts)
		promptGroup.GET("/category/:category", PromptsByCategory)
		promptGroup.GET("/:id", GetPrompt)
	}
}
