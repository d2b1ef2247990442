package category

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup) {
	categoryGroup := router.Group("/categories")
	{
		categoryGroup.GET("", ListCategories)
		categoryGroup.GET("/:id", GetCategory)
	}
}
