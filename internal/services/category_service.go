package services

import (
	"errors"

	"systemprompthub/internal/database"
	"systemprompthub/internal/models"

	"gorm.io/gorm"
)

// ListCategories returns all categories in insertion order.
func ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := database.DB.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetCategory retrieves a category by id.
func GetCategory(id string) (*models.Category, error) {
	var category models.Category
	if err := database.DB.Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &category, nil
}
