package models

// Category is a named grouping used to classify prompts. Color and icon are
// symbolic tokens from the frontend palette, not free-form values.
type Category struct {
	ID    string `gorm:"primarykey" json:"id"`
	Name  string `gorm:"uniqueIndex;not null" json:"name"`
	Color string `gorm:"not null" json:"color"`
	Icon  string `gorm:"not null" json:"icon"`
}
