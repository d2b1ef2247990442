package models

// Prompt represents a submitted system prompt template.
//
// Category is a logical key matched by string equality against
// Category.Name, not a foreign-key reference. Rating is free-form decimal
// text; bounds are not enforced.
type Prompt struct {
	ID          string   `gorm:"primarykey" json:"id"`
	Title       string   `gorm:"not null" json:"title"`
	Description string   `gorm:"type:text;not null" json:"description"`
	Content     string   `gorm:"type:text;not null" json:"content"`
	Category    string   `gorm:"not null;index" json:"category"`
	Author      string   `gorm:"not null" json:"author"`
	Rating      string   `gorm:"not null;default:'0.0'" json:"rating"`
	Tags        []string `gorm:"serializer:json" json:"tags"`
}
