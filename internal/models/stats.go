package models

// Stats is the singleton aggregate describing the corpus. PromptsCount is
// derived and recomputed on every prompt creation; the other three counters
// are externally curated metrics that keep their seeded values.
type Stats struct {
	ID                string `gorm:"primarykey" json:"id"`
	PromptsCount      int    `gorm:"not null;default:0" json:"prompts_count"`
	CategoriesCount   int    `gorm:"not null;default:0" json:"categories_count"`
	ContributorsCount int    `gorm:"not null;default:0" json:"contributors_count"`
	InsightsCount     int    `gorm:"not null;default:0" json:"insights_count"`
}
