package database

import (
	"systemprompthub/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Seed loads the launch corpus: the category palette, the initial prompt
// directory, and the stats singleton. Idempotent — a store that already has
// categories is left untouched.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	categories := []models.Category{
		{Name: "Code Prompt", Color: "blue", Icon: "code"},
		{Name: "UI/UX Design", Color: "purple", Icon: "palette"},
		{Name: "Creative", Color: "pink", Icon: "brush"},
		{Name: "Marketing", Color: "green", Icon: "megaphone"},
		{Name: "Analysis", Color: "orange", Icon: "bar-chart"},
	}
	for i := range categories {
		categories[i].ID = uuid.NewString()
	}
	if err := db.Create(&categories).Error; err != nil {
		return err
	}

	prompts := []models.Prompt{
		{
			Title:       "Advanced Code Reviewer",
			Description: "A comprehensive system prompt for conducting thorough code reviews with security and performance insights.",
			Content:     "You are an expert code reviewer with deep knowledge of software engineering best practices...",
			Category:    "Code Prompt",
			Author:      "sarah_dev",
			Rating:      "4.8",
			Tags:        []string{"code-review", "security", "performance"},
		},
		{
			Title:       "Mobile App UI Generator",
			Description: "Generates creative and user-friendly UI mockups for mobile applications based on detailed descriptions.",
			Content:     "You are a senior UI/UX designer specializing in mobile application interfaces...",
			Category:    "UI/UX Design",
			Author:      "alex_design",
			Rating:      "4.9",
			Tags:        []string{"mobile", "ui", "mockups"},
		},
		{
			Title:       "Storytelling Assistant",
			Description: "Helps craft compelling narratives, develop characters, and overcome writer's block with creative suggestions.",
			Content:     "You are a professional storytelling assistant with expertise in narrative structure...",
			Category:    "Creative",
			Author:      "maria_writer",
			Rating:      "4.7",
			Tags:        []string{"storytelling", "creative-writing", "characters"},
		},
		{
			Title:       "Python Data Analyst",
			Description: "Generates Python code for data cleaning, analysis, and visualization using Pandas and Matplotlib libraries.",
			Content:     "You are a senior data analyst and Python expert specializing in data manipulation...",
			Category:    "Code Prompt",
			Author:      "data_mike",
			Rating:      "4.9",
			Tags:        []string{"python", "data-analysis", "pandas"},
		},
		{
			Title:       "Social Media Post Generator",
			Description: "Crafts engaging posts for various social media platforms, complete with hashtags and compelling calls to action.",
			Content:     "You are a social media marketing expert with deep understanding of platform-specific content...",
			Category:    "Marketing",
			Author:      "social_jenny",
			Rating:      "4.8",
			Tags:        []string{"social-media", "marketing", "engagement"},
		},
		{
			Title:       "Business Report Analyzer",
			Description: "Analyzes complex business reports and extracts key insights, trends, and actionable recommendations.",
			Content:     "You are a senior business analyst with expertise in interpreting complex business data...",
			Category:    "Analysis",
			Author:      "biz_analyst",
			Rating:      "4.6",
			Tags:        []string{"business-analysis", "reports", "insights"},
		},
		{
			Title:       "Landing Page Copywriter",
			Description: "Creates compelling headlines and conversion-focused copy for website landing pages and marketing campaigns.",
			Content:     "You are an expert copywriter specializing in high-converting landing page content...",
			Category:    "UI/UX Design",
			Author:      "copy_master",
			Rating:      "4.5",
			Tags:        []string{"copywriting", "landing-pages", "conversion"},
		},
		{
			Title:       "API Documentation Writer",
			Description: "Generates comprehensive API documentation with examples, use cases, and implementation guidelines.",
			Content:     "You are a technical writer specializing in API documentation and developer experience...",
			Category:    "Code Prompt",
			Author:      "doc_writer",
			Rating:      "4.7",
			Tags:        []string{"api", "documentation", "technical-writing"},
		},
		{
			Title:       "Brand Voice Generator",
			Description: "Develops consistent brand voice and tone guidelines for marketing materials and communication strategies.",
			Content:     "You are a brand strategist and voice expert specializing in developing authentic brand personalities...",
			Category:    "Creative",
			Author:      "brand_guru",
			Rating:      "4.8",
			Tags:        []string{"branding", "voice", "strategy"},
		},
	}
	for i := range prompts {
		prompts[i].ID = uuid.NewString()
	}
	if err := db.Create(&prompts).Error; err != nil {
		return err
	}

	// categories_count, contributors_count and insights_count are manually
	// curated; only prompts_count tracks the live collection.
	stats := models.Stats{
		ID:                uuid.NewString(),
		PromptsCount:      len(prompts),
		CategoriesCount:   8,
		ContributorsCount: 156,
		InsightsCount:     32,
	}
	return db.Create(&stats).Error
}
