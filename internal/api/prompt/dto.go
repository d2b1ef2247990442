package prompt

// CreatePromptRequest is the POST /api/prompts payload. Rating stays a
// decimal string ("4.8") and is not range-checked; tags may be omitted.
type CreatePromptRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Content     string   `json:"content" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Author      string   `json:"author" binding:"required"`
	Rating      string   `json:"rating"`
	Tags        []string `json:"tags"`
}
