// Package client is a typed HTTP client for the SystemPromptHub REST API,
// used by the terminal browser.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"systemprompthub/internal/models"
	"systemprompthub/internal/utils"
)

const defaultTimeout = 10 * time.Second

type Client struct {
	baseURL string
	httpc   *http.Client
}

// New builds a client for the given server base URL. With debug enabled,
// requests and responses are logged through the shared logging transport.
func New(baseURL string, debug bool) *Client {
	httpc := &http.Client{Timeout: defaultTimeout}
	if debug {
		httpc = utils.NewHTTPClient(defaultTimeout)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   httpc,
	}
}

// ListPrompts fetches the full prompt directory.
func (c *Client) ListPrompts() ([]models.Prompt, error) {
	var prompts []models.Prompt
	if err := c.getJSON("/api/prompts", &prompts); err != nil {
		return nil, err
	}
	return prompts, nil
}

// GetPrompt fetches a single prompt by id.
func (c *Client) GetPrompt(id string) (*models.Prompt, error) {
	var prompt models.Prompt
	if err := c.getJSON("/api/prompts/"+url.PathEscape(id), &prompt); err != nil {
		return nil, err
	}
	return &prompt, nil
}

// ListCategories fetches the category palette.
func (c *Client) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := c.getJSON("/api/categories", &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetStats fetches the aggregate counters.
func (c *Client) GetStats() (*models.Stats, error) {
	var stats models.Stats
	if err := c.getJSON("/api/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// CreatePrompt submits a new prompt and returns the stored record.
func (c *Client) CreatePrompt(input models.Prompt) (*models.Prompt, error) {
	body, err := json.Marshal(input)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Post(c.baseURL+"/api/prompts", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, apiError(resp)
	}

	var created models.Prompt
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) getJSON(path string, out interface{}) error {
	resp, err := c.httpc.Get(c.baseURL + path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

func apiError(resp *http.Response) error {
	var body utils.ErrorResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, body.Message)
	}
	return fmt.Errorf("server returned %d", resp.StatusCode)
}
