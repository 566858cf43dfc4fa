package api

import (
	"context"
	"fmt"
	"net/http"
)

type loginResponse struct {
	envelope
	Token string `json:"token"`
}

// Login authenticates an administrator and returns a JWT. The token is not
// stored by the client; callers persist it through the credential store.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", &APIError{StatusCode: http.StatusOK, Message: "login returned no token"}
	}
	return resp.Token, nil
}

type adminQuestionsResponse struct {
	envelope
	Questions []AdminQuestion `json:"questions"`
}

// AdminQuestions lists the full question bank with category info.
func (c *Client) AdminQuestions(ctx context.Context) ([]AdminQuestion, error) {
	var resp adminQuestionsResponse
	if err := c.do(ctx, http.MethodGet, "/admin/questions", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Questions, nil
}

// CreateQuestion adds a question to the bank.
func (c *Client) CreateQuestion(ctx context.Context, draft QuestionDraft) (Question, error) {
	var resp questionByIDResponse
	if err := c.do(ctx, http.MethodPost, "/admin/questions", draft, &resp); err != nil {
		return Question{}, err
	}
	return resp.Question, nil
}

// UpdateQuestion replaces a question's statement.
func (c *Client) UpdateQuestion(ctx context.Context, id int64, statement string) (Question, error) {
	body := map[string]string{"statement": statement}
	var resp questionByIDResponse
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/questions/%d", id), body, &resp); err != nil {
		return Question{}, err
	}
	return resp.Question, nil
}

// VerifyQuestion marks a question as admin-verified (or clears the mark).
func (c *Client) VerifyQuestion(ctx context.Context, id int64, verified bool) (Question, error) {
	body := map[string]bool{"verified": verified}
	var resp questionByIDResponse
	if err := c.do(ctx, http.MethodPatch, fmt.Sprintf("/admin/questions/%d/verify", id), body, &resp); err != nil {
		return Question{}, err
	}
	return resp.Question, nil
}

// DeleteQuestion removes a question from the bank.
func (c *Client) DeleteQuestion(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/questions/%d", id), nil, nil)
}

type categoryResponse struct {
	envelope
	Category Category `json:"category"`
}

// CreateCategory adds a question category.
func (c *Client) CreateCategory(ctx context.Context, name, description string) (Category, error) {
	body := map[string]string{"name": name}
	if description != "" {
		body["description"] = description
	}
	var resp categoryResponse
	if err := c.do(ctx, http.MethodPost, "/admin/categories", body, &resp); err != nil {
		return Category{}, err
	}
	return resp.Category, nil
}

type categoriesResponse struct {
	envelope
	Categories []Category `json:"categories"`
}

// Categories lists all question categories.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	var resp categoriesResponse
	if err := c.do(ctx, http.MethodGet, "/admin/categories", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

// DeleteCategory removes a category.
func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/admin/categories/%d", id), nil, nil)
}

type promptResponse struct {
	envelope
	Prompt PromptConfig `json:"prompt"`
}

// PromptConfig returns the configured AI generation prompt.
func (c *Client) PromptConfig(ctx context.Context) (PromptConfig, error) {
	var resp promptResponse
	if err := c.do(ctx, http.MethodGet, "/admin/config/prompt", nil, &resp); err != nil {
		return PromptConfig{}, err
	}
	return resp.Prompt, nil
}

// UpdatePromptConfig replaces the AI generation prompt and temperature.
func (c *Client) UpdatePromptConfig(ctx context.Context, cfg PromptConfig) error {
	return c.do(ctx, http.MethodPut, "/admin/config/prompt", cfg, nil)
}

type batchResponse struct {
	envelope
	Batch BatchResult `json:"batch"`
}

// GenerateBatch asks the backend to generate a batch of AI questions.
func (c *Client) GenerateBatch(ctx context.Context, quantity int, categoryID int64, difficulty float64) (BatchResult, error) {
	body := map[string]any{
		"quantity":    quantity,
		"category_id": categoryID,
		"difficulty":  difficulty,
	}
	var resp batchResponse
	if err := c.do(ctx, http.MethodPost, "/admin/generate-batch", body, &resp); err != nil {
		return BatchResult{}, err
	}
	return resp.Batch, nil
}

type dashboardResponse struct {
	envelope
	Stats DashboardStats `json:"stats"`
}

// Dashboard returns the admin analytics summary.
func (c *Client) Dashboard(ctx context.Context) (DashboardStats, error) {
	var resp dashboardResponse
	if err := c.do(ctx, http.MethodGet, "/admin/dashboard", nil, &resp); err != nil {
		return DashboardStats{}, err
	}
	return resp.Stats, nil
}
