package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"watched-api/internal/config"
)

const assistantSystemPrompt = "You are a helpful movie assistant for a social movie review site. " +
	"Answer questions about movies, actors, directors and recommendations. " +
	"Keep answers concise and friendly."

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// AIService proxies chat prompts to the Gemini API.
type AIService interface {
	Chat(ctx context.Context, prompt string) (string, error)
}

type aiService struct {
	client *http.Client
	cfg    config.Config
}

// NewAIService returns a new instance of AIService
func NewAIService(client *http.Client, cfg config.Config) AIService {
	if client == nil {
		client = http.DefaultClient
	}
	return &aiService{client: client, cfg: cfg}
}

func (s *aiService) Chat(ctx context.Context, prompt string) (string, error) {
	payload := geminiRequest{
		Contents: []geminiContent{
			{Role: "user", Parts: []geminiPart{{Text: assistantSystemPrompt + "\n\n" + prompt}}},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	endpoint := s.cfg.GeminiURL + "?key=" + s.cfg.GeminiAPIKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("gemini responded %s: %s", resp.Status, string(raw))
	}

	var parsed geminiResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", err
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
