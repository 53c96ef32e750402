package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// chatCompatClient calls any OpenAI-style /chat/completions endpoint.
// OpenAI, DeepSeek and Perplexity all speak this dialect.
type chatCompatClient struct {
	provider   string
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func newOpenAIClient(apiKey string) *chatCompatClient {
	return &chatCompatClient{
		provider:   "openai",
		baseURL:    "https://api.openai.com/v1",
		apiKey:     apiKey,
		model:      "gpt-4o",
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

func newDeepSeekClient(apiKey string) *chatCompatClient {
	return &chatCompatClient{
		provider:   "deepseek",
		baseURL:    "https://api.deepseek.com/v1",
		apiKey:     apiKey,
		model:      "deepseek-chat",
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

func newPerplexityClient(apiKey string) *chatCompatClient {
	return &chatCompatClient{
		provider:   "perplexity",
		baseURL:    "https://api.perplexity.ai",
		apiKey:     apiKey,
		model:      "sonar",
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

type oaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type oaiChatRequest struct {
	Model    string       `json:"model"`
	Messages []oaiMessage `json:"messages"`
}

type oaiChatResponse struct {
	Choices []struct {
		Message oaiMessage `json:"message"`
	} `json:"choices"`
}

type oaiErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

func (c *chatCompatClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	messages := make([]oaiMessage, 0, 2)
	if strings.TrimSpace(systemPrompt) != "" {
		messages = append(messages, oaiMessage{Role: "system", Content: systemPrompt})
	}
	messages = append(messages, oaiMessage{Role: "user", Content: userPrompt})

	body, err := json.Marshal(oaiChatRequest{Model: c.model, Messages: messages})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &TransientError{Provider: c.provider, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp oaiErrorResponse
		_ = json.NewDecoder(resp.Body).Decode(&errResp)
		msg := errResp.Error.Message
		if msg == "" {
			msg = resp.Status
		}
		return "", &ProviderError{Provider: c.provider, StatusCode: resp.StatusCode, Message: msg}
	}

	var chatResp oaiChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", &ProviderError{Provider: c.provider, StatusCode: resp.StatusCode, Message: "undecodable response"}
	}
	if len(chatResp.Choices) == 0 {
		return "", &ProviderError{Provider: c.provider, StatusCode: resp.StatusCode, Message: "empty response"}
	}
	text := strings.TrimSpace(chatResp.Choices[0].Message.Content)
	if text == "" {
		return "", &ProviderError{Provider: c.provider, StatusCode: resp.StatusCode, Message: "empty completion"}
	}
	return text, nil
}
