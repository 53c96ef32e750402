// Package detect wraps the GPTZero AI-detection API. The score is opaque;
// nothing is computed locally.
package detect

import (
	"bytes"
	"context"
	"encoding/json"
	"math"
	"net/http"
	"strings"
	"time"

	"rescribe/pkg/llm"
)

const defaultBaseURL = "https://api.gptzero.me"

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type predictRequest struct {
	Document string `json:"document"`
}

type predictResponse struct {
	Documents []struct {
		CompletelyGeneratedProb float64 `json:"completely_generated_prob"`
	} `json:"documents"`
}

// Score returns the 0..100 AI-likelihood score for text. The key is resolved
// by the caller like any other provider key.
func (c *Client) Score(ctx context.Context, apiKey, text string) (int, error) {
	if strings.TrimSpace(apiKey) == "" {
		return 0, llm.ErrNoAPIKey
	}
	body, err := json.Marshal(predictRequest{Document: text})
	if err != nil {
		return 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v2/predict/text", bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, &llm.TransientError{Provider: "gptzero", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var detail struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&detail)
		msg := detail.Error
		if msg == "" {
			msg = resp.Status
		}
		return 0, &llm.ProviderError{Provider: "gptzero", StatusCode: resp.StatusCode, Message: msg}
	}

	var out predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, &llm.ProviderError{Provider: "gptzero", StatusCode: resp.StatusCode, Message: "undecodable response"}
	}
	if len(out.Documents) == 0 {
		return 0, &llm.ProviderError{Provider: "gptzero", StatusCode: resp.StatusCode, Message: "empty response"}
	}
	score := int(math.Round(out.Documents[0].CompletelyGeneratedProb * 100))
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, nil
}
