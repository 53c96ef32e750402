package detect

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"rescribe/pkg/llm"
)

func TestScore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/predict/text" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("x-api-key") != "k" {
			t.Errorf("missing api key header")
		}
		_, _ = w.Write([]byte(`{"documents":[{"completely_generated_prob":0.874}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	score, err := c.Score(context.Background(), "k", "some text")
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if score != 87 {
		t.Fatalf("expected 87, got %d", score)
	}
}

func TestScoreMissingKey(t *testing.T) {
	c := NewClient("")
	if _, err := c.Score(context.Background(), "", "text"); !errors.Is(err, llm.ErrNoAPIKey) {
		t.Fatalf("expected ErrNoAPIKey, got %v", err)
	}
}

func TestScoreUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":"bad key"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	_, err := c.Score(context.Background(), "k", "text")
	var perr *llm.ProviderError
	if !errors.As(err, &perr) {
		t.Fatalf("expected ProviderError, got %v", err)
	}
	if perr.Message != "bad key" {
		t.Fatalf("upstream message not carried: %q", perr.Message)
	}
}
