package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"watched-api/internal/config"
)

func TestChatReturnsFirstCandidateText(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			t.Errorf("api key not forwarded, query = %s", r.URL.RawQuery)
		}
		fmt.Fprint(w, `{"candidates":[{"content":{"parts":[{"text":"Try Blade Runner 2049."}]}}]}`)
	}))
	defer provider.Close()

	svc := NewAIService(provider.Client(), config.Config{GeminiURL: provider.URL, GeminiAPIKey: "test-key"})

	reply, err := svc.Chat(context.Background(), "recommend a sci-fi movie")
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if reply != "Try Blade Runner 2049." {
		t.Errorf("reply = %q", reply)
	}
}

func TestChatSurfacesProviderError(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":"quota exceeded"}`)
	}))
	defer provider.Close()

	svc := NewAIService(provider.Client(), config.Config{GeminiURL: provider.URL})

	_, err := svc.Chat(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected error on non-2xx provider response")
	}
	if !strings.Contains(err.Error(), "quota exceeded") {
		t.Errorf("error %q should carry the provider body", err)
	}
}

func TestChatRejectsEmptyCandidates(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"candidates":[]}`)
	}))
	defer provider.Close()

	svc := NewAIService(provider.Client(), config.Config{GeminiURL: provider.URL})

	if _, err := svc.Chat(context.Background(), "hello"); err == nil {
		t.Fatal("expected error when provider returns no candidates")
	}
}
