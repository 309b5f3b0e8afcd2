package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"language-tutor/pkg/gemini"
)

func TestGenerateContent(t *testing.T) {
	t.Run("Success Flow", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.Contains(r.URL.Path, ":generateContent") {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			body, _ := json.Marshal(gemini.GenerateResponse{
				Candidates: []gemini.Candidate{
					{Content: gemini.Content{Parts: []gemini.Part{{Text: "hello"}}}},
				},
			})
			w.Write(body)
		}))
		defer ts.Close()

		client := gemini.NewClient("test-key")
		client.SetAPIURL(ts.URL)

		resp, err := client.GenerateContent(context.Background(), gemini.GenerateRequest{
			Contents: []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "hi"}}}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.FirstText() != "hello" {
			t.Errorf("expected hello, got %q", resp.FirstText())
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("boom"))
		}))
		defer ts.Close()

		client := gemini.NewClient("test-key")
		client.SetAPIURL(ts.URL)

		_, err := client.GenerateContent(context.Background(), gemini.GenerateRequest{})
		if err == nil {
			t.Fatal("expected error on 500 response")
		}
		if !strings.Contains(err.Error(), "500") {
			t.Errorf("error should carry the status code, got: %v", err)
		}
	})

	t.Run("Empty Candidates", func(t *testing.T) {
		resp := &gemini.GenerateResponse{}
		if resp.FirstText() != "" {
			t.Errorf("expected empty text for no candidates")
		}
	})
}
