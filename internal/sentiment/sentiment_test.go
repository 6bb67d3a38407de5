package sentiment

import (
	"context"
	"encoding/json"
	"mindcare_backend/internal/config"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	"unicode/utf8"
)

func TestHTTPClassifierTopLabel(t *testing.T) {
	var gotInput string
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models/parsbert" {
			t.Errorf("path = %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		gotInput = body["inputs"]
		w.Write([]byte(`[[{"label":"negative","score":0.2},{"label":"positive","score":0.8}]]`))
	}))
	defer srv.Close()

	c := NewHTTPClassifier(srv.URL+"/models/", "parsbert", "tok", srv.Client())
	res, err := c.Analyze(context.Background(), "امروز حالم خوب است")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Label != "positive" || res.Score != 0.8 {
		t.Errorf("result = %+v", res)
	}
	if gotInput != "امروز حالم خوب است" {
		t.Errorf("inputs = %q", gotInput)
	}
	if gotAuth != "Bearer tok" {
		t.Errorf("auth header = %q", gotAuth)
	}
}

func TestHTTPClassifierFlatResponseAndClamp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"label":"neutral","score":1.7}]`))
	}))
	defer srv.Close()

	res, err := NewHTTPClassifier(srv.URL, "m", "", nil).Analyze(context.Background(), "متن")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res.Score != 1 {
		t.Errorf("score = %v, want clamped to 1", res.Score)
	}
}

func TestHTTPClassifierTruncatesInput(t *testing.T) {
	var n int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		n = utf8.RuneCountInString(body["inputs"])
		w.Write([]byte(`[{"label":"neutral","score":0.5}]`))
	}))
	defer srv.Close()

	long := strings.Repeat("خ", MaxInputRunes+100)
	if _, err := NewHTTPClassifier(srv.URL, "m", "", nil).Analyze(context.Background(), long); err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if n != MaxInputRunes {
		t.Errorf("sent %d runes, want %d", n, MaxInputRunes)
	}
}

func TestHTTPClassifierErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusServiceUnavailable, `{"error":"loading"}`},
		{"bad json", http.StatusOK, `not json`},
		{"no labels", http.StatusOK, `[]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			if _, err := NewHTTPClassifier(srv.URL, "m", "", nil).Analyze(context.Background(), "x"); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestEmptyTextSkipsRemoteCall(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	res, err := NewHTTPClassifier(srv.URL, "m", "", nil).Analyze(context.Background(), "   ")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if called {
		t.Error("remote endpoint was called for empty text")
	}
	if res != Neutral() {
		t.Errorf("result = %+v, want neutral", res)
	}
}

func TestParseOpenAIAnswer(t *testing.T) {
	tests := []struct {
		in      string
		want    Result
		wantErr bool
	}{
		{`{"label":"Positive","score":0.9}`, Result{"positive", 0.9}, false},
		{"```json\n{\"label\":\"negative\",\"score\":-2}\n```", Result{"negative", 0}, false},
		{`{"score":0.5}`, Result{}, true},
		{`positive`, Result{}, true},
	}
	for _, tt := range tests {
		got, err := parseOpenAIAnswer(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseOpenAIAnswer(%q) err = %v", tt.in, err)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseOpenAIAnswer(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestNew(t *testing.T) {
	c, err := New(config.SentimentConfig{Provider: "none"})
	if err != nil {
		t.Fatalf("New(none): %v", err)
	}
	if _, ok := c.(Noop); !ok {
		t.Errorf("New(none) = %T", c)
	}

	c, err = New(config.SentimentConfig{Provider: "http", Endpoint: "http://x", Model: "m"})
	if err != nil {
		t.Fatalf("New(http): %v", err)
	}
	if got := c.Models(); len(got) != 1 || got[0] != "m" {
		t.Errorf("Models() = %v", got)
	}

	if _, err := New(config.SentimentConfig{Provider: "bogus"}); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestNewHTTPTimeout(t *testing.T) {
	tests := []struct {
		seconds int
		want    time.Duration
	}{
		{0, 10 * time.Second},
		{-1, 10 * time.Second},
		{3, 3 * time.Second},
	}
	for _, tt := range tests {
		c, err := New(config.SentimentConfig{Provider: "http", Endpoint: "http://x", TimeoutSeconds: tt.seconds})
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if got := c.(*HTTPClassifier).client.Timeout; got != tt.want {
			t.Errorf("timeout_seconds %d: timeout = %v, want %v", tt.seconds, got, tt.want)
		}
	}
}

func TestNewOpenAIUsesBaseURL(t *testing.T) {
	var gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": `{"label":"positive","score":0.8}`}},
			},
		})
	}))
	defer srv.Close()

	c, err := New(config.SentimentConfig{
		Provider:      "openai",
		OpenAIAPIKey:  "sk-test",
		OpenAIBaseURL: srv.URL + "/v1/",
	})
	if err != nil {
		t.Fatalf("New(openai): %v", err)
	}
	if got := c.Models(); len(got) != 1 || got[0] != "gpt-4o-mini" {
		t.Errorf("Models() = %v", got)
	}
	res, err := c.Analyze(context.Background(), "امروز حالم خوب است")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if res != (Result{Label: "positive", Score: 0.8}) {
		t.Errorf("result = %+v", res)
	}
	if gotPath != "/v1/chat/completions" || gotAuth != "Bearer sk-test" {
		t.Errorf("request path %q auth %q", gotPath, gotAuth)
	}
}
