package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// HTTPClassifier calls a HuggingFace-style text-classification endpoint:
// POST {endpoint}/{model} with {"inputs": text}, answered by a list of
// {label, score} candidates (optionally nested one level).
type HTTPClassifier struct {
	endpoint string
	model    string
	token    string
	client   *http.Client
}

func NewHTTPClassifier(endpoint, model, token string, client *http.Client) *HTTPClassifier {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPClassifier{
		endpoint: strings.TrimRight(endpoint, "/"),
		model:    model,
		token:    token,
		client:   client,
	}
}

func (c *HTTPClassifier) Models() []string {
	return []string{c.model}
}

type candidate struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

func (c *HTTPClassifier) Analyze(ctx context.Context, text string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Neutral(), nil
	}

	body, err := json.Marshal(map[string]string{"inputs": truncate(text)})
	if err != nil {
		return Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/"+c.model, bytes.NewReader(body))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("sentiment request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Result{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("sentiment API error (status %d): %s", resp.StatusCode, string(raw))
	}

	cands, err := parseCandidates(raw)
	if err != nil {
		return Result{}, err
	}
	return best(cands)
}

// parseCandidates accepts both [{...}] and [[{...}]].
func parseCandidates(raw []byte) ([]candidate, error) {
	var nested [][]candidate
	if err := json.Unmarshal(raw, &nested); err == nil && len(nested) > 0 {
		return nested[0], nil
	}
	var flat []candidate
	if err := json.Unmarshal(raw, &flat); err != nil {
		return nil, fmt.Errorf("decode sentiment response: %w", err)
	}
	return flat, nil
}

func best(cands []candidate) (Result, error) {
	if len(cands) == 0 {
		return Result{}, fmt.Errorf("sentiment response has no labels")
	}
	top := cands[0]
	for _, c := range cands[1:] {
		if c.Score > top.Score {
			top = c
		}
	}
	return Result{Label: top.Label, Score: clamp(top.Score)}, nil
}
