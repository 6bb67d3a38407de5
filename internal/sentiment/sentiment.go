// Package sentiment wraps the external text-sentiment model. Results only
// decorate journal and chat records and never feed into scoring.
package sentiment

import (
	"context"
	"fmt"
	"mindcare_backend/internal/config"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	openai "github.com/sashabaranov/go-openai"
)

const (
	LabelNeutral = "neutral"

	// MaxInputRunes bounds the text sent to the model.
	MaxInputRunes = 512
)

type Result struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Neutral is returned for empty input and by the no-op classifier.
func Neutral() Result {
	return Result{Label: LabelNeutral, Score: 0}
}

type Classifier interface {
	Analyze(ctx context.Context, text string) (Result, error)
	Models() []string
}

// New builds the classifier selected by cfg.Provider.
func New(cfg config.SentimentConfig) (Classifier, error) {
	switch cfg.Provider {
	case "http":
		timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		return NewHTTPClassifier(cfg.Endpoint, cfg.Model, cfg.APIToken, &http.Client{Timeout: timeout}), nil
	case "openai":
		if cfg.OpenAIBaseURL == "" {
			return NewOpenAIClassifier(cfg.OpenAIAPIKey, cfg.OpenAIModel), nil
		}
		clientCfg := openai.DefaultConfig(cfg.OpenAIAPIKey)
		clientCfg.BaseURL = strings.TrimSuffix(cfg.OpenAIBaseURL, "/")
		return NewOpenAIClassifierWithConfig(clientCfg, cfg.OpenAIModel), nil
	case "none", "":
		return Noop{}, nil
	default:
		return nil, fmt.Errorf("unknown sentiment provider %q", cfg.Provider)
	}
}

// Noop always reports neutral.
type Noop struct{}

func (Noop) Analyze(context.Context, string) (Result, error) { return Neutral(), nil }

func (Noop) Models() []string { return []string{} }

func truncate(text string) string {
	if utf8.RuneCountInString(text) <= MaxInputRunes {
		return text
	}
	r := []rune(text)
	return string(r[:MaxInputRunes])
}

func clamp(score float64) float64 {
	switch {
	case score < 0:
		return 0
	case score > 1:
		return 1
	}
	return score
}
