package sentiment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

const openAIPrompt = `Classify the sentiment of the user's Persian text.
Answer only with JSON: {"label": "positive" | "negative" | "neutral", "score": <confidence between 0 and 1>}.`

// OpenAIClassifier asks a chat model for a label and confidence.
type OpenAIClassifier struct {
	client *openai.Client
	model  string
}

func NewOpenAIClassifier(apiKey, model string) *OpenAIClassifier {
	return NewOpenAIClassifierWithConfig(openai.DefaultConfig(apiKey), model)
}

// NewOpenAIClassifierWithConfig is used when the API base URL differs from the default.
func NewOpenAIClassifierWithConfig(cfg openai.ClientConfig, model string) *OpenAIClassifier {
	if model == "" {
		model = "gpt-4o-mini"
	}
	return &OpenAIClassifier{client: openai.NewClientWithConfig(cfg), model: model}
}

func (c *OpenAIClassifier) Models() []string {
	return []string{c.model}
}

func (c *OpenAIClassifier) Analyze(ctx context.Context, text string) (Result, error) {
	if strings.TrimSpace(text) == "" {
		return Neutral(), nil
	}
	if c.client == nil {
		return Result{}, errors.New("openai client not initialized")
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: openAIPrompt},
			{Role: openai.ChatMessageRoleUser, Content: truncate(text)},
		},
		Temperature: 0,
	})
	if err != nil {
		return Result{}, err
	}
	if len(resp.Choices) == 0 {
		return Result{}, errors.New("openai returned no choices")
	}
	return parseOpenAIAnswer(resp.Choices[0].Message.Content)
}

func parseOpenAIAnswer(content string) (Result, error) {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")

	var c candidate
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), &c); err != nil {
		return Result{}, fmt.Errorf("decode openai sentiment: %w", err)
	}
	if c.Label == "" {
		return Result{}, errors.New("openai sentiment has empty label")
	}
	return Result{Label: strings.ToLower(c.Label), Score: clamp(c.Score)}, nil
}
