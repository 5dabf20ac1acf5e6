package annotate

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
)

// OpenAIEngine backs the optional classification and summarization
// capabilities with a chat-completion model. A custom BaseURL points it at
// any OpenAI-compatible endpoint.
type OpenAIEngine struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// OpenAIConfig configures the engine.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// NewOpenAIEngine creates the engine. The API key is required.
func NewOpenAIEngine(cfg OpenAIConfig) (*OpenAIEngine, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	model := cfg.Model
	if model == "" {
		model = openai.GPT4oMini
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &OpenAIEngine{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   model,
		timeout: timeout,
	}, nil
}

// Classify scores the text against the labels. Scores are normalized so
// they can be read as a distribution over the label set.
func (e *OpenAIEngine) Classify(ctx context.Context, text string, labels []string) (map[string]float64, error) {
	prompt := fmt.Sprintf(`Score how well this news text matches each category. Respond with a JSON object mapping every category name to a score between 0 and 1. Categories:
%s

Text:
%s`, strings.Join(labels, "\n"), text)

	content, err := e.complete(ctx, prompt, 500)
	if err != nil {
		return nil, err
	}
	scores := make(map[string]float64, len(labels))
	if err := json.Unmarshal([]byte(extractJSON(content)), &scores); err != nil {
		return nil, fmt.Errorf("parse classification response: %w", err)
	}
	// Missing labels score zero rather than disappearing.
	for _, label := range labels {
		if _, ok := scores[label]; !ok {
			scores[label] = 0
		}
	}
	return scores, nil
}

// Summarize produces an abstractive summary within the length bounds.
func (e *OpenAIEngine) Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	prompt := fmt.Sprintf(
		"Summarize the following news text in %d to %d words. Return only the summary.\n\n%s",
		wordsForChars(minLength), wordsForChars(maxLength), text)
	summary, err := e.complete(ctx, prompt, maxLength)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(summary), nil
}

func (e *OpenAIEngine) complete(ctx context.Context, prompt string, maxTokens int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       e.model,
		MaxTokens:   maxTokens,
		Temperature: 0,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: empty response")
	}
	return resp.Choices[0].Message.Content, nil
}

// extractJSON strips markdown fences and surrounding prose from a model
// response, keeping the outermost JSON object.
func extractJSON(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}

// wordsForChars converts a character budget to an approximate word count.
func wordsForChars(chars int) int {
	words := chars / 6
	if words < 5 {
		words = 5
	}
	return words
}
