package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/Rorical/EmotionAnalyzer/internal/emotion"
	"github.com/Rorical/EmotionAnalyzer/internal/models"
)

// LLMConfig configures the chat-completion backed classifier
type LLMConfig struct {
	APIKey      string
	Endpoint    string // OpenAI-compatible base URL, empty for api.openai.com
	Model       string
	Temperature float32
}

// LLMClassifier asks a chat model for the emotion distribution
type LLMClassifier struct {
	client    *openai.Client
	config    LLMConfig
	systemMsg string
}

func NewLLMClassifier(cfg LLMConfig) *LLMClassifier {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientConfig.BaseURL = cfg.Endpoint
	}
	if cfg.Model == "" {
		cfg.Model = openai.GPT4oMini
	}

	return &LLMClassifier{
		client:    openai.NewClientWithConfig(clientConfig),
		config:    cfg,
		systemMsg: buildSystemPrompt(),
	}
}

func buildSystemPrompt() string {
	codes := make([]string, 0, 6)
	for _, e := range emotion.All() {
		codes = append(codes, e.Code)
	}

	var sb strings.Builder
	sb.WriteString("You classify the emotion expressed in a text.\n")
	sb.WriteString("Use only these emotion codes: ")
	sb.WriteString(strings.Join(codes, ", "))
	sb.WriteString(".\n")
	sb.WriteString("Respond with a JSON object with a single field 'emotions': an array of ")
	sb.WriteString("{\"emotion\": code, \"probability\": number} covering every code, ")
	sb.WriteString("probabilities in percent (0-100) summing to about 100.")
	return sb.String()
}

type llmResponse struct {
	Emotions []models.EmotionScore `json:"emotions"`
}

// Classify sends text as the user message and shapes the answer like the
// prediction service does: sorted descending, element 0 is the primary emotion.
func (c *LLMClassifier) Classify(ctx context.Context, text string) (models.ClassificationResult, error) {
	req := openai.ChatCompletionRequest{
		Model:       c.config.Model,
		Temperature: c.config.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: c.systemMsg},
			{Role: openai.ChatMessageRoleUser, Content: text},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return models.ClassificationResult{}, llmTransportError(err)
	}
	if len(resp.Choices) == 0 {
		return models.ClassificationResult{}, &TransportError{Err: fmt.Errorf("no response from llm")}
	}

	result, err := parseLLMResponse(resp.Choices[0].Message.Content)
	if err != nil {
		return models.ClassificationResult{}, &TransportError{Err: err}
	}
	result.InputText = text
	log.Printf("[DEBUG] llm classified as %s (%.2f)", result.PredictedEmotion, result.Confidence)
	return result, nil
}

func parseLLMResponse(content string) (models.ClassificationResult, error) {
	var parsed llmResponse
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return models.ClassificationResult{}, fmt.Errorf("failed to parse json response: %w", err)
	}
	if len(parsed.Emotions) == 0 {
		return models.ClassificationResult{}, fmt.Errorf("llm returned no emotions")
	}

	// some models answer with fractions despite the prompt
	scale := 1.0
	if allFractions(parsed.Emotions) {
		scale = 100
	}

	scores := make([]models.EmotionScore, 0, len(parsed.Emotions))
	for _, s := range parsed.Emotions {
		code := strings.ToLower(strings.TrimSpace(s.Emotion))
		if code == "" {
			continue
		}
		scores = append(scores, models.EmotionScore{Emotion: code, Probability: clampPercent(s.Probability * scale)})
	}
	if len(scores) == 0 {
		return models.ClassificationResult{}, fmt.Errorf("llm returned no emotions")
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Probability > scores[j].Probability
	})

	return models.ClassificationResult{
		PredictedEmotion: scores[0].Emotion,
		Confidence:       scores[0].Probability,
		AllEmotions:      scores,
	}, nil
}

func allFractions(scores []models.EmotionScore) bool {
	for _, s := range scores {
		if s.Probability > 1 {
			return false
		}
	}
	return true
}

func clampPercent(p float64) float64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}

func llmTransportError(err error) *TransportError {
	te := &TransportError{Err: fmt.Errorf("llm request failed: %w", err)}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		te.StatusCode = apiErr.HTTPStatusCode
		te.Message = apiErr.Message
	}
	return te
}
