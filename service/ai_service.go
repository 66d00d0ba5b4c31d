package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"threads-of-tradition/domain"

	openai "github.com/sashabaranov/go-openai"
)

// AIService polishes heuristic captions with an LLM. It is disabled unless
// OPENAI_API_KEY is set, and every failure path returns the caption it was
// given, so the template engine remains the source of truth.
type AIService struct {
	client  *openai.Client
	model   string
	enabled bool
	timeout time.Duration
}

func NewAIService() *AIService {
	apiKey := os.Getenv("OPENAI_API_KEY")
	s := &AIService{
		model:   openai.GPT4oMini,
		enabled: apiKey != "",
		timeout: 30 * time.Second,
	}
	if s.enabled {
		s.client = openai.NewClient(apiKey)
	}
	return s
}

// PolishCaption asks the model to tighten a template caption while keeping
// the artisan name, location and duration intact.
func (s *AIService) PolishCaption(caption string, input domain.RecommendationInput) string {
	if !s.enabled {
		return caption
	}

	prompt := fmt.Sprintf(`Polish this marketing caption for a handmade %s product from an Indian handloom marketplace.

INSTRUCTIONS:
1. Keep the artisan name (%s), the location (%s) and the time spent exactly as written.
2. Keep the heritage and craftsmanship framing.
3. Return only the polished caption, no preamble.

CAPTION:
%s`, input.Material, input.ArtisanName, input.Location, caption)

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     s.model,
		MaxTokens: 300,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		log.Printf("Error calling AI service for caption polish: %v", err)
		return caption
	}
	if len(resp.Choices) == 0 {
		return caption
	}
	polished := strings.TrimSpace(resp.Choices[0].Message.Content)
	if polished == "" {
		return caption
	}
	return polished
}
