package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/nexera/storefront/internal/domain/store"
)

const (
	// defaultSummary is used when the model answers with an empty body.
	defaultSummary = "ขอบคุณที่ใช้บริการ"
	// fallbackSummary is used when the model cannot be reached.
	fallbackSummary = "ขอบคุณสำหรับการสั่งซื้อ (AI connection failed)"
	// disabledSummary is used when no API key is configured.
	disabledSummary = "AI Disabled: No API Key configured."
)

// GeminiSummarizer generates a short Thai thank-you note for a placed
// order using the Gemini API.
type GeminiSummarizer struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	logger  *zap.Logger
}

// NewGeminiSummarizer creates the summarizer. It fails only when the
// client cannot be constructed; generation errors are absorbed later.
func NewGeminiSummarizer(ctx context.Context, apiKey, model string, timeout time.Duration, logger *zap.Logger) (*GeminiSummarizer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &GeminiSummarizer{
		client:  client,
		model:   model,
		timeout: timeout,
		logger:  logger,
	}, nil
}

// Summarize returns the thank-you note for the order. It never fails: any
// generation problem yields the fallback text.
func (s *GeminiSummarizer) Summarize(ctx context.Context, order *store.Order) string {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.client.Models.GenerateContent(ctx, s.model, genai.Text(buildPrompt(order)), nil)
	if err != nil {
		s.logger.Warn("thank-you note generation failed",
			zap.String("order_id", order.ID),
			zap.Error(err))
		return fallbackSummary
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return defaultSummary
	}
	return text
}

func buildPrompt(order *store.Order) string {
	var items strings.Builder
	for _, line := range order.Items {
		fmt.Fprintf(&items, "- %s (%d ชิ้น)\n", line.Name, line.Quantity)
	}

	return fmt.Sprintf(`You are a helpful shop assistant AI for a health and wellness store.
The customer name is %q.
They purchased the following items:
%s
Please generate a short, friendly "Thank You" note in Thai language.
Also, provide one brief health tip or usage instruction relevant to one of the purchased items (e.g., "Take supplements with water" or "Apply cream gently").
Keep it under 3 sentences.`, order.CustomerName, items.String())
}

// NoopSummarizer is used when no API key is configured. It returns a
// fixed note so orders still complete their summary phase.
type NoopSummarizer struct{}

// Summarize implements store.Summarizer.
func (NoopSummarizer) Summarize(ctx context.Context, order *store.Order) string {
	return disabledSummary
}
