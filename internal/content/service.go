package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/vedicwisdom/funnel-backend/internal/astro"
	"github.com/vedicwisdom/funnel-backend/pkg/logger"
)

// ChatClient is the slice of the OpenAI client this package uses.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Service generates report prose. Every method degrades to canned copy
// instead of failing, so fulfillment never stalls on the model.
type Service interface {
	// GenerateSection returns 200-250 words for one unlocked section.
	GenerateSection(ctx context.Context, section string, details BirthDetails) string
	// GenerateTarot draws three cards and reads them against the question.
	GenerateTarot(ctx context.Context, question, name string) TarotReading
	// GenerateReport produces the full ten-section report. The returned
	// flag reports whether the canned fallback was used.
	GenerateReport(ctx context.Context, details BirthDetails) (ReportContent, bool)
}

type service struct {
	chat  ChatClient
	model string
	logg  *logger.Logger
}

// NewService builds the content generator.
func NewService(chat ChatClient, model string, logg *logger.Logger) (Service, error) {
	if chat == nil {
		return nil, fmt.Errorf("chat client required")
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &service{chat: chat, model: model, logg: logg}, nil
}

func (s *service) GenerateSection(ctx context.Context, section string, details BirthDetails) string {
	prompt := fmt.Sprintf(`You are a Vedic astrologer. Generate a detailed, positive, personalized 200-250 word section on %q for 2026.
Use birth details: Name: %s, DOB: %s, Time: %s, Place: %s.
Be honest about challenges but end positively. English only.`,
		section, details.Name, details.DOB, details.Time, details.Place)

	resp, err := s.chat.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     s.model,
		Messages:  []openai.ChatCompletionMessage{{Role: openai.ChatMessageRoleUser, Content: prompt}},
		MaxTokens: 600,
	})
	if err != nil {
		s.warn(ctx, "section generation failed", err)
		return FallbackSection(section)
	}

	text := firstChoice(resp)
	if text == "" {
		return FallbackSection(section)
	}
	return text
}

func (s *service) GenerateTarot(ctx context.Context, question, name string) TarotReading {
	cards := astro.DrawCards(len(astro.SpreadPositions))
	if cards == nil {
		return FallbackTarot(question)
	}

	system := fmt.Sprintf(`You are a mystical Tarot reader. Provide a warm, positive, 250-word analysis using:
Past: %s
Present: %s
Future: %s
Tie to the question and 2026. Be hopeful.`, cards[0], cards[1], cards[2])

	resp, err := s.chat.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf("Question: %q Name: %s", question, name)},
		},
		Temperature: 0.8,
		MaxTokens:   500,
	})
	if err != nil {
		s.warn(ctx, "tarot generation failed", err)
		return FallbackTarot(question)
	}

	analysis := firstChoice(resp)
	if analysis == "" {
		analysis = "Positive growth and harmony ahead in 2026."
	}
	return TarotReading{Question: question, Cards: cards, Analysis: analysis}
}

func (s *service) GenerateReport(ctx context.Context, details BirthDetails) (ReportContent, bool) {
	report := FallbackReport()

	system := `You are an expert Vedic astrologer writing a positive, uplifting, personalized 2026 yearly horoscope report for an Indian user.
Use only these 10 exact sections in this exact order. Do not add any extra sections.
Make the language warm, empowering, easy to understand, and full of hope.
Always use the birth details I give you to make it feel 100% personal.
Keep each section 500 words appx, try adding personalised details to each section and be real with any challenges the user might face in future.
Use English language only, no Hindi text in the report content except for Vedic terms like Rashi, Guru, Shani.
End with a strong positive note.
IMPORTANT: Output ONLY valid JSON.`

	user := fmt.Sprintf(`Birth details: Name: %s, DOB: %s, Time: %s, Place: %s.
Generate JSON with keys:
"intro", "personality", "transits", "career", "finance", "health", "love", "lucky", "kundli", "conclusion".`,
		details.Name, details.DOB, details.Time, details.Place)

	resp, err := s.chat.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject},
	})
	if err != nil {
		s.warn(ctx, "report generation failed", err)
		return report, true
	}

	raw, err := decodeReport(firstChoice(resp))
	if err != nil {
		s.warn(ctx, "report output rejected", err)
		return report, true
	}

	mergeSections(&report, raw)
	return report, false
}

// decodeReport parses and validates the model output. Invalid shapes are
// rejected as a whole rather than partially trusted.
func decodeReport(text string) (map[string]any, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty completion")
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("parsing completion: %w", err)
	}
	if err := validateReport(raw); err != nil {
		return nil, fmt.Errorf("completion schema: %w", err)
	}
	return raw, nil
}

func firstChoice(resp openai.ChatCompletionResponse) string {
	if len(resp.Choices) == 0 {
		return ""
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content)
}

func (s *service) warn(ctx context.Context, msg string, err error) {
	if s.logg == nil {
		return
	}
	s.logg.Warn(s.logg.WithField(ctx, "error", err.Error()), msg)
}
