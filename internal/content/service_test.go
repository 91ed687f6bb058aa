package content

import (
	"context"
	"errors"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChat struct {
	reply   string
	err     error
	lastReq openai.ChatCompletionRequest
}

func (s *stubChat) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.lastReq = req
	if s.err != nil {
		return openai.ChatCompletionResponse{}, s.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: s.reply}},
		},
	}, nil
}

func details() BirthDetails {
	return BirthDetails{Name: "Asha", DOB: "1992-03-14", Time: "04:30", Place: "Pune"}
}

func TestNewServiceRequiresChatClient(t *testing.T) {
	_, err := NewService(nil, "", nil)
	assert.Error(t, err)
}

func TestGenerateSectionUsesModelOutput(t *testing.T) {
	chat := &stubChat{reply: "Your career shines in 2026."}
	svc, err := NewService(chat, "gpt-4o-mini", nil)
	require.NoError(t, err)

	got := svc.GenerateSection(context.Background(), "career", details())

	assert.Equal(t, "Your career shines in 2026.", got)
	require.Len(t, chat.lastReq.Messages, 1)
	assert.Contains(t, chat.lastReq.Messages[0].Content, `"career"`)
	assert.Contains(t, chat.lastReq.Messages[0].Content, "Asha")
}

func TestGenerateSectionFallsBackOnError(t *testing.T) {
	chat := &stubChat{err: errors.New("quota exceeded")}
	svc, err := NewService(chat, "", nil)
	require.NoError(t, err)

	got := svc.GenerateSection(context.Background(), "love", details())

	assert.Equal(t, FallbackSection("love"), got)
}

func TestFallbackSectionIsDeterministic(t *testing.T) {
	assert.Equal(t, FallbackSection("career"), FallbackSection("career"))
	assert.NotEmpty(t, FallbackSection("anything"))
}

func TestGenerateTarotDrawsThreeCards(t *testing.T) {
	chat := &stubChat{reply: "The cards smile upon you."}
	svc, err := NewService(chat, "", nil)
	require.NoError(t, err)

	reading := svc.GenerateTarot(context.Background(), "Will I find love?", "Asha")

	assert.Len(t, reading.Cards, 3)
	assert.Equal(t, "The cards smile upon you.", reading.Analysis)
	assert.Equal(t, "Will I find love?", reading.Question)
	assert.False(t, reading.Fallback)
	assert.Contains(t, chat.lastReq.Messages[0].Content, "Past: "+reading.Cards[0])
}

func TestGenerateTarotFallsBackOnError(t *testing.T) {
	chat := &stubChat{err: errors.New("boom")}
	svc, err := NewService(chat, "", nil)
	require.NoError(t, err)

	reading := svc.GenerateTarot(context.Background(), "What about 2026?", "Asha")

	assert.True(t, reading.Fallback)
	assert.Equal(t, []string{"The Star", "The Sun", "The World"}, reading.Cards)
	assert.Equal(t, "What about 2026?", reading.Question)
}

func TestGenerateReportMergesValidOutput(t *testing.T) {
	chat := &stubChat{reply: `{
		"intro": "custom intro",
		"personality": "p", "transits": "t", "career": "c", "finance": "f",
		"health": "h", "love": "l", "lucky": "lk", "kundli": "k",
		"conclusion": {"content": "wrapped conclusion"}
	}`}
	svc, err := NewService(chat, "", nil)
	require.NoError(t, err)

	report, fellBack := svc.GenerateReport(context.Background(), details())

	assert.False(t, fellBack)
	assert.Equal(t, "custom intro", report.Intro)
	assert.Equal(t, "wrapped conclusion", report.Conclusion)
	require.NotNil(t, chat.lastReq.ResponseFormat)
	assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONObject, chat.lastReq.ResponseFormat.Type)
}

func TestGenerateReportFallsBackOnAPIError(t *testing.T) {
	chat := &stubChat{err: errors.New("rate limited")}
	svc, err := NewService(chat, "", nil)
	require.NoError(t, err)

	report, fellBack := svc.GenerateReport(context.Background(), details())

	assert.True(t, fellBack)
	assert.Equal(t, FallbackReport(), report)
}

func TestGenerateReportRejectsInvalidJSON(t *testing.T) {
	chat := &stubChat{reply: "not json at all"}
	svc, err := NewService(chat, "", nil)
	require.NoError(t, err)

	report, fellBack := svc.GenerateReport(context.Background(), details())

	assert.True(t, fellBack)
	assert.Equal(t, FallbackReport(), report)
}

func TestGenerateReportRejectsMissingSections(t *testing.T) {
	chat := &stubChat{reply: `{"intro": "only intro"}`}
	svc, err := NewService(chat, "", nil)
	require.NoError(t, err)

	report, fellBack := svc.GenerateReport(context.Background(), details())

	assert.True(t, fellBack)
	assert.Equal(t, FallbackReport().Intro, report.Intro)
}

func TestGenerateReportRejectsEmptySection(t *testing.T) {
	chat := &stubChat{reply: `{
		"intro": "", "personality": "p", "transits": "t", "career": "c",
		"finance": "f", "health": "h", "love": "l", "lucky": "lk",
		"kundli": "k", "conclusion": "done"
	}`}
	svc, err := NewService(chat, "", nil)
	require.NoError(t, err)

	_, fellBack := svc.GenerateReport(context.Background(), details())

	assert.True(t, fellBack)
}

func TestEnsureString(t *testing.T) {
	assert.Equal(t, "", EnsureString(nil))
	assert.Equal(t, "plain", EnsureString("plain"))
	assert.Equal(t, "inner", EnsureString(map[string]any{"content": "inner"}))
	assert.Equal(t, "deep", EnsureString(map[string]any{"text": map[string]any{"content": "deep"}}))
	assert.Equal(t, "42", EnsureString(float64(42)))
	assert.True(t, strings.HasPrefix(EnsureString([]any{"a", "b"}), "["))
}

func TestFallbackReportCompletesAllSections(t *testing.T) {
	report := FallbackReport()
	for _, key := range SectionKeys {
		assert.NotEmpty(t, report.Section(key), key)
	}
	assert.False(t, report.IsTarot)
}
