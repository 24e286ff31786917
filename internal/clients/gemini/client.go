package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/prepdeck/prepdeck-backend/internal/logger"
	"github.com/prepdeck/prepdeck-backend/internal/utils"
)

// questionCount is how many questions each prompt asks the model for. The
// model may return fewer; callers get whatever survives normalization.
const questionCount = 5

// Client is the gateway to the generative-language API. It owns prompt
// construction and output normalization; callers only see clean question
// strings.
type Client interface {
	GenerateQuestions(ctx context.Context, jobTitle, category, difficulty string) ([]string, error)
}

type client struct {
	genai *genai.Client
	model string
	log   *logger.Logger
}

func NewClient(ctx context.Context, log *logger.Logger) (Client, error) {
	clientLog := log.With("client", "GeminiClient")

	apiKey := strings.TrimSpace(utils.GetEnv("GEMINI_API_KEY", "", log))
	if apiKey == "" {
		return nil, fmt.Errorf("missing GEMINI_API_KEY")
	}
	model := utils.GetEnv("GEMINI_MODEL", "gemini-1.5-flash-latest", log)

	genaiClient, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}

	return &client{genai: genaiClient, model: model, log: clientLog}, nil
}

func (c *client) GenerateQuestions(ctx context.Context, jobTitle, category, difficulty string) ([]string, error) {
	prompt := fmt.Sprintf("Generate %d %s-level %s interview questions for the role %s.",
		questionCount, difficulty, category, jobTitle)

	contents := []*genai.Content{
		{Role: "user", Parts: []*genai.Part{{Text: prompt}}},
	}

	result, err := c.genai.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		c.log.Warn("Gemini generateContent failed", "error", err, "model", c.model)
		return nil, fmt.Errorf("gemini generateContent: %w", err)
	}

	text := firstCandidateText(result)
	questions := CleanQuestionList(text)
	c.log.Debug("Generated questions", "requested", questionCount, "returned", len(questions))
	return questions, nil
}

// firstCandidateText digs out candidates[0].content.parts[0].text. Any
// missing level means empty output, never a panic: the model occasionally
// returns candidates with no content (e.g. safety blocks).
func firstCandidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return ""
	}
	return content.Parts[0].Text
}
