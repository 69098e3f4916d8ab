package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/driftlab/wakewise/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You are a non-medical sleep scheduling assistant.

You receive a computed schedule analysis for a single user: sleep debt, a
consistency score, a chronotype alignment score, the user's sleep goal, and
their alarms with smart wake-time suggestions. Base your conclusions only on
the provided data.

Your goals:
- Describe the state of the user's wake schedule in clear, neutral language.
- Explain what the sleep debt, consistency, and alignment numbers mean for them.
- Relate the suggested alarm times to their chronotype and goal.
- Give practical, behavioral suggestions for adopting the recommendations.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, or treatment.
- Focus only on behavior and routines (bedtime regularity, alarm placement, weekend drift).
- If data is limited or mixed, say that explicitly.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "summary": "2-3 sentences summarizing schedule health and the biggest lever to pull.",
  "observations": [
    "3-6 bullet points about sleep debt, consistency, chronotype alignment, and how the alarms line up with them."
  ],
  "guidance": [
    "3-5 concrete, non-medical suggestions tailored to these numbers.",
    "Include at least one suggestion about schedule regularity if the consistency score is below 70.",
    "Include at least one suggestion about bedtime if sleep debt exceeds an hour."
  ]
}

No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing this user's schedule analysis.

- "analysis" holds sleep debt (minutes), consistency and alignment scores (0-100),
  the aggregated sleep pattern, and rule-generated recommendations.
- "goal" is the user's explicit sleep goal (or the defaults if none was set).
- "alarms" are their alarms; smart-enabled ones carry a computed schedule with a
  suggested time, confidence, and rationale.

JSON:

%s

Based on this data, respond in the required JSON format.`

// ScheduleInsightsLLM is the interface for narrating a schedule analysis.
type ScheduleInsightsLLM interface {
	// GenerateInsights takes a context object and returns LLM-generated insights.
	GenerateInsights(ctx context.Context, insightsCtx *domain.ScheduleInsightsContext) (*domain.LLMInsightsOutput, error)
}

// OpenAIClient implements ScheduleInsightsLLM using the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client for generating insights.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client: client,
		model:  model,
	}
}

// GenerateInsights calls OpenAI to narrate the schedule analysis.
func (c *OpenAIClient) GenerateInsights(ctx context.Context, insightsCtx *domain.ScheduleInsightsContext) (*domain.LLMInsightsOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	contextJSON, err := json.MarshalIndent(insightsCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(contextJSON))

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := resp.Choices[0].Message.Content

	var output domain.LLMInsightsOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &output, nil
}
