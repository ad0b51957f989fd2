package ai

import (
	"context"
	"encoding/base64"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/GAJULASAINATH/MacroVerse/internal/models/response_models"
	"github.com/GAJULASAINATH/MacroVerse/pkg/utils"
)

// OpenAIClient is the drop-in alternative provider; images go in as data URLs
// on a multi-part chat message.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = openai.GPT4o
	}
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAIClient) AnalyzeFoodImage(ctx context.Context, image []byte, mimeType string) (*response_models.NutrientEstimate, error) {
	ctx, cancel := context.WithTimeout(ctx, visionCallTimeout)
	defer cancel()

	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(image))

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: analysisPrompt,
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL: dataURL,
						},
					},
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrModelCallFailed, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no content generated", utils.ErrModelCallFailed)
	}

	return parseNutrientEstimate(resp.Choices[0].Message.Content)
}

func (c *OpenAIClient) GenerateNarrative(ctx context.Context, totals response_models.MonthlyTotals) (*response_models.Narrative, error) {
	ctx, cancel := context.WithTimeout(ctx, narrativeCallTimeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: narrativePrompt(totals),
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrModelCallFailed, err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no content generated", utils.ErrModelCallFailed)
	}

	return parseNarrative(resp.Choices[0].Message.Content)
}
