package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/GAJULASAINATH/MacroVerse/internal/models/response_models"
	"github.com/GAJULASAINATH/MacroVerse/pkg/utils"
)

const (
	visionCallTimeout    = 60 * time.Second
	narrativeCallTimeout = 30 * time.Second
)

// GeminiClient talks to Google's Gemini models: a vision-capable model for
// food photos and a text model for report narratives.
type GeminiClient struct {
	client      *genai.Client
	visionModel string
	textModel   string
}

func NewGeminiClient(apiKey, visionModel, textModel string) (*GeminiClient, error) {
	if visionModel == "" {
		visionModel = "gemini-2.5-pro"
	}
	if textModel == "" {
		textModel = "gemini-2.5-flash"
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client:      client,
		visionModel: visionModel,
		textModel:   textModel,
	}, nil
}

func (c *GeminiClient) AnalyzeFoodImage(ctx context.Context, image []byte, mimeType string) (*response_models.NutrientEstimate, error) {
	ctx, cancel := context.WithTimeout(ctx, visionCallTimeout)
	defer cancel()

	m := c.client.GenerativeModel(c.visionModel)
	m.SetTemperature(0.1)

	// genai wants the bare image subtype, not the full MIME type.
	format := strings.TrimPrefix(mimeType, "image/")

	resp, err := m.GenerateContent(ctx,
		genai.Text(analysisPrompt),
		genai.ImageData(format, image),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrModelCallFailed, err)
	}

	text, err := candidateText(resp)
	if err != nil {
		return nil, err
	}
	return parseNutrientEstimate(text)
}

func (c *GeminiClient) GenerateNarrative(ctx context.Context, totals response_models.MonthlyTotals) (*response_models.Narrative, error) {
	ctx, cancel := context.WithTimeout(ctx, narrativeCallTimeout)
	defer cancel()

	m := c.client.GenerativeModel(c.textModel)
	m.SetTemperature(0.3)

	resp, err := m.GenerateContent(ctx, genai.Text(narrativePrompt(totals)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrModelCallFailed, err)
	}

	text, err := candidateText(resp)
	if err != nil {
		return nil, err
	}
	return parseNarrative(text)
}

func candidateText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: no content generated", utils.ErrModelCallFailed)
	}
	return fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0]), nil
}

func (c *GeminiClient) Close() error {
	return c.client.Close()
}
