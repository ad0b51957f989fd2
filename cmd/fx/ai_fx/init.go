package ai_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"github.com/GAJULASAINATH/MacroVerse/pkg/ai"
)

var Module = fx.Provide(
	ProvideAIClient)

// ProvideAIClient constructs the process-wide model client once at startup.
// It is read-only afterwards; every handler gets it injected.
func ProvideAIClient() (ai.Client, error) {
	cfg := getAIConfig()

	log.Printf("Initializing %s AI client (vision model: %s)", cfg.Provider, cfg.VisionModel)

	client, err := ai.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create AI client: %w", err)
	}
	return client, nil
}

func getAIConfig() ai.Config {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini")

	var apiKey, visionModel, textModel string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		visionModel = getEnvWithDefault("OPENAI_MODEL", "gpt-4o")
		textModel = visionModel
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		visionModel = getEnvWithDefault("GEMINI_VISION_MODEL", "gemini-2.5-pro")
		textModel = getEnvWithDefault("GEMINI_TEXT_MODEL", "gemini-2.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return ai.Config{
		Provider:    provider,
		APIKey:      apiKey,
		VisionModel: visionModel,
		TextModel:   textModel,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
