package classifier

import (
	"context"
	"fmt"

	"github.com/Rorical/EmotionAnalyzer/internal/config"
	"github.com/Rorical/EmotionAnalyzer/internal/models"
)

// Classifier maps free text to an emotion distribution
type Classifier interface {
	Classify(ctx context.Context, text string) (models.ClassificationResult, error)
}

// HealthChecker is implemented by backends exposing a liveness probe
type HealthChecker interface {
	Health(ctx context.Context) (HealthStatus, error)
}

// Backend names accepted in profiles
const (
	BackendHTTP   = "http"
	BackendOpenAI = "openai"
)

// New returns the classifier configured by the active profile
func New(cfg *config.Config) (Classifier, error) {
	switch cfg.GetBackend() {
	case "", BackendHTTP:
		return NewHTTPClassifier(cfg.GetBaseURL(), nil), nil
	case BackendOpenAI:
		if cfg.GetAPIKey() == "" {
			return nil, fmt.Errorf("profile %q uses the openai backend but has no api key", cfg.ActiveProfile)
		}
		return NewLLMClassifier(LLMConfig{
			APIKey:   cfg.GetAPIKey(),
			Endpoint: cfg.GetLLMEndpoint(),
			Model:    cfg.GetModel(),
		}), nil
	}
	return nil, fmt.Errorf("unknown classifier backend %q", cfg.GetBackend())
}
