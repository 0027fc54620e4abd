package config

import "os"

// PlanModels defines which chat models to use for different tasks
type PlanModels struct {
	// PlanGen is for full development-plan generation (deep analysis, not blocking)
	PlanGen string `json:"planGen"`

	// Summary is for short executive summaries shown before the full plan is ready
	Summary string `json:"summary"`
}

// AIConfig holds all AI-related configuration
type AIConfig struct {
	APIKey    string     `json:"-"` // Never serialize
	BaseURL   string     `json:"baseUrl"`
	Models    PlanModels `json:"models"`
	TimeoutMS int        `json:"timeoutMs"`
}

// DefaultAIConfig returns the default AI configuration
func DefaultAIConfig() *AIConfig {
	return &AIConfig{
		APIKey:  os.Getenv("OPENAI_API_KEY"),
		BaseURL: getEnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		Models: PlanModels{
			PlanGen: getEnvOrDefault("PLAN_MODEL", "gpt-4o"),
			Summary: getEnvOrDefault("PLAN_MODEL_SUMMARY", "gpt-4o-mini"),
		},
		TimeoutMS: 60000, // plan generation is slow; 60 second default timeout
	}
}

// IsEnabled returns true if the AI API is configured
func (c *AIConfig) IsEnabled() bool {
	return c.APIKey != ""
}

// ChatEndpoint returns the chat completions endpoint
func (c *AIConfig) ChatEndpoint() string {
	return c.BaseURL + "/chat/completions"
}

func getEnvOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
