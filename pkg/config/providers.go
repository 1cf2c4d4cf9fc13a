package config

import "time"

// ProviderConfig describes one LLM provider endpoint.
type ProviderConfig struct {
	// Model name sent with every completion request (required).
	Model string `yaml:"model"`

	// APIKeyEnv is the environment variable holding the API key.
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// BaseURL overrides the provider's default endpoint.
	BaseURL string `yaml:"base_url,omitempty"`

	// Timeout for a single HTTP request to the provider.
	Timeout time.Duration `yaml:"timeout"`

	// MaxRetries for transport-level retryable failures (429/5xx).
	MaxRetries int `yaml:"max_retries"`

	// Background enables the asynchronous submit-then-poll mode where the
	// provider supports it. The research call returns only when the remote
	// job reaches a terminal state or the poll budget is exhausted.
	Background bool `yaml:"background,omitempty"`

	// BackgroundPollInterval is the fixed delay between status polls.
	BackgroundPollInterval time.Duration `yaml:"background_poll_interval,omitempty"`

	// BackgroundMaxPolls bounds the poll loop by attempt count.
	BackgroundMaxPolls int `yaml:"background_max_polls,omitempty"`
}

// RefinementConfig controls the clarifying-question planner.
type RefinementConfig struct {
	// Provider selects which adapter plans refinement: "openai" or "gemini".
	Provider string `yaml:"provider"`

	// MaxQuestions caps how many clarifying questions are kept.
	MaxQuestions int `yaml:"max_questions"`
}

// ProvidersConfig groups all LLM provider settings.
type ProvidersConfig struct {
	OpenAI     *ProviderConfig   `yaml:"openai"`
	Gemini     *ProviderConfig   `yaml:"gemini"`
	Refinement *RefinementConfig `yaml:"refinement"`
}

// DefaultProvidersConfig returns the built-in provider defaults.
// API keys always come from the environment.
func DefaultProvidersConfig() *ProvidersConfig {
	return &ProvidersConfig{
		OpenAI: &ProviderConfig{
			Model:                  "gpt-4o",
			APIKeyEnv:              "OPENAI_API_KEY",
			Timeout:                180 * time.Second,
			MaxRetries:             2,
			BackgroundPollInterval: 5 * time.Second,
			BackgroundMaxPolls:     60,
		},
		Gemini: &ProviderConfig{
			Model:      "gemini-2.0-flash",
			APIKeyEnv:  "GEMINI_API_KEY",
			Timeout:    180 * time.Second,
			MaxRetries: 2,
		},
		Refinement: &RefinementConfig{
			Provider:     "openai",
			MaxQuestions: 3,
		},
	}
}
