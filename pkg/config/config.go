// Package config loads and validates the application configuration.
package config

// Config is the umbrella configuration object returned by Initialize()
// and used throughout the application.
type Config struct {
	configDir string // Configuration directory path (for reference)

	// Queue and worker pool configuration
	Queue *QueueConfig

	// LLM provider configuration (research + refinement)
	Providers *ProvidersConfig

	// Report rendering configuration
	Report *ReportConfig

	// Email delivery configuration
	Mailer *MailerConfig

	// Data retention configuration
	Retention *RetentionConfig

	// Dashboard base URL, embedded in notification emails
	DashboardURL string
}

// ConfigDir returns the configuration directory path.
func (c *Config) ConfigDir() string {
	return c.configDir
}
