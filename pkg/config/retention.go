package config

import "time"

// RetentionConfig controls how long finished sessions are kept.
type RetentionConfig struct {
	// SessionRetentionDays is how long terminal sessions (email_sent, failed)
	// survive before the cleanup service deletes them.
	SessionRetentionDays int `yaml:"session_retention_days"`

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		SessionRetentionDays: 30,
		CleanupInterval:      1 * time.Hour,
	}
}
