package config

import "time"

// MailerConfig holds email delivery settings (SendGrid).
type MailerConfig struct {
	// APIKeyEnv is the environment variable holding the SendGrid API key.
	APIKeyEnv string `yaml:"api_key_env,omitempty"`

	// BaseURL overrides the SendGrid API endpoint (tests).
	BaseURL string `yaml:"base_url,omitempty"`

	// FromEmail and FromName identify the sender of report emails.
	FromEmail string `yaml:"from_email"`
	FromName  string `yaml:"from_name,omitempty"`

	// Timeout for a single mail-send request.
	Timeout time.Duration `yaml:"timeout"`

	// MaxRetries for transport-level retryable failures.
	MaxRetries int `yaml:"max_retries"`
}

// ReportConfig holds PDF report rendering settings.
type ReportConfig struct {
	// Title is the document title printed on the report cover.
	Title string `yaml:"title"`

	// Author is printed in the PDF metadata.
	Author string `yaml:"author,omitempty"`
}

// DefaultMailerConfig returns the built-in mailer defaults.
func DefaultMailerConfig() *MailerConfig {
	return &MailerConfig{
		APIKeyEnv:  "SENDGRID_API_KEY",
		FromEmail:  "reports@inquira.dev",
		FromName:   "Inquira Research",
		Timeout:    30 * time.Second,
		MaxRetries: 3,
	}
}

// DefaultReportConfig returns the built-in report defaults.
func DefaultReportConfig() *ReportConfig {
	return &ReportConfig{
		Title:  "Research Report",
		Author: "Inquira",
	}
}
