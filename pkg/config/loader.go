package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// inquiraYAMLConfig represents the complete inquira.yaml file structure.
type inquiraYAMLConfig struct {
	System    *systemYAMLConfig `yaml:"system"`
	Queue     *QueueConfig      `yaml:"queue"`
	Providers *ProvidersConfig  `yaml:"providers"`
	Mailer    *MailerConfig     `yaml:"mailer"`
	Report    *ReportConfig     `yaml:"report"`
	Retention *RetentionConfig  `yaml:"retention"`
}

// systemYAMLConfig groups system-wide settings.
type systemYAMLConfig struct {
	DashboardURL string `yaml:"dashboard_url"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
//
// Steps performed:
//  1. Load inquira.yaml from configDir (missing file falls back to defaults)
//  2. Expand environment variables
//  3. Merge user-provided values over built-in defaults
//  4. Validate the result
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"workers", cfg.Queue.WorkerCount,
		"openai_model", cfg.Providers.OpenAI.Model,
		"gemini_model", cfg.Providers.Gemini.Model,
		"refinement_provider", cfg.Providers.Refinement.Provider)

	return cfg, nil
}

func load(_ context.Context, configDir string) (*Config, error) {
	path := filepath.Join(configDir, "inquira.yaml")

	var fileCfg inquiraYAMLConfig
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		slog.Warn("No inquira.yaml found, using built-in defaults", "path", path)
	case err != nil:
		return nil, fmt.Errorf("reading %s: %w", path, err)
	default:
		expanded := ExpandEnv(data)
		if err := yaml.Unmarshal(expanded, &fileCfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	// Start with defaults, then merge user config on top so unset fields
	// keep their default values.
	queueCfg := DefaultQueueConfig()
	if fileCfg.Queue != nil {
		if err := mergo.Merge(queueCfg, fileCfg.Queue, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge queue config: %w", err)
		}
	}

	providersCfg := DefaultProvidersConfig()
	if fileCfg.Providers != nil {
		if err := mergo.Merge(providersCfg, fileCfg.Providers, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge providers config: %w", err)
		}
	}

	mailerCfg := DefaultMailerConfig()
	if fileCfg.Mailer != nil {
		if err := mergo.Merge(mailerCfg, fileCfg.Mailer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge mailer config: %w", err)
		}
	}

	reportCfg := DefaultReportConfig()
	if fileCfg.Report != nil {
		if err := mergo.Merge(reportCfg, fileCfg.Report, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge report config: %w", err)
		}
	}

	retentionCfg := DefaultRetentionConfig()
	if fileCfg.Retention != nil {
		if err := mergo.Merge(retentionCfg, fileCfg.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
	}

	dashboardURL := ""
	if fileCfg.System != nil {
		dashboardURL = fileCfg.System.DashboardURL
	}

	return &Config{
		configDir:    configDir,
		Queue:        queueCfg,
		Providers:    providersCfg,
		Mailer:       mailerCfg,
		Report:       reportCfg,
		Retention:    retentionCfg,
		DashboardURL: dashboardURL,
	}, nil
}

// validate performs sanity checks on loaded configuration.
func validate(cfg *Config) error {
	if cfg.Queue.WorkerCount <= 0 {
		return fmt.Errorf("queue.worker_count must be positive, got %d", cfg.Queue.WorkerCount)
	}
	if cfg.Queue.MaxConcurrentSessions <= 0 {
		return fmt.Errorf("queue.max_concurrent_sessions must be positive, got %d", cfg.Queue.MaxConcurrentSessions)
	}
	if cfg.Queue.SessionTimeout <= 0 {
		return fmt.Errorf("queue.session_timeout must be positive")
	}
	if cfg.Queue.HeartbeatInterval <= 0 {
		return fmt.Errorf("queue.heartbeat_interval must be positive")
	}

	for name, p := range map[string]*ProviderConfig{
		"openai": cfg.Providers.OpenAI,
		"gemini": cfg.Providers.Gemini,
	} {
		if p == nil {
			return fmt.Errorf("providers.%s is required", name)
		}
		if p.Model == "" {
			return fmt.Errorf("providers.%s.model is required", name)
		}
		if p.Timeout <= 0 {
			return fmt.Errorf("providers.%s.timeout must be positive", name)
		}
		if p.Background {
			if p.BackgroundPollInterval <= 0 {
				return fmt.Errorf("providers.%s.background_poll_interval must be positive in background mode", name)
			}
			if p.BackgroundMaxPolls <= 0 {
				return fmt.Errorf("providers.%s.background_max_polls must be positive in background mode", name)
			}
		}
	}

	switch cfg.Providers.Refinement.Provider {
	case "openai", "gemini":
	default:
		return fmt.Errorf("providers.refinement.provider must be openai or gemini, got %q", cfg.Providers.Refinement.Provider)
	}
	if cfg.Providers.Refinement.MaxQuestions <= 0 {
		return fmt.Errorf("providers.refinement.max_questions must be positive")
	}

	if cfg.Mailer.FromEmail == "" {
		return fmt.Errorf("mailer.from_email is required")
	}

	if cfg.Retention.SessionRetentionDays <= 0 {
		return fmt.Errorf("retention.session_retention_days must be positive, got %d", cfg.Retention.SessionRetentionDays)
	}
	if cfg.Retention.CleanupInterval <= 0 {
		return fmt.Errorf("retention.cleanup_interval must be positive")
	}

	return nil
}
