// Package app assembles the vocabulary trainer from its parts.
package app

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	coreconfig "lexibot/core/config"
	coredatabase "lexibot/core/database"
)

// QuizConfig tunes question building and answer checking.
type QuizConfig struct {
	// MaxAttempts per question before the answer is revealed; 0 -> default
	MaxAttempts int `yaml:"max_attempts" envconfig:"QUIZ_MAX_ATTEMPTS"`
	// OptionCount including the correct translation; 0 -> default
	OptionCount int `yaml:"option_count" envconfig:"QUIZ_OPTION_COUNT"`
}

// Config is the full application configuration.
type Config struct {
	coreconfig.Config `yaml:",inline"`

	Database coredatabase.Config `yaml:"database"`
	Quiz     QuizConfig          `yaml:"quiz"`
}

// CoreConfig exposes the embedded core configuration.
func (c *Config) CoreConfig() *coreconfig.Config {
	return &c.Config
}

// Load reads application configuration from a YAML file and environment
// variables, then validates the core part.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	if err := coreconfig.Normalize(&cfg.Config); err != nil {
		return nil, err
	}
	if cfg.Quiz.MaxAttempts < 0 {
		return nil, fmt.Errorf("quiz.max_attempts must be >= 0")
	}
	if cfg.Quiz.OptionCount < 0 {
		return nil, fmt.Errorf("quiz.option_count must be >= 0")
	}
	return &cfg, nil
}
