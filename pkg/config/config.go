package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type LogConfig struct {
	// File is the path of the JSON log written in production mode.
	File       string `json:"file" yaml:"file"`
	MaxSize    int    `json:"maxSize" yaml:"maxSize"`
	MaxBackups int    `json:"maxBackups" yaml:"maxBackups"`
	MaxAge     int    `json:"maxAge" yaml:"maxAge"`
	Compress   bool   `json:"compress" yaml:"compress"`
}

type StressConfig struct {
	Count int   `json:"count" yaml:"count"`
	Seed  int64 `json:"seed" yaml:"seed"`

	// MaxKey switches the key generator to uniform keys in [0, MaxKey).
	// Zero keeps the classic (2+T)*(rand%100) keys.
	MaxKey int64 `json:"maxKey" yaml:"maxKey"`

	DeleteRatio   float64 `json:"deleteRatio" yaml:"deleteRatio"`
	ValidateEvery int     `json:"validateEvery" yaml:"validateEvery"`
}

type ShellConfig struct {
	Prompt  string   `json:"prompt" yaml:"prompt"`
	Preload KeySlice `json:"preload" yaml:"preload"`
}

type Config struct {
	Log    LogConfig    `json:"log" yaml:"log"`
	Stress StressConfig `json:"stress" yaml:"stress"`
	Shell  ShellConfig  `json:"shell" yaml:"shell"`
}

func Default() *Config {
	return &Config{
		Log: LogConfig{
			File:       "log/rbtree.log",
			MaxSize:    100,
			MaxBackups: 7,
			MaxAge:     30,
		},
		Stress: StressConfig{
			Count:         10_000,
			ValidateEvery: 1_000,
		},
		Shell: ShellConfig{
			Prompt: "rbtree> ",
		},
	}
}

// Load reads the YAML config file on top of the defaults.
func Load(configFile string) (*Config, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, err
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrapf(err, "can not parse config file %s", configFile)
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid config file %s", configFile)
	}

	return config, nil
}

func (c *Config) Validate() error {
	if c.Stress.Count < 0 {
		return errors.Errorf("stress.count must not be negative, given %d", c.Stress.Count)
	}

	if c.Stress.MaxKey < 0 {
		return errors.Errorf("stress.maxKey must not be negative, given %d", c.Stress.MaxKey)
	}

	if c.Stress.DeleteRatio < 0 || c.Stress.DeleteRatio >= 1 {
		return errors.Errorf("stress.deleteRatio must be in [0, 1), given %v", c.Stress.DeleteRatio)
	}

	if c.Stress.ValidateEvery < 0 {
		return errors.Errorf("stress.validateEvery must not be negative, given %d", c.Stress.ValidateEvery)
	}

	return nil
}
