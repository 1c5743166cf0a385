package cmdutil

import (
	"github.com/spf13/pflag"

	"github.com/c9s/rbtree/pkg/config"
)

// PersistentFlags defines the flags shared by every command
func PersistentFlags(flags *pflag.FlagSet) {
	flags.Bool("debug", false, "debug flag")
	flags.String("config", "", "config file")
	flags.String("dotenv", ".env.local", "the dotenv file to load before reading the environment")
}

// StressFlags defines the stress driver flags. Unset flags fall back to the
// config file.
func StressFlags(flags *pflag.FlagSet) {
	flags.Int("count", 0, "number of keys to insert")
	flags.Int64("seed", 0, "random seed, 0 seeds from the clock")
	flags.Int64("max-key", 0, "draw uniform keys in [0, max-key) instead of (2+T)*(rand%100)")
	flags.Float64("delete-ratio", 0, "probability of deleting a previously inserted key after each insert")
	flags.Int("validate-every", 0, "validate the tree after every n inserts")
}

// ApplyStressFlags overrides the config values with the flags given on the
// command line.
func ApplyStressFlags(flags *pflag.FlagSet, cfg config.StressConfig) (config.StressConfig, error) {
	var err error
	if flags.Changed("count") {
		if cfg.Count, err = flags.GetInt("count"); err != nil {
			return cfg, err
		}
	}

	if flags.Changed("seed") {
		if cfg.Seed, err = flags.GetInt64("seed"); err != nil {
			return cfg, err
		}
	}

	if flags.Changed("max-key") {
		if cfg.MaxKey, err = flags.GetInt64("max-key"); err != nil {
			return cfg, err
		}
	}

	if flags.Changed("delete-ratio") {
		if cfg.DeleteRatio, err = flags.GetFloat64("delete-ratio"); err != nil {
			return cfg, err
		}
	}

	if flags.Changed("validate-every") {
		if cfg.ValidateEvery, err = flags.GetInt("validate-every"); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

// GetKeys collects integer keys from a string slice flag, where each value may
// hold several comma separated keys.
func GetKeys(flags *pflag.FlagSet, name string) ([]int64, error) {
	values, err := flags.GetStringSlice(name)
	if err != nil {
		return nil, err
	}

	var keys []int64
	for _, v := range values {
		ks, err := config.ParseKeys(v)
		if err != nil {
			return nil, err
		}
		keys = append(keys, ks...)
	}
	return keys, nil
}
