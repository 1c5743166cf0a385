package cmdutil

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c9s/rbtree/pkg/config"
)

func TestApplyStressFlags(t *testing.T) {
	base := config.StressConfig{
		Count:         100,
		Seed:          1,
		MaxKey:        0,
		DeleteRatio:   0.1,
		ValidateEvery: 10,
	}

	t.Run("no flags keep the config", func(t *testing.T) {
		flags := pflag.NewFlagSet("stress", pflag.ContinueOnError)
		StressFlags(flags)
		require.NoError(t, flags.Parse(nil))

		cfg, err := ApplyStressFlags(flags, base)
		require.NoError(t, err)
		assert.Equal(t, base, cfg)
	})

	t.Run("flags override", func(t *testing.T) {
		flags := pflag.NewFlagSet("stress", pflag.ContinueOnError)
		StressFlags(flags)
		require.NoError(t, flags.Parse([]string{"--count=5", "--max-key", "50", "--delete-ratio=0"}))

		cfg, err := ApplyStressFlags(flags, base)
		require.NoError(t, err)
		assert.Equal(t, config.StressConfig{
			Count:         5,
			Seed:          1,
			MaxKey:        50,
			DeleteRatio:   0,
			ValidateEvery: 10,
		}, cfg)
	})
}

func TestGetKeys(t *testing.T) {
	flags := pflag.NewFlagSet("keys", pflag.ContinueOnError)
	flags.StringSlice("keys", nil, "")
	require.NoError(t, flags.Parse([]string{"--keys", "1,2", "--keys", "3"}))

	keys, err := GetKeys(flags, "keys")
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, keys)

	_, err = GetKeys(flags, "missing")
	assert.Error(t, err)

	require.NoError(t, flags.Set("keys", "x"))
	_, err = GetKeys(flags, "keys")
	assert.Error(t, err)
}
