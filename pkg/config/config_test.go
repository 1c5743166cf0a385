package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoad(t *testing.T) {
	type args struct {
		configFile string
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
		f       func(t *testing.T, config *Config)
	}{
		{
			name:    "missing",
			args:    args{configFile: "testdata/missing.yaml"},
			wantErr: true,
		},
		{
			name:    "full",
			args:    args{configFile: "testdata/rbtree.yaml"},
			wantErr: false,
			f: func(t *testing.T, config *Config) {
				assert.Equal(t, "/var/log/rbtree/rbtree.log", config.Log.File)
				assert.Equal(t, 10, config.Log.MaxSize)
				assert.True(t, config.Log.Compress)

				// untouched keys keep their defaults
				assert.Equal(t, 7, config.Log.MaxBackups)
				assert.Equal(t, 1_000, config.Stress.ValidateEvery)

				assert.Equal(t, 500, config.Stress.Count)
				assert.Equal(t, int64(7), config.Stress.Seed)
				assert.Equal(t, int64(1000), config.Stress.MaxKey)
				assert.Equal(t, 0.25, config.Stress.DeleteRatio)

				assert.Equal(t, "tree> ", config.Shell.Prompt)
				assert.Equal(t, KeySlice{50, 40, 60, 30, 70}, config.Shell.Preload)
			},
		},
		{
			name:    "preload as string",
			args:    args{configFile: "testdata/preload_string.yaml"},
			wantErr: false,
			f: func(t *testing.T, config *Config) {
				assert.Equal(t, KeySlice{10, 20, 30}, config.Shell.Preload)
				assert.Equal(t, "rbtree> ", config.Shell.Prompt)
			},
		},
		{
			name:    "invalid delete ratio",
			args:    args{configFile: "testdata/invalid_ratio.yaml"},
			wantErr: true,
		},
		{
			name:    "invalid preload key",
			args:    args{configFile: "testdata/invalid_key.yaml"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := Load(tt.args.configFile)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, config)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, config)
			if tt.f != nil {
				tt.f(t, config)
			}
		})
	}
}

func TestKeySlice(t *testing.T) {
	t.Run("yaml scalar", func(t *testing.T) {
		var s KeySlice
		require.NoError(t, yaml.Unmarshal([]byte(`42`), &s))
		assert.Equal(t, KeySlice{42}, s)
	})

	t.Run("yaml string", func(t *testing.T) {
		var s KeySlice
		require.NoError(t, yaml.Unmarshal([]byte(`"1,2,3"`), &s))
		assert.Equal(t, KeySlice{1, 2, 3}, s)
	})

	t.Run("json array", func(t *testing.T) {
		var s KeySlice
		require.NoError(t, json.Unmarshal([]byte(`[5, -1, "7 8"]`), &s))
		assert.Equal(t, KeySlice{5, -1, 7, 8}, s)
	})

	t.Run("json fraction", func(t *testing.T) {
		var s KeySlice
		assert.Error(t, json.Unmarshal([]byte(`[1.5]`), &s))
	})

	t.Run("unexpected type", func(t *testing.T) {
		var s KeySlice
		assert.Error(t, json.Unmarshal([]byte(`{"a": 1}`), &s))
	})
}

func TestParseKeys(t *testing.T) {
	keys, err := ParseKeys(" 3,1\t2 ")
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1, 2}, keys)

	keys, err = ParseKeys("")
	require.NoError(t, err)
	assert.Empty(t, keys)

	_, err = ParseKeys("1,x")
	assert.Error(t, err)
}
