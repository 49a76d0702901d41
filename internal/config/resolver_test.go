package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLogLevelPrecedence(t *testing.T) {
	tests := []struct {
		name       string
		flag       string
		env        string
		config     string
		wantValue  string
		wantSource ConfigSource
	}{
		{
			name:       "flag wins over everything",
			flag:       "debug",
			env:        "warn",
			config:     "error",
			wantValue:  "debug",
			wantSource: SourceFlag,
		},
		{
			name:       "env wins over config",
			env:        "warn",
			config:     "error",
			wantValue:  "warn",
			wantSource: SourceEnv,
		},
		{
			name:       "config wins over default",
			config:     "error",
			wantValue:  "error",
			wantSource: SourceConfig,
		},
		{
			name:       "default when nothing set",
			wantValue:  "info",
			wantSource: SourceDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TRELLIS_LOG_LEVEL", tt.env)

			result := ResolveLogLevel(ResolveLogLevelOptions{
				FlagValue:   tt.flag,
				ConfigValue: tt.config,
			})

			assert.Equal(t, tt.wantValue, result.Value)
			assert.Equal(t, tt.wantSource, result.Source)
		})
	}
}

func TestResolveLogLevelRecordsShadowed(t *testing.T) {
	t.Setenv("TRELLIS_LOG_LEVEL", "warn")

	result := ResolveLogLevel(ResolveLogLevelOptions{
		FlagValue:   "debug",
		ConfigValue: "error",
	})

	assert.Equal(t, "warn", result.Shadowed[SourceEnv])
	assert.Equal(t, "error", result.Shadowed[SourceConfig])
}

func TestResolveConfigPath(t *testing.T) {
	t.Setenv("TRELLIS_CONFIG", "")

	result, err := ResolveConfigPath(ResolveConfigPathOptions{})
	require.NoError(t, err)
	assert.Equal(t, SourceDefault, result.Source)
	assert.NotEmpty(t, result.Value)

	t.Setenv("TRELLIS_CONFIG", "/tmp/override.yaml")

	result, err = ResolveConfigPath(ResolveConfigPathOptions{})
	require.NoError(t, err)
	assert.Equal(t, SourceEnv, result.Source)
	assert.Equal(t, "/tmp/override.yaml", result.Value)

	result, err = ResolveConfigPath(ResolveConfigPathOptions{FlagValue: "/tmp/flag.yaml"})
	require.NoError(t, err)
	assert.Equal(t, SourceFlag, result.Source)
	assert.Equal(t, "/tmp/flag.yaml", result.Value)
	assert.Equal(t, "/tmp/override.yaml", result.Shadowed[SourceEnv])
}

func TestValidatorRejectsBadLogLevel(t *testing.T) {
	v := NewValidator()

	require.NoError(t, v.Validate(&Config{Log: LogConfig{Level: "info"}}))
	require.NoError(t, v.Validate(&Config{}))

	err := v.Validate(&Config{Log: LogConfig{Level: "loud"}})
	require.Error(t, err)

	var errs ValidationErrors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 1)
	assert.Equal(t, "log.level", errs[0].Field)
}
