package config

import (
	"testing"

	"github.com/speedrun-hq/bigfixture/pkg/fixture"
	"github.com/speedrun-hq/bigfixture/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"OUTPUT_PATH", "OPERAND_POLICY", "DIVISION_RULE", "BIT_BOUND",
		"FIXED_OPERANDS", "SEED", "LOG_LEVEL", "LOG_COLORING", "METRICS_TEXTFILE"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "test_input.txt", cfg.OutputPath)
	assert.Equal(t, PolicyRandom, cfg.OperandPolicy)
	assert.Equal(t, fixture.DivisionFloor, cfg.DivisionRule)
	assert.Equal(t, 1024, cfg.BitBound)
	assert.Equal(t, "87", cfg.FixedOperands.Pos1.String())
	assert.Equal(t, "-7393", cfg.FixedOperands.Neg2.String())
	assert.Nil(t, cfg.Seed)
	assert.Empty(t, cfg.MetricsTextfile)
	assert.Equal(t, logger.InfoLevel, cfg.LoggerConfig.Level)
	assert.True(t, cfg.LoggerConfig.Coloring)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("OUTPUT_PATH", "out/fixture.txt")
	t.Setenv("OPERAND_POLICY", "fixed")
	t.Setenv("DIVISION_RULE", "truncate")
	t.Setenv("BIT_BOUND", "256")
	t.Setenv("FIXED_OPERANDS", "+1,+2,-3,-4")
	t.Setenv("SEED", "42")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_COLORING", "false")
	t.Setenv("METRICS_TEXTFILE", "fixture.prom")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "out/fixture.txt", cfg.OutputPath)
	assert.Equal(t, PolicyFixed, cfg.OperandPolicy)
	assert.Equal(t, fixture.DivisionTruncate, cfg.DivisionRule)
	assert.Equal(t, 256, cfg.BitBound)
	assert.Equal(t, "-3", cfg.FixedOperands.Neg1.String())
	require.NotNil(t, cfg.Seed)
	assert.Equal(t, uint64(42), *cfg.Seed)
	assert.Equal(t, "fixture.prom", cfg.MetricsTextfile)
	assert.Equal(t, logger.DebugLevel, cfg.LoggerConfig.Level)
	assert.False(t, cfg.LoggerConfig.Coloring)
}

func TestGetEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
		get   func() error
	}{
		{"OPERAND_POLICY", "sometimes", func() error { _, err := GetEnvOperandPolicy(); return err }},
		{"DIVISION_RULE", "ceil", func() error { _, err := GetEnvDivisionRule(); return err }},
		{"BIT_BOUND", "many", func() error { _, err := GetEnvBitBound(); return err }},
		{"BIT_BOUND", "0", func() error { _, err := GetEnvBitBound(); return err }},
		{"FIXED_OPERANDS", "+1,+2,-3", func() error { _, err := GetEnvFixedOperands(); return err }},
		{"FIXED_OPERANDS", "+1,+2,+3,-4", func() error { _, err := GetEnvFixedOperands(); return err }},
		{"SEED", "-1", func() error { _, err := GetEnvSeed(); return err }},
		{"LOG_LEVEL", "verbose", func() error { _, err := GetEnvLogLevel(); return err }},
		{"LOG_COLORING", "yes", func() error { _, err := GetEnvLogColoring(); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			err := tt.get()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			OutputPath:    "test_input.txt",
			OperandPolicy: PolicyRandom,
			DivisionRule:  fixture.DivisionFloor,
			BitBound:      1024,
			FixedOperands: fixture.DefaultFixedOperands(),
		}
	}
	require.NoError(t, Validate(valid()))

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty output path", func(c *Config) { c.OutputPath = "" }},
		{"unknown policy", func(c *Config) { c.OperandPolicy = "both" }},
		{"unknown division", func(c *Config) { c.DivisionRule = "round" }},
		{"zero bit bound", func(c *Config) { c.BitBound = 0 }},
		{"fixed without operands", func(c *Config) { c.OperandPolicy = PolicyFixed; c.FixedOperands = nil }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			require.Error(t, Validate(cfg))
		})
	}
}
