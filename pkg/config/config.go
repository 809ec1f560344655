package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/speedrun-hq/bigfixture/pkg/fixture"
	"github.com/speedrun-hq/bigfixture/pkg/logger"
)

// Config holds the configuration for a fixture run
type Config struct {
	OutputPath      string
	OperandPolicy   string
	DivisionRule    fixture.DivisionRule
	BitBound        int
	FixedOperands   *fixture.Operands
	Seed            *uint64
	MetricsTextfile string
	LoggerConfig    LoggerConfig
}

// LoggerConfig holds the configuration for logging
type LoggerConfig struct {
	Level    logger.Level
	Coloring bool
}

// LoadConfig loads the configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	outputPath, err := GetEnvOutputPath()
	if err != nil {
		return nil, err
	}

	policy, err := GetEnvOperandPolicy()
	if err != nil {
		return nil, err
	}

	divisionRule, err := GetEnvDivisionRule()
	if err != nil {
		return nil, err
	}

	bitBound, err := GetEnvBitBound()
	if err != nil {
		return nil, err
	}

	fixedOperands, err := GetEnvFixedOperands()
	if err != nil {
		return nil, err
	}

	seed, err := GetEnvSeed()
	if err != nil {
		return nil, err
	}

	logLevel, err := GetEnvLogLevel()
	if err != nil {
		return nil, err
	}

	logColoring, err := GetEnvLogColoring()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		OutputPath:      outputPath,
		OperandPolicy:   policy,
		DivisionRule:    divisionRule,
		BitBound:        bitBound,
		FixedOperands:   fixedOperands,
		Seed:            seed,
		MetricsTextfile: GetEnvMetricsTextfile(),
		LoggerConfig: LoggerConfig{
			Level:    logLevel,
			Coloring: logColoring,
		},
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks a configuration, including one modified after loading
func Validate(cfg *Config) error {
	if cfg.OutputPath == "" {
		return fmt.Errorf("OUTPUT_PATH must not be empty")
	}
	if cfg.OperandPolicy != PolicyFixed && cfg.OperandPolicy != PolicyRandom {
		return fmt.Errorf("invalid operand policy: %s, must be '%s' or '%s'", cfg.OperandPolicy, PolicyFixed, PolicyRandom)
	}
	if _, err := fixture.ParseDivisionRule(string(cfg.DivisionRule)); err != nil {
		return err
	}
	if cfg.BitBound <= 0 {
		return fmt.Errorf("bit bound must be greater than 0")
	}
	if cfg.OperandPolicy == PolicyFixed && cfg.FixedOperands == nil {
		return fmt.Errorf("fixed operands are required for the %s policy", PolicyFixed)
	}
	return nil
}
