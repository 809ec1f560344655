package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/speedrun-hq/bigfixture/pkg/fixture"
	"github.com/speedrun-hq/bigfixture/pkg/logger"
)

const (
	// PolicyFixed uses literal operands
	PolicyFixed = "fixed"

	// PolicyRandom draws operands from a random source
	PolicyRandom = "random"

	// DefaultOutputPath defines the default fixture file path
	DefaultOutputPath = fixture.DefaultOutputPath

	// DefaultOperandPolicy defines how operands are selected by default
	DefaultOperandPolicy = PolicyRandom

	// DefaultDivisionRule defines the default rounding of quotients
	DefaultDivisionRule = fixture.DivisionFloor

	// DefaultBitBound defines the default exponent of the random operand ranges
	DefaultBitBound = fixture.DefaultBitBound

	// DefaultFixedOperands defines the operands used by the fixed policy
	DefaultFixedOperands = "+87,+79,-273,-7393"

	// DefaultLogLevel defines the default log level
	DefaultLogLevel = "info"

	// DefaultLogColoring defines whether log prefixes are colored
	DefaultLogColoring = true
)

// GetEnvOutputPath returns the fixture file path from environment variables
func GetEnvOutputPath() (string, error) {
	path := os.Getenv("OUTPUT_PATH")
	if path == "" {
		return DefaultOutputPath, nil
	}
	return path, nil
}

// GetEnvOperandPolicy returns the operand selection policy from environment variables
func GetEnvOperandPolicy() (string, error) {
	policy := os.Getenv("OPERAND_POLICY")
	if policy == "" {
		return DefaultOperandPolicy, nil
	}

	if policy != PolicyFixed && policy != PolicyRandom {
		return "", fmt.Errorf("invalid OPERAND_POLICY value: %s, must be '%s' or '%s'", policy, PolicyFixed, PolicyRandom)
	}
	return policy, nil
}

// GetEnvDivisionRule returns the quotient rounding rule from environment variables
func GetEnvDivisionRule() (fixture.DivisionRule, error) {
	rule := os.Getenv("DIVISION_RULE")
	if rule == "" {
		return DefaultDivisionRule, nil
	}

	parsed, err := fixture.ParseDivisionRule(rule)
	if err != nil {
		return "", fmt.Errorf("invalid DIVISION_RULE value: %s, must be 'floor' or 'truncate'", rule)
	}
	return parsed, nil
}

// GetEnvBitBound returns the exponent of the random operand ranges from environment variables
func GetEnvBitBound() (int, error) {
	bitBound := os.Getenv("BIT_BOUND")
	if bitBound == "" {
		return DefaultBitBound, nil
	}

	bits, err := strconv.Atoi(bitBound)
	if err != nil {
		return 0, fmt.Errorf("invalid BIT_BOUND value: %s, must be an integer", bitBound)
	}
	if bits <= 0 {
		return 0, fmt.Errorf("BIT_BOUND must be greater than 0")
	}
	return bits, nil
}

// GetEnvFixedOperands returns the operands of the fixed policy from environment variables
func GetEnvFixedOperands() (*fixture.Operands, error) {
	operands := os.Getenv("FIXED_OPERANDS")
	if operands == "" {
		operands = DefaultFixedOperands
	}

	parsed, err := fixture.ParseOperands(operands)
	if err != nil {
		return nil, fmt.Errorf("invalid FIXED_OPERANDS value: %s: %w", operands, err)
	}
	return parsed, nil
}

// GetEnvSeed returns the random source seed from environment variables, nil when unset
func GetEnvSeed() (*uint64, error) {
	seed := os.Getenv("SEED")
	if seed == "" {
		return nil, nil
	}

	parsed, err := strconv.ParseUint(seed, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid SEED value: %s, must be an unsigned integer", seed)
	}
	return &parsed, nil
}

// GetEnvLogLevel returns the log level from environment variables
func GetEnvLogLevel() (logger.Level, error) {
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = DefaultLogLevel
	}

	parsed, err := logger.ParseLevel(level)
	if err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL value: %s, must be 'debug', 'info', 'notice' or 'error'", level)
	}
	return parsed, nil
}

// GetEnvLogColoring returns whether log prefixes are colored from environment variables
func GetEnvLogColoring() (bool, error) {
	enabled := os.Getenv("LOG_COLORING")
	if enabled == "" {
		return DefaultLogColoring, nil
	}

	if enabled == "true" {
		return true, nil
	} else if enabled == "false" {
		return false, nil
	}

	return false, fmt.Errorf("invalid LOG_COLORING value: %s, must be 'true' or 'false'", enabled)
}

// GetEnvMetricsTextfile returns the Prometheus textfile path from environment variables
func GetEnvMetricsTextfile() string {
	return os.Getenv("METRICS_TEXTFILE")
}
