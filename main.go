package main

import (
	"fmt"
	"log"
	"os"

	"github.com/speedrun-hq/bigfixture/pkg/config"
	"github.com/speedrun-hq/bigfixture/pkg/fixture"
	"github.com/speedrun-hq/bigfixture/pkg/logger"
	"github.com/speedrun-hq/bigfixture/pkg/metrics"
	"github.com/spf13/cobra"
)

var flags struct {
	output   string
	policy   string
	division string
	bits     int
	seed     uint64
}

var rootCmd = &cobra.Command{
	Use:   "bigfixture",
	Short: "Generate big-integer arithmetic test fixtures",
	Long: `Writes four operands and the expected sums, differences, products,
quotients and comparisons to a six-line text file for a big-integer test suite.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(&flags.output, "output", "o", "", "fixture file path (overrides OUTPUT_PATH)")
	rootCmd.Flags().StringVar(&flags.policy, "policy", "", "operand policy: fixed or random (overrides OPERAND_POLICY)")
	rootCmd.Flags().StringVar(&flags.division, "division", "", "quotient rounding: floor or truncate (overrides DIVISION_RULE)")
	rootCmd.Flags().IntVar(&flags.bits, "bits", 0, "exponent of the random operand ranges (overrides BIT_BOUND)")
	rootCmd.Flags().Uint64Var(&flags.seed, "seed", 0, "seed for a reproducible random source (overrides SEED)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Printf("[ERROR]  %v", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	// Load configuration from environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}

	stdLogger := logger.NewStdLogger(cfg.LoggerConfig.Coloring, cfg.LoggerConfig.Level)

	source, err := cfg.OperandSource()
	if err != nil {
		return fmt.Errorf("failed to create operand source: %w", err)
	}

	m := metrics.New()
	generator, err := fixture.NewGenerator(source, fixture.Options{
		OutputPath: cfg.OutputPath,
		Division:   cfg.DivisionRule,
		Policy:     cfg.OperandPolicy,
		Metrics:    m,
	}, stdLogger)
	if err != nil {
		return err
	}

	stdLogger.Info("Generating fixture with %s operands and %s division", cfg.OperandPolicy, cfg.DivisionRule)
	_, runErr := generator.Run()

	if cfg.MetricsTextfile != "" {
		if err := m.WriteTextfile(cfg.MetricsTextfile); err != nil {
			stdLogger.Error("failed to write metrics textfile %s: %v", cfg.MetricsTextfile, err)
		}
	}

	return runErr
}

// applyFlags overrides the environment configuration with flags set on the command line
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	fs := cmd.Flags()
	if fs.Changed("output") {
		cfg.OutputPath = flags.output
	}
	if fs.Changed("policy") {
		cfg.OperandPolicy = flags.policy
	}
	if fs.Changed("division") {
		cfg.DivisionRule = fixture.DivisionRule(flags.division)
	}
	if fs.Changed("bits") {
		cfg.BitBound = flags.bits
	}
	if fs.Changed("seed") {
		seed := flags.seed
		cfg.Seed = &seed
	}
	return config.Validate(cfg)
}
