package fixture

import (
	"fmt"
	"os"
	"time"

	"github.com/speedrun-hq/bigfixture/pkg/logger"
	"github.com/speedrun-hq/bigfixture/pkg/metrics"
)

// DefaultOutputPath is the file the external test suite reads
const DefaultOutputPath = "test_input.txt"

// Options configures a Generator
type Options struct {
	OutputPath string
	Division   DivisionRule
	// Policy labels the operand source in metrics
	Policy string
	// Metrics is optional
	Metrics *metrics.Metrics
}

// Fixture is one generated set of operands, results and their encoding
type Fixture struct {
	Operands *Operands
	Results  *Results
	Data     []byte
}

// Generator produces fixture files from an operand source
type Generator struct {
	source OperandSource
	opts   Options
	logger logger.Logger
}

// NewGenerator creates a generator. Empty options fall back to the default path and floor division.
func NewGenerator(source OperandSource, opts Options, log logger.Logger) (*Generator, error) {
	if source == nil {
		return nil, fmt.Errorf("operand source is required")
	}
	if opts.OutputPath == "" {
		opts.OutputPath = DefaultOutputPath
	}
	if opts.Division == "" {
		opts.Division = DivisionFloor
	}
	if _, err := ParseDivisionRule(string(opts.Division)); err != nil {
		return nil, err
	}
	if log == nil {
		log = &logger.EmptyLogger{}
	}

	return &Generator{
		source: source,
		opts:   opts,
		logger: log,
	}, nil
}

// Build draws operands and computes the encoded fixture without touching the filesystem
func (g *Generator) Build() (*Fixture, error) {
	ops, err := g.source.Operands()
	if err != nil {
		return nil, fmt.Errorf("failed to get operands: %w", err)
	}
	g.logger.DebugWithStage(logger.Operands, "operand bit lengths: %d, %d, %d, %d",
		ops.Pos1.BitLen(), ops.Pos2.BitLen(), ops.Neg1.BitLen(), ops.Neg2.BitLen())

	res, err := Compute(ops, g.opts.Division)
	if err != nil {
		return nil, err
	}
	g.logger.DebugWithStage(logger.Compute, "computed results using %s division", g.opts.Division)

	return &Fixture{
		Operands: ops,
		Results:  res,
		Data:     Encode(ops, res),
	}, nil
}

// Run builds a fixture and overwrites the output file with it
func (g *Generator) Run() (fixture *Fixture, err error) {
	started := time.Now()
	if g.opts.Metrics != nil {
		defer func() {
			g.opts.Metrics.ObserveRun(g.opts.Policy, string(g.opts.Division), started, err)
		}()
	}

	fixture, err = g.Build()
	if err != nil {
		g.logger.ErrorWithStage(logger.Compute, "failed to build fixture: %v", err)
		return nil, err
	}

	if err = WriteFile(g.opts.OutputPath, fixture.Data); err != nil {
		g.logger.ErrorWithStage(logger.Output, "failed to write %s: %v", g.opts.OutputPath, err)
		return nil, err
	}
	g.logger.InfoWithStage(logger.Output, "wrote %d bytes to %s", len(fixture.Data), g.opts.OutputPath)

	if g.opts.Metrics != nil {
		names := []string{"pos1", "pos2", "neg1", "neg2"}
		for i, v := range fixture.Operands.List() {
			g.opts.Metrics.OperandBits.WithLabelValues(names[i]).Set(float64(v.BitLen()))
		}
		g.opts.Metrics.BytesWritten.Set(float64(len(fixture.Data)))
	}

	return fixture, nil
}

// WriteFile truncates path and writes data to it
func WriteFile(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}

	if _, err = f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write output file: %w", err)
	}

	if err = f.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return nil
}
