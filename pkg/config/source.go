package config

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/speedrun-hq/bigfixture/pkg/fixture"
)

// OperandSource builds the operand source selected by the configuration
func (c *Config) OperandSource() (fixture.OperandSource, error) {
	switch c.OperandPolicy {
	case PolicyFixed:
		return fixture.NewFixedSource(c.FixedOperands)
	case PolicyRandom:
		var reader io.Reader
		if c.Seed != nil {
			reader = seededReader(*c.Seed)
		}
		return fixture.NewRandomSource(reader, c.BitBound)
	}
	return nil, fmt.Errorf("unsupported operand policy: %s", c.OperandPolicy)
}

// seededReader returns a deterministic byte stream for reproducible fixtures
func seededReader(seed uint64) io.Reader {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	return rand.NewChaCha8(key)
}
