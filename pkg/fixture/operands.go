package fixture

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common/math"
)

// DefaultBitBound is the exponent of the random operand ranges
const DefaultBitBound = 1024

// ErrInvalidOperand is returned when an operand violates its sign constraint
var ErrInvalidOperand = errors.New("invalid operand")

// Operands holds the four inputs of a fixture: two non-negative and two non-positive integers
type Operands struct {
	Pos1 *big.Int
	Pos2 *big.Int
	Neg1 *big.Int
	Neg2 *big.Int
}

// List returns the operands in output order
func (o *Operands) List() []*big.Int {
	return []*big.Int{o.Pos1, o.Pos2, o.Neg1, o.Neg2}
}

// Validate checks that every operand is set and carries the expected sign
func (o *Operands) Validate() error {
	names := []string{"pos1", "pos2", "neg1", "neg2"}
	for i, v := range o.List() {
		if v == nil {
			return fmt.Errorf("%w: %s is not set", ErrInvalidOperand, names[i])
		}
		if i < 2 && v.Sign() < 0 {
			return fmt.Errorf("%w: %s must be non-negative, got %s", ErrInvalidOperand, names[i], v)
		}
		if i >= 2 && v.Sign() > 0 {
			return fmt.Errorf("%w: %s must not be positive, got %s", ErrInvalidOperand, names[i], v)
		}
	}
	return nil
}

// OperandSource supplies the operands for one fixture run
type OperandSource interface {
	Operands() (*Operands, error)
}

// FixedSource always returns the same operands
type FixedSource struct {
	operands *Operands
}

var _ OperandSource = (*FixedSource)(nil)

// DefaultFixedOperands returns the sample operands used when no others are configured
func DefaultFixedOperands() *Operands {
	return &Operands{
		Pos1: big.NewInt(87),
		Pos2: big.NewInt(79),
		Neg1: big.NewInt(-273),
		Neg2: big.NewInt(-7393),
	}
}

// NewFixedSource creates a source returning copies of the given operands
func NewFixedSource(operands *Operands) (*FixedSource, error) {
	if operands == nil {
		return nil, fmt.Errorf("%w: operands are nil", ErrInvalidOperand)
	}
	if err := operands.Validate(); err != nil {
		return nil, err
	}
	return &FixedSource{operands: operands}, nil
}

func (s *FixedSource) Operands() (*Operands, error) {
	return &Operands{
		Pos1: new(big.Int).Set(s.operands.Pos1),
		Pos2: new(big.Int).Set(s.operands.Pos2),
		Neg1: new(big.Int).Set(s.operands.Neg1),
		Neg2: new(big.Int).Set(s.operands.Neg2),
	}, nil
}

// ParseOperands parses four comma-separated signed decimal integers, e.g. "+87,+79,-273,-7393"
func ParseOperands(s string) (*Operands, error) {
	fields := strings.Split(s, ",")
	if len(fields) != 4 {
		return nil, fmt.Errorf("%w: expected 4 comma-separated values, got %d", ErrInvalidOperand, len(fields))
	}

	values := make([]*big.Int, len(fields))
	for i, field := range fields {
		field = strings.TrimSpace(field)
		v, ok := new(big.Int).SetString(strings.TrimPrefix(field, "+"), 10)
		if !ok || field == "" {
			return nil, fmt.Errorf("%w: %q is not a decimal integer", ErrInvalidOperand, field)
		}
		values[i] = v
	}

	ops := &Operands{Pos1: values[0], Pos2: values[1], Neg1: values[2], Neg2: values[3]}
	if err := ops.Validate(); err != nil {
		return nil, err
	}
	return ops, nil
}

// RandomSource draws the non-negative operands from [0, 2^bits+2] and the
// non-positive ones from [-2^bits, 0]. Operands used as divisors are redrawn
// until non-zero.
type RandomSource struct {
	reader  io.Reader
	posSpan *big.Int
	negSpan *big.Int
}

var _ OperandSource = (*RandomSource)(nil)

// NewRandomSource creates a source reading entropy from reader. A nil reader
// selects crypto/rand.
func NewRandomSource(reader io.Reader, bits int) (*RandomSource, error) {
	if bits <= 0 {
		return nil, fmt.Errorf("bit bound must be greater than 0, got %d", bits)
	}
	if reader == nil {
		reader = rand.Reader
	}

	bound := math.BigPow(2, int64(bits))
	return &RandomSource{
		reader: reader,
		// rand.Int samples [0, n), so the spans are one past the inclusive maximum
		posSpan: new(big.Int).Add(bound, big.NewInt(3)),
		negSpan: new(big.Int).Add(bound, big.NewInt(1)),
	}, nil
}

func (s *RandomSource) Operands() (*Operands, error) {
	pos1, err := s.draw(s.posSpan, false, true)
	if err != nil {
		return nil, err
	}
	pos2, err := s.draw(s.posSpan, false, true)
	if err != nil {
		return nil, err
	}
	neg1, err := s.draw(s.negSpan, true, false)
	if err != nil {
		return nil, err
	}
	neg2, err := s.draw(s.negSpan, true, true)
	if err != nil {
		return nil, err
	}

	return &Operands{Pos1: pos1, Pos2: pos2, Neg1: neg1, Neg2: neg2}, nil
}

func (s *RandomSource) draw(span *big.Int, negate, nonZero bool) (*big.Int, error) {
	for {
		v, err := rand.Int(s.reader, span)
		if err != nil {
			return nil, fmt.Errorf("failed to draw random operand: %w", err)
		}
		if nonZero && v.Sign() == 0 {
			continue
		}
		if negate {
			v.Neg(v)
		}
		return v, nil
	}
}
