package fixture

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrDivisionByZero is returned when a quotient would divide by zero
var ErrDivisionByZero = errors.New("division by zero")

// DivisionRule selects how integer quotients are rounded
type DivisionRule string

const (
	// DivisionFloor rounds toward negative infinity
	DivisionFloor DivisionRule = "floor"

	// DivisionTruncate rounds toward zero
	DivisionTruncate DivisionRule = "truncate"
)

// ParseDivisionRule converts a name into a DivisionRule
func ParseDivisionRule(s string) (DivisionRule, error) {
	switch DivisionRule(s) {
	case DivisionFloor, DivisionTruncate:
		return DivisionRule(s), nil
	}
	return "", fmt.Errorf("invalid division rule: %s, must be '%s' or '%s'", s, DivisionFloor, DivisionTruncate)
}

// Divide returns x/y rounded according to the rule
func (r DivisionRule) Divide(x, y *big.Int) (*big.Int, error) {
	if y.Sign() == 0 {
		return nil, ErrDivisionByZero
	}

	switch r {
	case DivisionTruncate:
		return new(big.Int).Quo(x, y), nil
	case DivisionFloor:
		q, m := new(big.Int).QuoRem(x, y, new(big.Int))
		if m.Sign() != 0 && m.Sign() != y.Sign() {
			q.Sub(q, big.NewInt(1))
		}
		return q, nil
	}
	return nil, fmt.Errorf("unknown division rule: %q", string(r))
}

// Results holds the reference values computed from a set of operands
type Results struct {
	Sums        [4]*big.Int
	Differences [3]*big.Int
	Products    [3]*big.Int
	Quotients   [3]*big.Int
	Comparisons [4]bool
}

// Compute evaluates the full arithmetic battery over the operands
func Compute(ops *Operands, rule DivisionRule) (*Results, error) {
	if err := ops.Validate(); err != nil {
		return nil, err
	}

	pos1, pos2, neg1, neg2 := ops.Pos1, ops.Pos2, ops.Neg1, ops.Neg2
	res := &Results{
		Sums: [4]*big.Int{
			new(big.Int).Add(pos1, pos2),
			new(big.Int).Add(neg1, neg2),
			new(big.Int).Add(pos1, neg1),
			new(big.Int).Add(neg2, pos2),
		},
		Differences: [3]*big.Int{
			new(big.Int).Sub(pos1, pos2),
			new(big.Int).Sub(neg1, pos1),
			new(big.Int).Sub(neg1, neg2),
		},
		Products: [3]*big.Int{
			new(big.Int).Mul(pos1, pos2),
			new(big.Int).Mul(neg1, neg2),
			new(big.Int).Mul(pos1, neg1),
		},
		Comparisons: [4]bool{
			pos1.Cmp(pos2) < 0,
			pos2.Cmp(pos1) > 0,
			neg1.Cmp(neg2) < 0,
			neg1.Cmp(pos1) < 0,
		},
	}

	divisions := [3][2]*big.Int{{pos1, pos2}, {neg1, neg2}, {neg1, pos1}}
	for i, d := range divisions {
		q, err := rule.Divide(d[0], d[1])
		if err != nil {
			return nil, fmt.Errorf("failed to compute quotient %s / %s: %w", d[0], d[1], err)
		}
		res.Quotients[i] = q
	}

	return res, nil
}
