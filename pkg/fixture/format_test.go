package fixture

import (
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestFormatInt(t *testing.T) {
	tests := []struct {
		value    *big.Int
		expected string
	}{
		{big.NewInt(0), "+0"},
		{new(big.Int).Neg(big.NewInt(0)), "+0"},
		{big.NewInt(87), "+87"},
		{big.NewInt(-273), "-273"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatInt(tt.value))
	}
}

func TestFormatBool(t *testing.T) {
	assert.Equal(t, "true", FormatBool(true))
	assert.Equal(t, "false", FormatBool(false))
}

func TestEncode_SampleOperands(t *testing.T) {
	tests := []struct {
		rule      DivisionRule
		quotients string
	}{
		{DivisionFloor, "+1,+0,-4"},
		{DivisionTruncate, "+1,+0,-3"},
	}

	for _, tt := range tests {
		t.Run(string(tt.rule), func(t *testing.T) {
			ops := DefaultFixedOperands()
			res, err := Compute(ops, tt.rule)
			require.NoError(t, err)

			expected := strings.Join([]string{
				"+87,+79,-273,-7393",
				"+166,-7666,-186,-7314",
				"+8,-360,+7120",
				"+6873,+2018289,-23751",
				tt.quotients,
				"false,false,false,true",
			}, "\n")
			assert.Equal(t, expected, string(Encode(ops, res)))
		})
	}
}

func TestEncode_Layout(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		ops := drawOperands(t)
		res, err := Compute(ops, drawRule(t))
		if err != nil {
			t.Fatalf("compute: %v", err)
		}

		data := string(Encode(ops, res))
		if strings.HasSuffix(data, "\n") {
			t.Fatalf("fixture must not end with a newline")
		}

		lines := strings.Split(data, "\n")
		if len(lines) != 6 {
			t.Fatalf("expected 6 lines, got %d", len(lines))
		}

		counts := []int{4, 4, 3, 3, 3, 4}
		for i, line := range lines {
			fields := strings.Split(line, ",")
			if len(fields) != counts[i] {
				t.Fatalf("line %d: expected %d fields, got %d: %q", i+1, counts[i], len(fields), line)
			}
			for _, field := range fields {
				if i == 5 {
					if field != "true" && field != "false" {
						t.Fatalf("line 6: unexpected token %q", field)
					}
					continue
				}
				if field[0] != '+' && field[0] != '-' {
					t.Fatalf("line %d: field %q has no explicit sign", i+1, field)
				}
				if field == "-0" {
					t.Fatalf("line %d: zero rendered as -0", i+1)
				}
			}
		}
	})
}

func TestEncode_RoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		rule := drawRule(t)
		ops := drawOperands(t)
		res, err := Compute(ops, rule)
		if err != nil {
			t.Fatalf("compute: %v", err)
		}
		data := Encode(ops, res)

		firstLine, _, _ := strings.Cut(string(data), "\n")
		parsed, err := ParseOperands(firstLine)
		if err != nil {
			t.Fatalf("parse %q: %v", firstLine, err)
		}

		recomputed, err := Compute(parsed, rule)
		if err != nil {
			t.Fatalf("recompute: %v", err)
		}
		if again := Encode(parsed, recomputed); string(again) != string(data) {
			t.Fatalf("round trip mismatch:\n%s\n---\n%s", data, again)
		}

		if sq := new(big.Int).Mul(parsed.Pos1, parsed.Pos1); sq.Sign() < 0 {
			t.Fatalf("square of non-negative operand is negative: %s", sq)
		}
	})
}

// drawInt draws a non-negative integer of up to 1040 bits, no smaller than least
func drawInt(t *rapid.T, label string, least int64) *big.Int {
	b := rapid.SliceOfN(rapid.Byte(), 0, 130).Draw(t, label)
	v := new(big.Int).SetBytes(b)
	if v.Cmp(big.NewInt(least)) < 0 {
		v.SetInt64(least)
	}
	return v
}

func drawOperands(t *rapid.T) *Operands {
	return &Operands{
		Pos1: drawInt(t, "pos1", 1),
		Pos2: drawInt(t, "pos2", 1),
		Neg1: new(big.Int).Neg(drawInt(t, "neg1", 0)),
		Neg2: new(big.Int).Neg(drawInt(t, "neg2", 1)),
	}
}

func drawRule(t *rapid.T) DivisionRule {
	return rapid.SampledFrom([]DivisionRule{DivisionFloor, DivisionTruncate}).Draw(t, "rule")
}
