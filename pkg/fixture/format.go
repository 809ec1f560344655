package fixture

import (
	"math/big"
	"strings"
)

const (
	fieldSeparator  = ","
	recordSeparator = "\n"
)

// FormatInt renders v in decimal with an explicit sign; zero is "+0"
func FormatInt(v *big.Int) string {
	if v.Sign() < 0 {
		return v.String()
	}
	return "+" + v.String()
}

// FormatBool renders b as "true" or "false"
func FormatBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

func formatInts(values []*big.Int) string {
	fields := make([]string, len(values))
	for i, v := range values {
		fields[i] = FormatInt(v)
	}
	return strings.Join(fields, fieldSeparator)
}

func formatBools(values []bool) string {
	fields := make([]string, len(values))
	for i, b := range values {
		fields[i] = FormatBool(b)
	}
	return strings.Join(fields, fieldSeparator)
}

// Encode renders the six fixture records. The last record has no trailing newline.
func Encode(ops *Operands, res *Results) []byte {
	records := []string{
		formatInts(ops.List()),
		formatInts(res.Sums[:]),
		formatInts(res.Differences[:]),
		formatInts(res.Products[:]),
		formatInts(res.Quotients[:]),
		formatBools(res.Comparisons[:]),
	}
	return []byte(strings.Join(records, recordSeparator))
}
