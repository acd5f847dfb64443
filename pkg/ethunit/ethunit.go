// Package ethunit converts between wei and the decimal display units used in
// API payloads (ether, gwei). Formatting follows the convention of always
// keeping at least one fractional digit, so 10^18 wei renders as "1.0".
package ethunit

import (
	"fmt"
	"math/big"
	"strings"
)

const (
	// EtherDecimals is the number of wei digits in one ether.
	EtherDecimals = 18
	// GweiDecimals is the number of wei digits in one gwei.
	GweiDecimals = 9
)

// FormatEther renders a wei amount as a decimal ether string.
func FormatEther(wei *big.Int) string {
	return FormatUnits(wei, EtherDecimals)
}

// FormatGwei renders a wei amount as a decimal gwei string.
func FormatGwei(wei *big.Int) string {
	return FormatUnits(wei, GweiDecimals)
}

// FormatUnits renders a wei amount as a decimal string with the given number
// of fractional digits shifted off. A nil amount renders as "0.0".
func FormatUnits(wei *big.Int, decimals int) string {
	if wei == nil {
		wei = new(big.Int)
	}
	neg := wei.Sign() < 0
	abs := new(big.Int).Abs(wei)

	base := pow10(decimals)
	intPart, frac := new(big.Int).QuoRem(abs, base, new(big.Int))

	fracStr := frac.String()
	if pad := decimals - len(fracStr); pad > 0 {
		fracStr = strings.Repeat("0", pad) + fracStr
	}
	fracStr = strings.TrimRight(fracStr, "0")
	if fracStr == "" {
		fracStr = "0"
	}

	out := intPart.String() + "." + fracStr
	if neg {
		out = "-" + out
	}
	return out
}

// ParseEther parses a decimal ether string into wei.
func ParseEther(s string) (*big.Int, error) {
	return ParseUnits(s, EtherDecimals)
}

// ParseUnits parses a decimal string into an integer amount of wei. The
// fractional part may not exceed the unit's precision.
func ParseUnits(s string, decimals int) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty amount")
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	intStr, fracStr, _ := strings.Cut(s, ".")
	if intStr == "" {
		intStr = "0"
	}
	if !isDigits(intStr) || (fracStr != "" && !isDigits(fracStr)) {
		return nil, fmt.Errorf("invalid decimal amount %q", s)
	}
	if len(fracStr) > decimals {
		return nil, fmt.Errorf("amount %q exceeds %d decimal places", s, decimals)
	}

	intPart, ok := new(big.Int).SetString(intStr, 10)
	if !ok {
		return nil, fmt.Errorf("invalid decimal amount %q", s)
	}
	wei := intPart.Mul(intPart, pow10(decimals))

	if fracStr != "" {
		fracPart, ok := new(big.Int).SetString(fracStr, 10)
		if !ok {
			return nil, fmt.Errorf("invalid decimal amount %q", s)
		}
		fracPart.Mul(fracPart, pow10(decimals-len(fracStr)))
		wei.Add(wei, fracPart)
	}

	if neg {
		wei.Neg(wei)
	}
	return wei, nil
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
