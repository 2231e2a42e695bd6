package units

import (
	"fmt"
	"math/big"
	"strings"
)

const (
	EtherDecimals = 18
)

// ParseEther converts a decimal ether amount ("0.1") into wei.
func ParseEther(amount string) (*big.Int, error) {
	return ParseUnits(amount, EtherDecimals)
}

// FormatEther converts wei into a decimal ether amount without trailing zeros.
func FormatEther(wei *big.Int) string {
	return FormatUnits(wei, EtherDecimals)
}

// ParseUnits converts an unsigned decimal string into an integer scaled by 10^decimals.
// Amounts with more fractional digits than decimals are rejected instead of rounded.
func ParseUnits(amount string, decimals int) (*big.Int, error) {
	s := strings.TrimSpace(amount)
	intPart, fracPart, _ := strings.Cut(s, ".")
	if intPart == "" && fracPart == "" {
		return nil, fmt.Errorf("invalid decimal amount %q", amount)
	}
	if !isDigits(intPart) || !isDigits(fracPart) {
		return nil, fmt.Errorf("invalid decimal amount %q", amount)
	}
	if len(fracPart) > decimals {
		return nil, fmt.Errorf("amount %q has more than %d decimals", amount, decimals)
	}

	fracPart += strings.Repeat("0", decimals-len(fracPart))
	v, ok := new(big.Int).SetString(intPart+fracPart, 10)
	if !ok {
		return nil, fmt.Errorf("invalid decimal amount %q", amount)
	}

	return v, nil
}

// FormatUnits is the inverse of ParseUnits.
func FormatUnits(v *big.Int, decimals int) string {
	if v == nil {
		return "0"
	}

	digits := new(big.Int).Abs(v).String()
	if len(digits) <= decimals {
		digits = strings.Repeat("0", decimals-len(digits)+1) + digits
	}

	intPart := digits[:len(digits)-decimals]
	fracPart := strings.TrimRight(digits[len(digits)-decimals:], "0")

	sign := ""
	if v.Sign() < 0 {
		sign = "-"
	}
	if fracPart == "" {
		return sign + intPart
	}
	return sign + intPart + "." + fracPart
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
