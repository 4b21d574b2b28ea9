package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultDecimalPlaces is the fraction precision used when the caller does not pick one.
const DefaultDecimalPlaces = 2

// FormatOptions controls how FormatAmount renders a raw amount.
type FormatOptions struct {
	// Full renders the raw integer amount followed by the base unit, without shifting.
	Full bool
	// DecimalPlaces is the number of fraction digits kept. Extra digits are truncated, never rounded.
	DecimalPlaces uint8
	// TrailingDecimals keeps an all-zero fraction ("150.00") instead of dropping it ("150").
	TrailingDecimals bool
}

// DefaultFormatOptions returns the options used for display amounts.
func DefaultFormatOptions() FormatOptions {
	return FormatOptions{DecimalPlaces: DefaultDecimalPlaces}
}

// FormatAmount renders a raw integer amount in token units.
//
// The decimal point is shifted on the exact decimal representation, so amounts above 2^53 keep
// every digit. A non-zero amount is never rendered as zero: when truncation would leave only
// zeros and the integer part is 0, the untruncated fraction is shown instead.
func FormatAmount(value decimal.Decimal, token TokenInfo, opts FormatOptions) string {
	if opts.Full {
		return value.String() + " " + token.BaseUnit()
	}

	sign := ""
	if value.IsNegative() {
		sign = "-"
		value = value.Neg()
	}

	intPart, fracPart := shiftDecimal(value, token.Decimals)

	return sign + joinAmount(intPart, fracPart, opts) + " " + token.Unit
}

// shiftDecimal moves the decimal point of value left by decimals places and
// returns the integer digits and exactly decimals fraction digits.
func shiftDecimal(value decimal.Decimal, decimals uint8) (string, string) {
	places := int32(decimals)
	shifted := value.Shift(-places).Truncate(places)

	intPart, fracPart, _ := strings.Cut(shifted.StringFixed(places), ".")

	return intPart, fracPart
}

func joinAmount(intPart, fracPart string, opts FormatOptions) string {
	places := int(opts.DecimalPlaces)
	fullIsZero := isAllZeros(fracPart)

	if places == 0 {
		if intPart == "0" && !fullIsZero {
			return intPart + "." + strings.TrimRight(fracPart, "0")
		}
		return intPart
	}

	truncated := fracPart
	if len(truncated) > places {
		truncated = truncated[:places]
	}

	if isAllZeros(truncated) {
		if intPart == "0" && !fullIsZero {
			return intPart + "." + strings.TrimRight(fracPart, "0")
		}
		if opts.TrailingDecimals {
			return intPart + "." + strings.Repeat("0", places)
		}
		return intPart
	}

	if opts.TrailingDecimals && len(truncated) < places {
		truncated += strings.Repeat("0", places-len(truncated))
	}

	return intPart + "." + truncated
}

func isAllZeros(s string) bool {
	return strings.Trim(s, "0") == ""
}
