package domain

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

var shimmer = TokenInfo{Decimals: 6, Unit: "SMR", Subunit: "glow"}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value string
		token TokenInfo
		opts  FormatOptions
		want  string
	}{
		{"whole amount drops zero fraction", "150000000", shimmer, DefaultFormatOptions(), "150 SMR"},
		{"fraction kept to two places", "150500000", shimmer, DefaultFormatOptions(), "150.50 SMR"},
		{"truncates instead of rounding", "1999999", shimmer, DefaultFormatOptions(), "1.99 SMR"},
		{"tiny amount falls back to full fraction", "60", shimmer, DefaultFormatOptions(), "0.00006 SMR"},
		{"tiny amount with trailing decimals", "60", shimmer, FormatOptions{DecimalPlaces: 2, TrailingDecimals: true}, "0.00006 SMR"},
		{"dust below places on whole amount is truncated", "150000001", shimmer, DefaultFormatOptions(), "150 SMR"},
		{"dust below places with trailing decimals", "150000001", shimmer, FormatOptions{DecimalPlaces: 2, TrailingDecimals: true}, "150.00 SMR"},
		{"dust below places with zero places", "150000001", shimmer, FormatOptions{}, "150 SMR"},
		{"trailing decimals on whole amount", "150000000", shimmer, FormatOptions{DecimalPlaces: 2, TrailingDecimals: true}, "150.00 SMR"},
		{"zero without trailing decimals", "0", shimmer, DefaultFormatOptions(), "0 SMR"},
		{"zero with trailing decimals", "0", shimmer, FormatOptions{DecimalPlaces: 2, TrailingDecimals: true}, "0.00 SMR"},
		{"zero decimal places keeps integer part", "150500000", shimmer, FormatOptions{}, "150 SMR"},
		{"zero decimal places never hides a sub-unit amount", "500000", shimmer, FormatOptions{}, "0.5 SMR"},
		{"more places than token decimals", "15", TokenInfo{Decimals: 1, Unit: "T"}, FormatOptions{DecimalPlaces: 3, TrailingDecimals: true}, "1.500 T"},
		{"token without decimals", "42", TokenInfo{Unit: "T"}, FormatOptions{DecimalPlaces: 2, TrailingDecimals: true}, "42.00 T"},
		{"negative amount", "-150500000", shimmer, DefaultFormatOptions(), "-150.50 SMR"},
		{"full uses subunit", "150500000", shimmer, FormatOptions{Full: true}, "150500000 glow"},
		{"full falls back to unit", "7", TokenInfo{Decimals: 6, Unit: "IOTA"}, FormatOptions{Full: true}, "7 IOTA"},
		{
			"beyond float precision",
			"123456789012345678901234567",
			shimmer,
			FormatOptions{DecimalPlaces: 6},
			"123456789012345678901.234567 SMR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatAmount(decimal.RequireFromString(tt.value), tt.token, tt.opts)
			if got != tt.want {
				t.Fatalf("FormatAmount(%s) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}

func TestFormatAmountNeverRoundsUp(t *testing.T) {
	t.Parallel()

	values := []string{"1", "9", "99", "999999", "1999999", "150000001", "123456789", "987654321987654321"}
	for _, raw := range values {
		for decimals := uint8(0); decimals <= 9; decimals++ {
			for places := uint8(0); places <= 4; places++ {
				token := TokenInfo{Decimals: decimals, Unit: "T"}
				got := FormatAmount(decimal.RequireFromString(raw), token, FormatOptions{DecimalPlaces: places})

				shown := decimal.RequireFromString(strings.TrimSuffix(got, " T"))
				bound := decimal.RequireFromString(raw).Shift(-int32(decimals))
				if !bound.Truncate(0).IsZero() {
					bound = bound.Truncate(int32(places))
				}
				if shown.GreaterThan(bound) {
					t.Fatalf("value %s decimals %d places %d: rendered %s exceeds %s", raw, decimals, places, got, bound)
				}
			}
		}
	}
}

func TestFormatAmountNeverShowsFalseZero(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"1", "5", "99", "4999"} {
		got := FormatAmount(decimal.RequireFromString(raw), shimmer, FormatOptions{DecimalPlaces: 2, TrailingDecimals: true})
		if decimal.RequireFromString(strings.TrimSuffix(got, " SMR")).IsZero() {
			t.Fatalf("non-zero amount %s rendered as %q", raw, got)
		}
	}
}
