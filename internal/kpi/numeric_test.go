package kpi

import (
	"encoding/json"
	"math"
	"testing"
)

func TestSafeDivide(t *testing.T) {
	cases := []struct {
		name string
		a, b float64
		want float64
	}{
		{"plain", 10, 4, 2.5},
		{"zero denominator", 42, 0, 0},
		{"zero numerator", 0, 5, 0},
		{"negative", -50, 10, -5},
		{"nan numerator", math.NaN(), 3, 0},
		{"inf numerator", math.Inf(1), 3, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SafeDivide(tc.a, tc.b); got != tc.want {
				t.Fatalf("SafeDivide(%v, %v) = %v, want %v", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func TestRatePercentFormat(t *testing.T) {
	cases := []struct {
		name     string
		num, den float64
		want     string
	}{
		{"forty percent", 40, 100, "40.0%"},
		{"one decimal rounding", 1, 3, "33.3%"},
		{"over hundred", 15, 10, "150.0%"},
		{"zero denominator is literal zero", 7, 0, "0%"},
		{"zero numerator keeps decimal", 0, 9, "0.0%"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RatePercent(tc.num, tc.den); got != tc.want {
				t.Fatalf("RatePercent(%v, %v) = %q, want %q", tc.num, tc.den, got, tc.want)
			}
		})
	}
}

func TestParseAmountCoercesToZero(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want float64
	}{
		{"nil", nil, 0},
		{"float", 12.5, 12.5},
		{"int", 7, 7},
		{"numeric string", "19.9", 19.9},
		{"garbage string", "abc", 0},
		{"empty string", "", 0},
		{"json number", json.Number("250"), 250},
		{"bad json number", json.Number("x"), 0},
		{"map", map[string]any{}, 0},
		{"nan", math.NaN(), 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseAmount(tc.in); got != tc.want {
				t.Fatalf("ParseAmount(%#v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseCountNeverNegative(t *testing.T) {
	if got := ParseCount(-3); got != 0 {
		t.Fatalf("ParseCount(-3) = %d, want 0", got)
	}
	if got := ParseCount("14"); got != 14 {
		t.Fatalf("ParseCount(\"14\") = %d, want 14", got)
	}
}

func TestFormatCurrencyUsesBrazilianConvention(t *testing.T) {
	got := FormatCurrency(1234.5)
	if got != "R$ 1.234,50" {
		t.Fatalf("FormatCurrency(1234.5) = %q, want %q", got, "R$ 1.234,50")
	}
}
