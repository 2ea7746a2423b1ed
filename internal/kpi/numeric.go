package kpi

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SafeDivide returns a/b, or 0 when b is zero or the quotient is not a
// finite number. Used everywhere a ratio could hit an empty denominator.
func SafeDivide(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	q := a / b
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return 0
	}
	return q
}

// RatePercent formats num/den as a percentage with one decimal digit, e.g.
// "40.0%". Whenever the denominator is zero it returns the literal "0%".
func RatePercent(num, den float64) string {
	if den == 0 {
		return "0%"
	}
	return FormatPercent(SafeDivide(num, den) * 100)
}

// FormatPercent renders an already-scaled percentage value with one decimal.
func FormatPercent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatCurrency renders a BRL amount with the pt-BR convention: period
// grouping, comma decimal. Display boundary only; amounts stay float64 on
// the wire.
func FormatCurrency(v float64) string {
	return ptBR.Sprintf("R$ %.2f", v)
}

// ParseAmount is the total numeric parse used at the coercion boundary:
// missing, null or malformed values become 0 instead of an error, so one
// corrupt field never drops a whole record from an aggregation.
func ParseAmount(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0
		}
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0
		}
		return f
	case bool:
		if n {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// ParseCount is ParseAmount truncated to a non-negative integer, for the
// hand-entered stage counters.
func ParseCount(v any) int64 {
	f := ParseAmount(v)
	if f < 0 {
		return 0
	}
	return int64(f)
}

// clamp0 guards sums against rows that slipped past write validation.
func clamp0(v int64) int64 {
	if v < 0 {
		return 0
	}
	return v
}

func clamp0f(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
