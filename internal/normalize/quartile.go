package normalize

import (
	"fmt"
	"strconv"
	"strings"
)

// CiteScore thresholds. Lower bounds are inclusive.
const (
	q1Threshold = 4.0
	q2Threshold = 2.0
	q3Threshold = 1.0
)

// Quartile maps a raw quartile value to a canonical label. Numeric values
// classify by CiteScore; anything else is assumed to already be a label and
// passes through unchanged.
func Quartile(v any) string {
	switch score := v.(type) {
	case float64:
		return fromScore(score)
	case float32:
		return fromScore(float64(score))
	case int:
		return fromScore(float64(score))
	case int64:
		return fromScore(float64(score))
	default:
		s := strings.TrimSpace(fmt.Sprint(v))
		if score, err := strconv.ParseFloat(s, 64); err == nil {
			return fromScore(score)
		}
		return s
	}
}

func fromScore(score float64) string {
	switch {
	case score >= q1Threshold:
		return "Q1"
	case score >= q2Threshold:
		return "Q2"
	case score >= q3Threshold:
		return "Q3"
	default:
		return "Q4"
	}
}
