package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuartile_NumericThresholds(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"top tier", 4.5, "Q1"},
		{"q1 lower bound inclusive", 4.0, "Q1"},
		{"mid score", 3.5, "Q2"},
		{"q2 lower bound inclusive", 2.0, "Q2"},
		{"q3 range", 1.5, "Q3"},
		{"q3 lower bound inclusive", 1.0, "Q3"},
		{"below all thresholds", 0.5, "Q4"},
		{"zero", 0.0, "Q4"},
		{"integer score", 3, "Q2"},
		{"int64 score", int64(5), "Q1"},
		{"numeric string", "2.5", "Q2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Quartile(tt.value))
		})
	}
}

func TestQuartile_NonNumericPassthrough(t *testing.T) {
	assert.Equal(t, "Q3", Quartile("Q3"))
	assert.Equal(t, "Journal pas indexé Scopus", Quartile("Journal pas indexé Scopus"))
}

func TestQuartile_Deterministic(t *testing.T) {
	for i := 0; i < 10; i++ {
		assert.Equal(t, "Q2", Quartile(3.0))
	}
}
