package brief

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReport(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    float64
	}{
		{"plain json", `{"completeness_score": 7}`, 7},
		{"json fence", "```json\n{\"completeness_score\": 8}\n```", 8},
		{"fence with preamble", "Here is the review:\n```json\n{\"completeness_score\": 5}\n```\nThanks", 5},
		{"bare fence", "```\n{\"completeness_score\": 3}\n```", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := ParseReport(tt.content)
			require.NoError(t, err)
			assert.Equal(t, tt.want, report["completeness_score"])
		})
	}
}

func TestParseReport_Invalid(t *testing.T) {
	for _, content := range []string{"not json at all", "[1,2,3]", "null", "```json\n{broken\n```"} {
		_, err := ParseReport(content)
		assert.Error(t, err, content)
	}
}
