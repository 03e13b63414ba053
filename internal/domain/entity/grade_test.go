package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGradeBand_WireRoundTrip(t *testing.T) {
	for _, g := range GradePriority {
		parsed, err := ParseGradeBand(g.String())
		require.NoError(t, err)
		require.Equal(t, g, parsed)
	}
}

func TestParseGradeBand_TrimsWhitespace(t *testing.T) {
	g, err := ParseGradeBand("  Accepted\r")
	require.NoError(t, err)
	require.Equal(t, GradeAccepted, g)
}

func TestParseGradeBand_Unknown(t *testing.T) {
	for _, text := range []string{"", "qualified", "Rejected", "Qualified!"} {
		_, err := ParseGradeBand(text)
		require.ErrorIs(t, err, ErrUnknownGrade, text)
	}
}
