package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFrame(t *testing.T) {
	tests := []struct {
		line  string
		kind  FrameKind
		grade GradeBand
	}{
		{"RESULT:Accepted", FrameResult, GradeAccepted},
		{"  RESULT:Qualified\r", FrameResult, GradeQualified},
		{"RESULT: Disqualified", FrameResult, GradeDisqualified},
		{"RESULT:", FrameIgnorable, ""},
		{"RESULT:Maybe", FrameIgnorable, ""},
		{"boot ok", FrameIgnorable, ""},
		{"DONE", FrameIgnorable, ""},
		{"result:Accepted", FrameIgnorable, ""},
		{"", FrameIgnorable, ""},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			f := ParseFrame(tt.line)
			require.Equal(t, tt.kind, f.Kind)
			require.Equal(t, tt.grade, f.Grade)
		})
	}
}

func TestResultLine_RoundTrip(t *testing.T) {
	for _, g := range GradePriority {
		line := FormatResultLine(g)
		require.Equal(t, "RESULT:"+string(g), line)

		f := ParseFrame(line + "\n")
		require.Equal(t, FrameResult, f.Kind)
		require.Equal(t, g, f.Grade)
	}
}
