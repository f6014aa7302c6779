package dom

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func mustNewWarnings(t *testing.T, policy WarningOverflowPolicy, cap int) *Warnings {
	t.Helper()
	w, err := NewWarnings(policy, cap)
	require.NoError(t, err)
	return w
}

func eofWarn(pos int) Warning {
	return Warning{
		Issue: IssueUnexpectedEOF,
		Pos:   pos,
	}
}

func TestNewWarnings_NegativeCap_ReturnsConfigError(t *testing.T) {
	_, err := NewWarnings(WarnOverflowDrop, -1)
	require.Error(t, err)

	var ce *ConfigError
	require.True(t, errors.As(err, &ce), "expected *ConfigError, got %T (%v)", err, err)
	require.Equal(t, IssueNegativeWarningsCap, ce.Issue)
	require.Contains(t, err.Error(), "Negative Warnings Cap")
}

func TestWarnings_NilIsInert(t *testing.T) {
	var w *Warnings

	w.Add(eofWarn(1))

	require.False(t, w.IsOverflow())
	require.Zero(t, w.DroppedCount())
	require.Zero(t, w.FirstDropPos())
	require.Nil(t, w.List())
	require.Empty(t, w.Serialize())
}

func TestWarnings_Policies(t *testing.T) {
	tests := []struct {
		name         string
		policy       WarningOverflowPolicy
		cap          int
		adds         int
		wantLen      int
		wantOverflow bool
		wantDropped  int
		wantFirstPos int
		wantMarker   bool
	}{
		{name: "norec records nothing", policy: WarnOverflowNoRec, cap: 3, adds: 2},
		{name: "nocap ignores cap", policy: WarnOverflowNoCap, cap: 2, adds: 10, wantLen: 10},
		{
			name: "drop keeps first n", policy: WarnOverflowDrop, cap: 3, adds: 5,
			wantLen: 3, wantOverflow: true, wantFirstPos: 3,
		},
		{
			name: "drop with zero cap", policy: WarnOverflowDrop, cap: 0, adds: 2,
			wantOverflow: true,
		},
		{
			name: "trunc reserves a slot for the marker", policy: WarnOverflowTrunc, cap: 3, adds: 5,
			wantLen: 3, wantOverflow: true, wantDropped: 3, wantFirstPos: 2, wantMarker: true,
		},
		{
			name: "trunc with cap 1 keeps only the marker", policy: WarnOverflowTrunc, cap: 1, adds: 2,
			wantLen: 1, wantOverflow: true, wantDropped: 2, wantMarker: true,
		},
		{
			name: "trunc with zero cap stores nothing", policy: WarnOverflowTrunc, cap: 0, adds: 2,
			wantOverflow: true, wantDropped: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := mustNewWarnings(t, tt.policy, tt.cap)

			for i := range tt.adds {
				w.Add(eofWarn(i))
			}

			require.Len(t, w.List(), tt.wantLen)
			require.Equal(t, tt.wantOverflow, w.IsOverflow())
			require.Equal(t, tt.wantDropped, w.DroppedCount())
			require.Equal(t, tt.wantFirstPos, w.FirstDropPos())

			if tt.wantMarker {
				last := w.List()[len(w.List())-1]
				require.Equal(t, IssueWarningsTruncated, last.Issue)
				require.Equal(t, tt.wantFirstPos, last.Pos)
			}
		})
	}
}

func TestWarnings_TruncOnParse(t *testing.T) {
	w := mustNewWarnings(t, WarnOverflowTrunc, 2)

	// four unmatched closing tags
	Parse("</a></b></c></d>", nil, w)

	require.True(t, w.IsOverflow())
	require.Equal(t, 3, w.DroppedCount())
	require.Len(t, w.List(), 2)
	require.Equal(t, IssueUnmatchedClosingTag, w.List()[0].Issue)
	require.Equal(t, IssueWarningsTruncated, w.List()[1].Issue)
	require.Equal(t, 4, w.List()[1].Pos)
}

func TestParseOverflowPolicy(t *testing.T) {
	for name, want := range map[string]WarningOverflowPolicy{
		"nocap":  WarnOverflowNoCap,
		"NoRec":  WarnOverflowNoRec,
		" drop ": WarnOverflowDrop,
		"TRUNC":  WarnOverflowTrunc,
	} {
		got, err := ParseOverflowPolicy(name)
		require.NoError(t, err, name)
		require.Equal(t, want, got, name)
	}

	_, err := ParseOverflowPolicy("sometimes")
	var ce *ConfigError
	require.ErrorAs(t, err, &ce)
	require.Equal(t, IssueUnknownOverflowPolicy, ce.Issue)
}

func TestIssueString(t *testing.T) {
	require.Equal(t, "Malformed Comment", IssueMalformedComment.String())
	require.Equal(t, "Unknown Issue", Issue(-1).String())

	for i := Issue(0); i < NumIssues; i++ {
		require.NotEqual(t, "", i.String(), "issue %d has no name", int(i))
	}
}
