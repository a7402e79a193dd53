package applications

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	all := []Status{StatusPending, StatusAccepted, StatusRejected}
	for _, from := range all {
		for _, to := range all {
			want := from == StatusPending && to != StatusPending
			require.Equal(t, want, CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestTerminal(t *testing.T) {
	require.False(t, StatusPending.Terminal())
	require.True(t, StatusAccepted.Terminal())
	require.True(t, StatusRejected.Terminal())
}

func TestParseStatus(t *testing.T) {
	s, ok := ParseStatus(" accepted ")
	require.True(t, ok)
	require.Equal(t, StatusAccepted, s)

	s, ok = ParseStatus("")
	require.True(t, ok)
	require.Equal(t, Status(""), s)

	_, ok = ParseStatus("cancelled")
	require.False(t, ok)
}
