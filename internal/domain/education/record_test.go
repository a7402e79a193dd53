package education

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestKeyRoundTrip(t *testing.T) {
	var nilRecord *Record
	require.Equal(t, "", nilRecord.Key())

	r := &Record{ID: 42}
	id, err := ParseKey(r.Key())
	require.NoError(t, err)
	require.Equal(t, uint(42), id)

	id, err = ParseKey("")
	require.NoError(t, err)
	require.Zero(t, id)

	_, err = ParseKey("abc")
	require.Error(t, err)
}

func TestOngoing(t *testing.T) {
	end := time.Now()
	require.True(t, Record{}.Ongoing())
	require.False(t, Record{EndDate: &end}.Ongoing())
}
