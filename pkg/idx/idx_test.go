package idx_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/veerabala/linkbio/pkg/idx"
)

func TestNewProducesValidULID(t *testing.T) {
	id := idx.New()
	require.False(t, id.IsZero())

	parsed, err := idx.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestNewIsMonotonicWithinSameMillisecond(t *testing.T) {
	at := time.Now().UTC()

	a := idx.NewAt(at)
	b := idx.NewAt(at)
	require.Less(t, a.String(), b.String())
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "   ", "not-a-ulid", "0000"} {
		_, err := idx.Parse(in)
		require.ErrorIs(t, err, idx.ErrInvalid)
	}
}

func TestTimeRoundTrip(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	id := idx.NewAt(at)
	require.WithinDuration(t, at, id.Time(), time.Millisecond)

	require.True(t, idx.Zero.Time().IsZero())
}
