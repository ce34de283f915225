// internal/mode/mode_test.go
package mode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStringParseRoundTrip(t *testing.T) {
	for _, m := range All() {
		got, err := Parse(m.String())
		require.NoError(t, err)
		require.Equal(t, m, got)
	}
}

func TestParseUnknown(t *testing.T) {
	got, err := Parse("TUMBLING_GENTLY")
	require.Error(t, err)
	require.Equal(t, Default, got)
}

func TestDefaultIsDetumbling(t *testing.T) {
	require.Equal(t, Detumbling, Default)
}
