package division

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"green", "white"} {
		got, err := Parse(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, got.String())
		assert.True(t, got.Valid())
	}

	for _, raw := range []string{"", "Green", " white", "blue", "green "} {
		_, err := Parse(raw)
		assert.Error(t, err, "expected %q to be rejected", raw)
	}
}

func TestAll_Order(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []Division{Green, White}, All())
}
