package verifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogPartitions(t *testing.T) {
	for i := 1; i <= numVerifiers; i++ {
		v, err := Get(i)
		require.NoErrorf(t, err, "Get(%d)", i)
		assert.Truef(t, v.Partitions(), "verifier %d (%s) does not partition the code universe", i, v.Description)
	}
}

func TestCount(t *testing.T) {
	assert.Equal(t, 48, Count())
}

func TestGetOutOfRange(t *testing.T) {
	_, err := Get(0)
	assert.ErrorIs(t, err, ErrVerifierRange)

	_, err = Get(49)
	assert.ErrorIs(t, err, ErrVerifierRange)
}

func TestChosenVerifierString(t *testing.T) {
	assert.Equal(t, "A", ChosenVerifier(0).String())
	assert.Equal(t, "B", ChosenVerifier(1).String())
	assert.Equal(t, "F", ChosenVerifier(5).String())
}

func TestCatalogIsMemoized(t *testing.T) {
	a := catalog()
	b := catalog()
	assert.Equal(t, a, b)
}
