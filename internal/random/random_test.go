package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_IsDeterministic(t *testing.T) {
	first := New(42)
	second := New(42)

	for range 100 {
		require.Equal(t, first.IntN(1000), second.IntN(1000))
	}
}

func TestNewFromSeed(t *testing.T) {
	t.Run("Keeps an explicit seed", func(t *testing.T) {
		src, seed, err := NewFromSeed(7)

		require.NoError(t, err)
		assert.Equal(t, uint64(7), seed)
		assert.Equal(t, New(7).IntN(1<<30), src.IntN(1<<30))
	})

	t.Run("Generates a seed when zero", func(t *testing.T) {
		src, seed, err := NewFromSeed(0)

		require.NoError(t, err)
		require.NotNil(t, src)
		assert.NotZero(t, seed)
	})
}

func TestSource_IsSatisfiedByRand(t *testing.T) {
	var src Source = New(1)

	for range 100 {
		v := src.IntN(2)
		assert.True(t, v == 0 || v == 1)
	}
}
