package system

import (
	"testing"

	"go-wave-shooter/internal/defs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaveCurve_DefaultMatchesClassicProgression(t *testing.T) {
	c, err := NewWaveCurve(defs.DefaultWaveCurve, 5)
	require.NoError(t, err)
	require.NoError(t, c.Validate(10))

	want := []int{5, 5, 6, 7, 7, 8, 9, 9, 10, 11}
	for i, w := range want {
		assert.Equal(t, w, c.Count(i+1), "wave %d", i+1)
	}
}

func TestWaveCurve_CountIsNonDecreasing(t *testing.T) {
	c, err := NewWaveCurve("base + (wave % 3 == 0 ? -2 : wave)", 5)
	require.NoError(t, err)
	assert.Error(t, c.Validate(6))

	prev := 0
	for n := 1; n <= 20; n++ {
		got := c.Count(n)
		assert.GreaterOrEqual(t, got, prev, "wave %d", n)
		prev = got
	}
}

func TestWaveCurve_CompileErrors(t *testing.T) {
	_, err := NewWaveCurve("base +", 5)
	assert.Error(t, err)

	_, err = NewWaveCurve("unknownVar * 2", 5)
	assert.Error(t, err)

	_, err = NewWaveCurve(`"five"`, 5)
	assert.Error(t, err)
}

func TestWaveCurve_NegativeIsRejected(t *testing.T) {
	c, err := NewWaveCurve("wave - 3", 5)
	require.NoError(t, err)
	assert.ErrorContains(t, c.Validate(5), "negative")
}
