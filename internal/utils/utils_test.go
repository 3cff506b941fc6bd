package utils

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToRoman(t *testing.T) {
	cases := map[int]string{0: "", -3: "", 1: "I", 4: "IV", 9: "IX", 10: "X", 14: "XIV", 40: "XL", 1994: "MCMXCIV"}
	for in, want := range cases {
		assert.Equal(t, want, ToRoman(in), "ToRoman(%d)", in)
	}
}

func TestRotateYMatchesForward(t *testing.T) {
	for _, yaw := range []float64{0, 0.3, math.Pi / 2, -2.1, math.Pi} {
		rotated := V3(0, 0, -1).RotateY(yaw)
		forward := ForwardFromAngles(yaw, 0)
		assert.InDelta(t, forward.X, rotated.X, 1e-9)
		assert.InDelta(t, forward.Z, rotated.Z, 1e-9)
	}
	right := V3(1, 0, 0).RotateY(math.Pi / 2)
	assert.InDelta(t, 0, right.X, 1e-9)
	assert.InDelta(t, -1, right.Z, 1e-9)
}

func TestVectorBasics(t *testing.T) {
	v := V3(3, 12, 4)
	assert.Equal(t, 13.0, v.Len())
	assert.Equal(t, 5.0, v.Horizontal().Len())
	assert.InDelta(t, 1, v.Normalize().Len(), 1e-12)
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
	assert.Equal(t, 5.0, Vec3{}.HorizontalDistanceTo(V3(3, 100, 4)))
	assert.Equal(t, V3(1.5, 6, 2), Vec3{}.Lerp(v, 0.5))
}

func TestForwardFromAnglesIsUnit(t *testing.T) {
	for _, pitch := range []float64{-1.4, -0.5, 0, 0.7, 1.4} {
		assert.InDelta(t, 1, ForwardFromAngles(0.8, pitch).Len(), 1e-12)
	}
	assert.InDelta(t, 1, ForwardFromAngles(0, math.Pi/2).Y, 1e-12)
}

func TestSmoothFactor(t *testing.T) {
	assert.Equal(t, 1.0, SmoothFactor(0, 0.016))
	assert.Zero(t, SmoothFactor(10, 0))
	// Два полушага дают то же, что один шаг.
	half := SmoothFactor(12, 0.05)
	full := SmoothFactor(12, 0.1)
	assert.InDelta(t, full, 1-(1-half)*(1-half), 1e-12)
}

func TestAngles(t *testing.T) {
	assert.InDelta(t, -math.Pi/2, NormalizeAngle(3*math.Pi/2), 1e-12)
	assert.InDelta(t, math.Pi-0.05, LerpAngle(math.Pi-0.1, -math.Pi+0.1, 0.25), 1e-12)
	assert.Equal(t, 5, ClampInt(9, 0, 5))
	assert.Equal(t, -1.0, Clamp(-3, -1, 1))
}

func TestPRNG(t *testing.T) {
	a, b := NewPRNGService(11), NewPRNGService(11)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}

	r := NewPRNGService(3)
	assert.Zero(t, r.Intn(0))
	assert.False(t, r.Chance(0))
	assert.Equal(t, "", r.Choose(nil))
	assert.Equal(t, time.Second, r.Duration(time.Second, time.Second))
	for i := 0; i < 200; i++ {
		j := r.Jitter(8)
		assert.GreaterOrEqual(t, j, -4.0)
		assert.Less(t, j, 4.0)
		d := r.Duration(500*time.Millisecond, 2500*time.Millisecond)
		assert.GreaterOrEqual(t, d, 500*time.Millisecond)
		assert.LessOrEqual(t, d, 2500*time.Millisecond)
		assert.Contains(t, []string{"a", "b"}, r.Choose([]string{"a", "b"}))
	}
}
