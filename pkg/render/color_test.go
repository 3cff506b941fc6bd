package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShade(t *testing.T) {
	c := color.RGBA{100, 200, 1, 200}
	assert.Equal(t, color.RGBA{50, 100, 0, 200}, Shade(c, 0.5))
	assert.Equal(t, color.RGBA{150, 255, 1, 200}, Shade(c, 1.5))
}
