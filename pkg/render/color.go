// pkg/render/color.go
package render

import "image/color"

// Shade умножает яркость цвета на k, альфа не меняется. k > 1 осветляет с насыщением.
func Shade(c color.RGBA, k float64) color.RGBA {
	ch := func(v uint8) uint8 {
		f := float64(v) * k
		if f > 255 {
			return 255
		}
		return uint8(f)
	}
	return color.RGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: c.A}
}
