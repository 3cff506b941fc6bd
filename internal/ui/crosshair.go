package ui

import (
	"go-wave-shooter/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Crosshair — перекрестие в центре экрана. При прицеливании сходится.
type Crosshair struct {
	X, Y float32
	Size float32
}

func NewCrosshair(x, y, size float32) *Crosshair {
	return &Crosshair{X: x, Y: y, Size: size}
}

func (c *Crosshair) Draw(aiming, reloading bool) {
	gap := c.Size * 0.6
	if aiming {
		gap = c.Size * 0.2
	}
	color := rl.White
	if reloading {
		color = rl.Fade(rl.White, 0.35)
	}
	thick := float32(2)

	rl.DrawLineEx(rl.NewVector2(c.X-gap-c.Size, c.Y), rl.NewVector2(c.X-gap, c.Y), thick, color)
	rl.DrawLineEx(rl.NewVector2(c.X+gap, c.Y), rl.NewVector2(c.X+gap+c.Size, c.Y), thick, color)
	rl.DrawLineEx(rl.NewVector2(c.X, c.Y-gap-c.Size), rl.NewVector2(c.X, c.Y-gap), thick, color)
	rl.DrawLineEx(rl.NewVector2(c.X, c.Y+gap), rl.NewVector2(c.X, c.Y+gap+c.Size), thick, color)
	rl.DrawCircleV(rl.NewVector2(c.X, c.Y), 1.5, config.HealthLowColor)
}
