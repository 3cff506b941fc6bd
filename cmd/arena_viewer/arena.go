// cmd/arena_viewer/arena.go
package main

import (
	"image/color"

	"go-wave-shooter/internal/app"
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/defs"
	"go-wave-shooter/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ArenaRenderer рисует арену сверху: ось X направо, ось Z вниз.
type ArenaRenderer struct {
	level    defs.Level
	scale    float64
	originX  float64
	originY  float64
	mapImage *ebiten.Image
}

func NewArenaRenderer(level defs.Level, screenWidth, screenHeight int, scale float64) *ArenaRenderer {
	r := &ArenaRenderer{
		level:    level,
		scale:    scale,
		originX:  float64(screenWidth) / 2,
		originY:  float64(screenHeight) / 2,
		mapImage: ebiten.NewImage(screenWidth, screenHeight),
	}
	// Уровень статичен: рисуем один раз
	r.renderMapImage()
	return r
}

func (r *ArenaRenderer) toScreen(v utils.Vec3) (float32, float32) {
	return float32(r.originX + v.X*r.scale), float32(r.originY + v.Z*r.scale)
}

func (r *ArenaRenderer) renderMapImage() {
	r.mapImage.Clear()
	half := r.level.FloorHalf()
	x, y := r.toScreen(utils.V3(-half, 0, -half))
	size := float32(r.level.FloorSize * r.scale)
	vector.DrawFilledRect(r.mapImage, x, y, size, size, config.GroundColor, false)

	for _, b := range r.level.Boxes {
		c, ok := config.BoxColor(b.Kind)
		if !ok {
			c = color.RGBA{0, 0, 0, 60}
		}
		lo := b.Min()
		bx, by := r.toScreen(lo)
		w, h := float32(b.Size.X*r.scale), float32(b.Size.Z*r.scale)
		vector.DrawFilledRect(r.mapImage, bx, by, w, h, c, false)
		vector.StrokeRect(r.mapImage, bx, by, w, h, 1, darken(c), false)
	}

	for _, t := range r.level.Trees {
		tx, ty := r.toScreen(t)
		vector.DrawFilledCircle(r.mapImage, tx, ty, float32(2*r.scale), config.TreeColor, true)
	}
}

func (r *ArenaRenderer) Draw(screen *ebiten.Image, s app.Snapshot, engageRange float64) {
	screen.DrawImage(r.mapImage, nil)

	for _, p := range s.Pickups {
		px, py := r.toScreen(p.Position)
		half := float32(p.Radius*r.scale) + 1
		vector.DrawFilledRect(screen, px-half, py-half, 2*half, 2*half, p.Color, false)
	}

	for _, e := range s.Enemies {
		ex, ey := r.toScreen(e.Position)
		c := config.EnemyTint(e.Flashing)
		if e.Grace {
			c.A = 128
		}
		vector.DrawFilledCircle(screen, ex, ey, float32(e.Radius*r.scale)+2, c, true)
		r.drawFacing(screen, e.Position, e.Yaw, 2, c)
	}

	px, py := r.toScreen(s.PlayerPosition)
	if engageRange > 0 {
		vector.StrokeCircle(screen, px, py, float32(engageRange*r.scale), 1, color.RGBA{220, 38, 38, 90}, true)
	}
	vector.DrawFilledCircle(screen, px, py, float32(s.PlayerRadius*r.scale)+2, config.PlayerColor, true)
	r.drawFacing(screen, s.PlayerPosition, s.PlayerYaw, 4, config.PlayerColor)

	for _, e := range s.Effects {
		fx, fy := r.toScreen(e.Position)
		vector.DrawFilledCircle(screen, fx, fy, 2, config.EffectColor(e.Kind), true)
	}
}

// drawFacing — отрезок в направлении взгляда длиной length метров.
func (r *ArenaRenderer) drawFacing(screen *ebiten.Image, from utils.Vec3, yaw, length float64, c color.RGBA) {
	to := from.Add(utils.ForwardFromAngles(yaw, 0).Scale(length))
	x1, y1 := r.toScreen(from)
	x2, y2 := r.toScreen(to)
	vector.StrokeLine(screen, x1, y1, x2, y2, 2, c, true)
}

func darken(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
}
