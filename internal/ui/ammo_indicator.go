package ui

import (
	"fmt"

	"go-wave-shooter/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	roundWidth  = 6
	roundHeight = 18
	roundGap    = 3
	roundsRow   = 15
	borderWidth = 1
)

// AmmoIndicator отображает патроны в магазине, название оружия и состояние перезарядки.
type AmmoIndicator struct {
	X, Y float32 // правый нижний угол
}

func NewAmmoIndicator(x, y float32) *AmmoIndicator {
	return &AmmoIndicator{X: x, Y: y}
}

// Draw рисует патроны справа налево: заполненные — оставшиеся, контуры — израсходованные.
func (i *AmmoIndicator) Draw(weapon string, ammo, maxAmmo int, reloading, switching bool, font rl.Font) {
	rows := (maxAmmo + roundsRow - 1) / roundsRow
	for j := 0; j < maxAmmo; j++ {
		row := j / roundsRow
		col := j % roundsRow
		x := i.X - float32(col+1)*(roundWidth+roundGap)
		y := i.Y - float32(rows-row)*(roundHeight+roundGap)

		rl.DrawRectangleLinesEx(rl.NewRectangle(x, y, roundWidth, roundHeight), borderWidth, rl.White)
		if j < ammo {
			rl.DrawRectangleRec(rl.NewRectangle(x+borderWidth, y+borderWidth, roundWidth-borderWidth*2, roundHeight-borderWidth*2), config.MuzzleColor)
		}
	}

	label := fmt.Sprintf("%s  %d/%d", weapon, ammo, maxAmmo)
	switch {
	case reloading:
		label = weapon + "  RELOADING"
	case switching:
		label = "SWITCHING"
	case ammo == 0:
		label = weapon + "  EMPTY [R]"
	}
	const size = 22
	width := rl.MeasureTextEx(font, label, size, 1).X
	top := i.Y - float32(rows)*(roundHeight+roundGap)
	rl.DrawTextEx(font, label, rl.NewVector2(i.X-width, top-size-6), size, 1, config.TextDarkColor)
}
