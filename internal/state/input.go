// internal/state/input.go
package state

import (
	"go-wave-shooter/internal/component"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// readInput снимает состояние клавиатуры и мыши за кадр. Перезарядка и смена
// оружия срабатывают по нажатию, остальное по удержанию.
func readInput() component.Input {
	delta := rl.GetMouseDelta()
	return component.Input{
		Forward:  rl.IsKeyDown(rl.KeyW),
		Backward: rl.IsKeyDown(rl.KeyS),
		Left:     rl.IsKeyDown(rl.KeyA),
		Right:    rl.IsKeyDown(rl.KeyD),
		Jump:     rl.IsKeyDown(rl.KeySpace),
		Sprint:   rl.IsKeyDown(rl.KeyLeftShift),
		Fire:     rl.IsMouseButtonDown(rl.MouseLeftButton),
		Aim:      rl.IsMouseButtonDown(rl.MouseRightButton),
		Reload:   rl.IsKeyPressed(rl.KeyR),
		Switch:   rl.IsKeyPressed(rl.KeyQ),
		LookDX:   float64(delta.X),
		LookDY:   float64(delta.Y),
	}
}
