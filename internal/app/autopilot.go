package app

import (
	"math"

	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/utils"
)

// autopilotAimTolerance — угол, в пределах которого бот жмёт на спуск.
const autopilotAimTolerance = 0.05

// Autopilot — простой бот для просмотрщика: доворачивает на ближайшего живого
// врага, стреляет, когда навёлся, и перезаряжается на пустом магазине.
// sensitivity должна совпадать с Player.LookSensitivity, иначе бот промахивается.
func Autopilot(s Snapshot, sensitivity float64) component.Input {
	var in component.Input
	if s.Phase != component.PhasePlaying || sensitivity <= 0 {
		return in
	}
	if s.Ammo == 0 && !s.Reloading {
		in.Reload = true
		return in
	}

	target, ok := nearestEnemy(s)
	if !ok {
		return in
	}
	d := target.Sub(s.PlayerPosition)
	want := math.Atan2(-d.X, -d.Z)
	delta := utils.NormalizeAngle(want - s.PlayerYaw)

	in.LookDX = -delta / sensitivity
	in.Fire = math.Abs(delta) < autopilotAimTolerance
	return in
}

func nearestEnemy(s Snapshot) (utils.Vec3, bool) {
	best, found := math.Inf(1), false
	var pos utils.Vec3
	for _, e := range s.Enemies {
		if e.Health <= 0 {
			continue
		}
		if d := s.PlayerPosition.HorizontalDistanceTo(e.Position); d < best {
			best, pos, found = d, e.Position, true
		}
	}
	return pos, found
}
