package defs

import "go-wave-shooter/internal/utils"

// SpawnMode — способ раздачи точек появления врагов.
type SpawnMode string

const (
	SpawnTable SpawnMode = "table"
	SpawnRing  SpawnMode = "ring"
)

// DefaultWaveCurve — количество врагов в волне как выражение от номера волны и базы.
const DefaultWaveCurve = "base + floor((wave - 1) / 1.5)"

// SpawnPoints — фиксированная таблица точек появления по краям арены.
// Враг i волны получает точку i mod len(SpawnPoints).
var SpawnPoints = []utils.Vec3{
	{X: 0, Z: 40},
	{X: 0, Z: -40},
	{X: 40, Z: 0},
	{X: -40, Z: 0},
	{X: 35, Z: 35},
	{X: -35, Z: -35},
	{X: 35, Z: -35},
	{X: -35, Z: 35},
}
