// internal/utils/vector.go
package utils

import "math"

// Vec3 — трёхмерный вектор мира. Y направлен вверх.
type Vec3 struct {
	X, Y, Z float64
}

// V3 — короткий конструктор.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Len возвращает длину вектора.
func (v Vec3) Len() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize возвращает единичный вектор; нулевой вектор остаётся нулевым.
func (v Vec3) Normalize() Vec3 {
	l := v.Len()
	if l < 1e-9 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

// Horizontal обнуляет вертикальную составляющую.
func (v Vec3) Horizontal() Vec3 { return Vec3{X: v.X, Z: v.Z} }

// DistanceTo — расстояние между точками.
func (v Vec3) DistanceTo(o Vec3) float64 { return o.Sub(v).Len() }

// HorizontalDistanceTo — расстояние в плоскости XZ.
func (v Vec3) HorizontalDistanceTo(o Vec3) float64 { return o.Sub(v).Horizontal().Len() }

// RotateY поворачивает вектор вокруг вертикальной оси на угол yaw (радианы).
// При yaw = 0 "вперёд" — это -Z.
func (v Vec3) RotateY(yaw float64) Vec3 {
	s, c := math.Sincos(yaw)
	return Vec3{
		X: v.X*c + v.Z*s,
		Y: v.Y,
		Z: -v.X*s + v.Z*c,
	}
}

// Lerp интерполирует покомпонентно.
func (v Vec3) Lerp(to Vec3, t float64) Vec3 {
	return Vec3{
		X: Lerp(v.X, to.X, t),
		Y: Lerp(v.Y, to.Y, t),
		Z: Lerp(v.Z, to.Z, t),
	}
}

// ForwardFromAngles — направление взгляда по yaw/pitch.
func ForwardFromAngles(yaw, pitch float64) Vec3 {
	sy, cy := math.Sincos(yaw)
	sp, cp := math.Sincos(pitch)
	return Vec3{X: -sy * cp, Y: sp, Z: -cy * cp}
}
