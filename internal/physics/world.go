// internal/physics/world.go
package physics

import (
	"math"
	"time"

	"go-wave-shooter/internal/defs"
	"go-wave-shooter/internal/interfaces"
	"go-wave-shooter/internal/types"
	"go-wave-shooter/internal/utils"
)

var _ interfaces.PhysicsWorld = (*World)(nil)

// body — вертикальный цилиндр, аппроксимированный AABB. pos — точка у ног.
type body struct {
	pos, vel utils.Vec3
	radius   float64
	height   float64
	mass     float64
}

func (b *body) min() utils.Vec3 { return utils.V3(b.pos.X-b.radius, b.pos.Y, b.pos.Z-b.radius) }
func (b *body) max() utils.Vec3 {
	return utils.V3(b.pos.X+b.radius, b.pos.Y+b.height, b.pos.Z+b.radius)
}

// World — простой кинематический мир: гравитация, квадратный пол, статические коробки уровня.
// Достаточен для игры и детерминированных тестов; внешний движок может заменить его через
// interfaces.PhysicsWorld.
type World struct {
	level   defs.Level
	gravity float64
	damping float64
	bodies  map[types.EntityID]*body
	order   []types.EntityID
}

// NewWorld создаёт мир для уровня.
func NewWorld(level defs.Level, gravity, damping float64) *World {
	return &World{
		level:   level,
		gravity: gravity,
		damping: damping,
		bodies:  make(map[types.EntityID]*body),
	}
}

func (w *World) AddBody(id types.EntityID, pos utils.Vec3, radius, height, mass float64) {
	if mass <= 0 {
		mass = 1
	}
	if _, exists := w.bodies[id]; !exists {
		w.order = append(w.order, id)
	}
	w.bodies[id] = &body{pos: pos, radius: radius, height: height, mass: mass}
}

func (w *World) RemoveBody(id types.EntityID) {
	if _, exists := w.bodies[id]; !exists {
		return
	}
	delete(w.bodies, id)
	for i, other := range w.order {
		if other == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

func (w *World) Reset() {
	w.bodies = make(map[types.EntityID]*body)
	w.order = nil
}

func (w *World) Position(id types.EntityID) (utils.Vec3, bool) {
	b, ok := w.bodies[id]
	if !ok {
		return utils.Vec3{}, false
	}
	return b.pos, true
}

func (w *World) Velocity(id types.EntityID) (utils.Vec3, bool) {
	b, ok := w.bodies[id]
	if !ok {
		return utils.Vec3{}, false
	}
	return b.vel, true
}

func (w *World) SetVelocity(id types.EntityID, v utils.Vec3) {
	if b, ok := w.bodies[id]; ok {
		b.vel = v
	}
}

func (w *World) SetPosition(id types.EntityID, pos utils.Vec3) {
	if b, ok := w.bodies[id]; ok {
		b.pos = pos
	}
}

// ApplyImpulse меняет скорость на impulse / mass.
func (w *World) ApplyImpulse(id types.EntityID, impulse utils.Vec3) {
	if b, ok := w.bodies[id]; ok {
		b.vel = b.vel.Add(impulse.Scale(1 / b.mass))
	}
}

// Step интегрирует все тела на dt.
func (w *World) Step(dt time.Duration) {
	sec := dt.Seconds()
	if sec <= 0 {
		return
	}
	half := w.level.FloorHalf()
	damp := 1 / (1 + sec*w.damping)

	for _, id := range w.order {
		b := w.bodies[id]
		b.vel.Y += w.gravity * sec
		b.vel.X *= damp
		b.vel.Z *= damp

		prevY := b.pos.Y
		b.pos = b.pos.Add(b.vel.Scale(sec))

		// Пол держит только то, что было над ним; упавшее за край продолжает падать.
		onFloor := math.Abs(b.pos.X) <= half && math.Abs(b.pos.Z) <= half
		if onFloor && prevY >= -0.05 && b.pos.Y < 0 {
			b.pos.Y = 0
			if b.vel.Y < 0 {
				b.vel.Y = 0
			}
		}

		w.resolveBoxes(b)
	}
}

// resolveBoxes выталкивает тело из коробок по оси наименьшего проникновения.
func (w *World) resolveBoxes(b *body) {
	for _, box := range w.level.Boxes {
		bmin, bmax := b.min(), b.max()
		omin, omax := box.Min(), box.Max()
		if bmax.X <= omin.X || bmin.X >= omax.X ||
			bmax.Y <= omin.Y || bmin.Y >= omax.Y ||
			bmax.Z <= omin.Z || bmin.Z >= omax.Z {
			continue
		}

		px := math.Min(bmax.X-omin.X, omax.X-bmin.X)
		py := math.Min(bmax.Y-omin.Y, omax.Y-bmin.Y)
		pz := math.Min(bmax.Z-omin.Z, omax.Z-bmin.Z)

		switch {
		case py <= px && py <= pz:
			if b.pos.Y+b.height/2 >= box.Center.Y {
				b.pos.Y += omax.Y - bmin.Y
				if b.vel.Y < 0 {
					b.vel.Y = 0
				}
			} else {
				b.pos.Y -= bmax.Y - omin.Y
				if b.vel.Y > 0 {
					b.vel.Y = 0
				}
			}
		case px <= pz:
			if b.pos.X < box.Center.X {
				b.pos.X -= bmax.X - omin.X
			} else {
				b.pos.X += omax.X - bmin.X
			}
			b.vel.X = 0
		default:
			if b.pos.Z < box.Center.Z {
				b.pos.Z -= bmax.Z - omin.Z
			} else {
				b.pos.Z += omax.Z - bmin.Z
			}
			b.vel.Z = 0
		}
	}
}

// Raycast возвращает все пересечения луча с полом, коробками и телами на отрезке [0, maxDist].
func (w *World) Raycast(origin, dir utils.Vec3, maxDist float64) []interfaces.RayHit {
	dir = dir.Normalize()
	if dir == (utils.Vec3{}) || maxDist <= 0 {
		return nil
	}
	var hits []interfaces.RayHit
	add := func(id types.EntityID, t float64) {
		hits = append(hits, interfaces.RayHit{Entity: id, Point: origin.Add(dir.Scale(t)), Distance: t})
	}

	if dir.Y < 0 && origin.Y >= 0 {
		t := -origin.Y / dir.Y
		p := origin.Add(dir.Scale(t))
		half := w.level.FloorHalf()
		if t <= maxDist && math.Abs(p.X) <= half && math.Abs(p.Z) <= half {
			add(types.NoEntity, t)
		}
	}

	for _, box := range w.level.Boxes {
		if t, ok := slab(origin, dir, box.Min(), box.Max(), maxDist); ok {
			add(types.NoEntity, t)
		}
	}

	for _, id := range w.order {
		b := w.bodies[id]
		if t, ok := slab(origin, dir, b.min(), b.max(), maxDist); ok {
			add(id, t)
		}
	}
	return hits
}

// slab — пересечение луча с AABB. Для луча, начинающегося внутри, расстояние 0.
func slab(origin, dir, min, max utils.Vec3, maxDist float64) (float64, bool) {
	tmin, tmax := 0.0, maxDist
	o := [3]float64{origin.X, origin.Y, origin.Z}
	d := [3]float64{dir.X, dir.Y, dir.Z}
	lo := [3]float64{min.X, min.Y, min.Z}
	hi := [3]float64{max.X, max.Y, max.Z}

	for i := 0; i < 3; i++ {
		if math.Abs(d[i]) < 1e-12 {
			if o[i] < lo[i] || o[i] > hi[i] {
				return 0, false
			}
			continue
		}
		t1 := (lo[i] - o[i]) / d[i]
		t2 := (hi[i] - o[i]) / d[i]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}
