package interfaces

import (
	"time"

	"go-wave-shooter/internal/types"
	"go-wave-shooter/internal/utils"
)

// RayHit — кандидат попадания луча. Entity == types.NoEntity означает статическую геометрию.
type RayHit struct {
	Entity   types.EntityID
	Point    utils.Vec3
	Distance float64
}

// Physics — то, что симуляции нужно от физического движка на тик.
type Physics interface {
	Position(id types.EntityID) (utils.Vec3, bool)
	Velocity(id types.EntityID) (utils.Vec3, bool)
	SetVelocity(id types.EntityID, v utils.Vec3)
	ApplyImpulse(id types.EntityID, impulse utils.Vec3)
	// Raycast возвращает кандидатов в произвольном порядке; упорядочивает вызывающий.
	Raycast(origin, dir utils.Vec3, maxDist float64) []RayHit
}

// PhysicsWorld — полный мир: тела создаются и удаляются игрой, шаг делает часы симуляции.
type PhysicsWorld interface {
	Physics
	AddBody(id types.EntityID, pos utils.Vec3, radius, height, mass float64)
	RemoveBody(id types.EntityID)
	SetPosition(id types.EntityID, pos utils.Vec3)
	Step(dt time.Duration)
	Reset()
}
