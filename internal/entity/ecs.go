// internal/entity/ecs.go
package entity

import (
	"time"

	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/interfaces"
	"go-wave-shooter/internal/types"
)

type ECS struct {
	GameTime    time.Duration
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Bodies      map[types.EntityID]*component.Body
	Healths     map[types.EntityID]*component.Health
	Renderables map[types.EntityID]*component.Renderable
	Enemies     map[types.EntityID]*component.Enemy
	Players     map[types.EntityID]*component.Player
	Pickups     map[types.EntityID]*component.Pickup
	Effects     map[types.EntityID]*component.Effect
	Wave        *component.Wave
	GameState   *component.GameState

	damageables map[types.EntityID]interfaces.Damageable
	doomed      []types.EntityID
	doomedSet   map[types.EntityID]struct{}
}

func NewECS() *ECS {
	ecs := &ECS{
		NextID: 1,
		GameState: &component.GameState{
			Phase: component.PhaseMenu,
		},
	}
	ecs.clearStores()
	return ecs
}

func (ecs *ECS) clearStores() {
	ecs.Positions = make(map[types.EntityID]*component.Position)
	ecs.Bodies = make(map[types.EntityID]*component.Body)
	ecs.Healths = make(map[types.EntityID]*component.Health)
	ecs.Renderables = make(map[types.EntityID]*component.Renderable)
	ecs.Enemies = make(map[types.EntityID]*component.Enemy)
	ecs.Players = make(map[types.EntityID]*component.Player)
	ecs.Pickups = make(map[types.EntityID]*component.Pickup)
	ecs.Effects = make(map[types.EntityID]*component.Effect)
	ecs.damageables = make(map[types.EntityID]interfaces.Damageable)
	ecs.doomed = nil
	ecs.doomedSet = make(map[types.EntityID]struct{})
	ecs.Wave = nil
}

// Reset очищает все сущности перед новым матчем. Счётчик ID не сбрасывается,
// чтобы ссылки из прошлого матча не совпали с новыми сущностями.
func (ecs *ECS) Reset() {
	ecs.GameTime = 0
	ecs.clearStores()
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RegisterDamageable связывает сущность с получателем урона.
func (ecs *ECS) RegisterDamageable(id types.EntityID, d interfaces.Damageable) {
	ecs.damageables[id] = d
}

// Damageable ищет получателя урона по сущности.
func (ecs *ECS) Damageable(id types.EntityID) (interfaces.Damageable, bool) {
	d, ok := ecs.damageables[id]
	return d, ok
}

// QueueDestroy откладывает удаление сущности до конца тика. Повторная постановка игнорируется.
func (ecs *ECS) QueueDestroy(id types.EntityID) bool {
	if _, ok := ecs.doomedSet[id]; ok {
		return false
	}
	ecs.doomedSet[id] = struct{}{}
	ecs.doomed = append(ecs.doomed, id)
	return true
}

// DrainDestroyed возвращает очередь удаления в порядке постановки и очищает её.
func (ecs *ECS) DrainDestroyed() []types.EntityID {
	out := ecs.doomed
	ecs.doomed = nil
	return out
}

// Remove удаляет все компоненты сущности.
func (ecs *ECS) Remove(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Bodies, id)
	delete(ecs.Healths, id)
	delete(ecs.Renderables, id)
	delete(ecs.Enemies, id)
	delete(ecs.Players, id)
	delete(ecs.Pickups, id)
	delete(ecs.Effects, id)
	delete(ecs.damageables, id)
	delete(ecs.doomedSet, id)
}
