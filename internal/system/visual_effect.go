// internal/system/visual_effect.go
package system

import (
	"time"

	"go-wave-shooter/internal/entity"
)

// VisualEffectSystem удаляет истёкшие визуальные эффекты (искры, вспышки выстрела).
type VisualEffectSystem struct {
	ecs *entity.ECS
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs}
}

// Update удаляет эффекты, срок которых истёк к моменту now.
func (s *VisualEffectSystem) Update(now time.Duration) {
	for id, effect := range s.ecs.Effects {
		if now >= effect.ExpiresAt {
			s.ecs.Remove(id)
		}
	}
}
