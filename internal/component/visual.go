// internal/component/visual.go
package component

import (
	"time"

	"go-wave-shooter/internal/utils"
)

// EffectKind — вид короткоживущего визуального эффекта.
type EffectKind int

const (
	EffectHitSpark EffectKind = iota
	EffectSurfaceSpark
	EffectMuzzleFlash
)

// Effect — эффект с фиксированным временем жизни; удаляется системой эффектов.
type Effect struct {
	Kind      EffectKind
	Position  utils.Vec3
	ExpiresAt time.Duration
}
