// internal/fx/fx.go
package fx

import (
	"go-wave-shooter/internal/types"
	"go-wave-shooter/internal/utils"
)

// Kind — вид события обратной связи (звук, речь, вспышка на клиенте).
type Kind int

const (
	Shoot Kind = iota
	Hit
	SurfaceImpact
	Reload
	DryFire
	Heal
	EnemyShoot
	EnemyVocalize
	EnemyDeath
	WaveStart
	WeaponSwitch
)

var kindNames = [...]string{
	Shoot:         "shoot",
	Hit:           "hit",
	SurfaceImpact: "surface_impact",
	Reload:        "reload",
	DryFire:       "dry_fire",
	Heal:          "heal",
	EnemyShoot:    "enemy_shoot",
	EnemyVocalize: "enemy_vocalize",
	EnemyDeath:    "enemy_death",
	WaveStart:     "wave_start",
	WeaponSwitch:  "weapon_switch",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Event — одно событие обратной связи. Phrase заполняется только для реплик.
type Event struct {
	Kind     Kind
	Source   types.EntityID
	Position utils.Vec3
	Phrase   string
}

// Sink принимает события. Реализация не должна влиять на симуляцию;
// ошибки и паники глотаются (см. Safe).
type Sink interface {
	Emit(e Event)
}

// SinkFunc адаптирует функцию к Sink.
type SinkFunc func(e Event)

func (f SinkFunc) Emit(e Event) { f(e) }

// Nop — sink, который ничего не делает.
var Nop Sink = SinkFunc(func(Event) {})

// Multi рассылает событие всем sink'ам по порядку.
type Multi []Sink

func (m Multi) Emit(e Event) {
	for _, s := range m {
		if s != nil {
			s.Emit(e)
		}
	}
}
