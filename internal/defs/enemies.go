// internal/defs/enemies.go
package defs

import (
	"time"

	"go-wave-shooter/internal/utils"
)

// FarBehavior — что делает враг за пределами дальней дистанции.
type FarBehavior string

const (
	FarHold  FarBehavior = "hold"
	FarChase FarBehavior = "chase"
)

// EnemyProfile — набор настроек поведения врага. Выбирается по имени из конфигурации,
// отдельные поля можно переопределить.
type EnemyProfile struct {
	Name string `mapstructure:"name"`

	GracePeriod time.Duration `mapstructure:"gracePeriod"`
	NearRange   float64       `mapstructure:"nearRange"` // ближе — стоит и стреляет
	FarRange    float64       `mapstructure:"farRange"`  // дальше — FarBehavior
	FarBehavior FarBehavior   `mapstructure:"farBehavior"`
	ChaseSpeed  float64       `mapstructure:"chaseSpeed"`

	StuckSampleInterval time.Duration `mapstructure:"stuckSampleInterval"`
	StuckThreshold      float64       `mapstructure:"stuckThreshold"`
	StuckSamples        int           `mapstructure:"stuckSamples"`
	UnstuckUpSpeed      float64       `mapstructure:"unstuckUpSpeed"`
	UnstuckForwardSpeed float64       `mapstructure:"unstuckForwardSpeed"`

	EngageRange         float64       `mapstructure:"engageRange"`
	MinFireInterval     time.Duration `mapstructure:"minFireInterval"`
	FireIntervalDivisor float64       `mapstructure:"fireIntervalDivisor"` // интервал = d / divisor секунд
	AccuracyBase        float64       `mapstructure:"accuracyBase"`
	AccuracyFalloff     float64       `mapstructure:"accuracyFalloff"` // точность = base - d / falloff
	AccuracyFloor       float64       `mapstructure:"accuracyFloor"`
	AccuracyCeiling     float64       `mapstructure:"accuracyCeiling"`
	Damage              int           `mapstructure:"damage"`
	DamageJitter        int           `mapstructure:"damageJitter"`

	KnockbackImpulse utils.Vec3 `mapstructure:"knockbackImpulse"`
	VocalizeChance   float64    `mapstructure:"vocalizeChance"`
	MaxHealth        int        `mapstructure:"maxHealth"`
	Mass             float64    `mapstructure:"mass"`

	SpawnShoutDelayMin time.Duration `mapstructure:"spawnShoutDelayMin"`
	SpawnShoutDelayMax time.Duration `mapstructure:"spawnShoutDelayMax"`
}

// ClassicProfile — поведение из исходной версии игры.
var ClassicProfile = EnemyProfile{
	Name:        "classic",
	GracePeriod: 2 * time.Second,
	NearRange:   10,
	FarRange:    10,
	FarBehavior: FarChase,
	ChaseSpeed:  4.5,

	StuckSampleInterval: 500 * time.Millisecond,
	StuckThreshold:      0.2,
	StuckSamples:        3,
	UnstuckUpSpeed:      6,
	UnstuckForwardSpeed: 2,

	EngageRange:         35,
	MinFireInterval:     1500 * time.Millisecond,
	FireIntervalDivisor: 10,
	AccuracyBase:        0.4,
	AccuracyFalloff:     30,
	AccuracyFloor:       0.05,
	AccuracyCeiling:     0.4,
	Damage:              3,
	DamageJitter:        0,

	KnockbackImpulse: utils.Vec3{Y: 3},
	VocalizeChance:   0.3,
	MaxHealth:        100,
	Mass:             3,

	SpawnShoutDelayMin: 500 * time.Millisecond,
	SpawnShoutDelayMax: 2500 * time.Millisecond,
}

// EnemyProfiles — библиотека именованных профилей.
var EnemyProfiles = map[string]EnemyProfile{
	"classic":    ClassicProfile,
	"aggressive": aggressiveProfile(),
	"sentry":     sentryProfile(),
}

// Быстрые и злые: короткая фора, погоня с любой дистанции, выше урон.
func aggressiveProfile() EnemyProfile {
	p := ClassicProfile
	p.Name = "aggressive"
	p.GracePeriod = time.Second
	p.NearRange = 6
	p.FarRange = 6
	p.ChaseSpeed = 6.5
	p.MinFireInterval = time.Second
	p.AccuracyBase = 0.5
	p.AccuracyCeiling = 0.5
	p.AccuracyFloor = 0.1
	p.Damage = 4
	p.DamageJitter = 1
	return p
}

// Часовые: держат позицию вдали и подходят только на средней дистанции.
func sentryProfile() EnemyProfile {
	p := ClassicProfile
	p.Name = "sentry"
	p.NearRange = 15
	p.FarRange = 45
	p.FarBehavior = FarHold
	p.ChaseSpeed = 3
	p.EngageRange = 60
	p.FireIntervalDivisor = 20
	p.AccuracyFalloff = 60
	return p
}

// ProfileNames — имена в стабильном порядке (для сообщений об ошибках и UI).
func ProfileNames() []string {
	return []string{"classic", "aggressive", "sentry"}
}
