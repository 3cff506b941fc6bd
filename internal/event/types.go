package event

import (
	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/types"
)

const (
	EnemyKilled       EventType = "EnemyKilled"       // Враг уничтожен (ровно один раз на врага)
	WaveStarted       EventType = "WaveStarted"       // Волна заспавнена
	WaveCleared       EventType = "WaveCleared"       // Последний враг волны убит
	PlayerDied        EventType = "PlayerDied"        // Здоровье игрока упало до нуля или падение за край
	MatchPhaseChanged EventType = "MatchPhaseChanged" // Смена фазы матча
	PickupConsumed    EventType = "PickupConsumed"    // Аптечка подобрана
)

// EnemyKilledData — данные EnemyKilled.
type EnemyKilledData struct {
	Enemy types.EntityID
	Wave  int
}

// WaveData — данные WaveStarted / WaveCleared.
type WaveData struct {
	Wave    int
	Enemies int
}

// PhaseChangeData — данные MatchPhaseChanged.
type PhaseChangeData struct {
	From, To component.MatchPhase
	MatchID  string
}

// PickupData — данные PickupConsumed.
type PickupData struct {
	Pickup types.EntityID
	Healed int
}
