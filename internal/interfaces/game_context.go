// internal/interfaces/game_context.go
package interfaces

import "go-wave-shooter/internal/component"

// MatchContext — узкий контракт состояния матча, доступный системам.
// Все изменения здоровья игрока проходят через него.
type MatchContext interface {
	ApplyPlayerDamage(amount int)
	HealPlayer(amount int)
	AddScore(points int)
	TriggerGameOver() bool
	Phase() component.MatchPhase
	MatchID() string
}
