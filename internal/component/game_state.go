package component

import "time"

// MatchPhase — фаза жизненного цикла матча.
type MatchPhase int

const (
	PhaseMenu MatchPhase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
	PhaseVictory
)

func (p MatchPhase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	case PhaseVictory:
		return "victory"
	}
	return "unknown"
}

// Ended — матч завершён (поражение или победа).
func (p MatchPhase) Ended() bool {
	return p == PhaseGameOver || p == PhaseVictory
}

// GameState — глобальное состояние матча.
type GameState struct {
	Phase     MatchPhase
	MatchID   string
	Health    int
	MaxHealth int
	Score     int
	Wave      int
	EndedAt   time.Duration
}
