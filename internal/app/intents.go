package app

import "go-wave-shooter/internal/component"

// Intent — дискретная команда от слоя представления.
type Intent int

const (
	IntentStartMatch Intent = iota
	IntentResume
	// IntentCaptureLost — клиент потерял захват указателя (фокус окна, Esc).
	IntentCaptureLost
	IntentReturnToMenu
)

func (i Intent) String() string {
	switch i {
	case IntentStartMatch:
		return "start_match"
	case IntentResume:
		return "resume"
	case IntentCaptureLost:
		return "capture_lost"
	case IntentReturnToMenu:
		return "return_to_menu"
	}
	return "unknown"
}

// HandleIntent применяет команду; false, если в текущей фазе она не имеет смысла.
//
//	StartMatch   — из Menu, GameOver и Victory (рестарт)
//	Resume       — только из Paused
//	CaptureLost  — Playing -> Paused
//	ReturnToMenu — из GameOver и Victory
func (g *Game) HandleIntent(i Intent) bool {
	phase := g.StateSystem.Phase()
	ok := false
	switch i {
	case IntentStartMatch:
		if phase == component.PhaseMenu || phase.Ended() {
			g.startMatch()
			ok = true
		}
	case IntentResume:
		ok = g.StateSystem.Resume()
	case IntentCaptureLost:
		ok = g.StateSystem.Pause()
	case IntentReturnToMenu:
		ok = g.StateSystem.ReturnToMenu()
	}
	g.log.Debug().Stringer("intent", i).Stringer("phase", phase).Bool("applied", ok).Msg("intent")
	return ok
}
