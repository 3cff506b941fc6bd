// internal/state/pause_state.go
package state

import (
	"go-wave-shooter/internal/app"
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState показывает замороженный кадр; время симуляции не идёт.
type PauseState struct {
	sm       *StateMachine
	s        *Session
	previous *PlayState
	resume   *ui.PauseButtonRL
}

func NewPauseState(sm *StateMachine, s *Session, previous *PlayState) *PauseState {
	btn := ui.NewPauseButtonRL(
		float32(config.ScreenWidth)/2,
		float32(config.ScreenHeight)/2+40,
		24,
		config.UIColorBlue,
		config.HealthColor,
	)
	btn.SetPaused(true)
	return &PauseState{sm: sm, s: s, previous: previous, resume: btn}
}

func (p *PauseState) Enter() {}

func (p *PauseState) Update(deltaTime float64) {
	resume := rl.IsKeyPressed(rl.KeyP) || rl.IsKeyPressed(rl.KeyEnter) || p.resume.IsClicked(rl.GetMousePosition())
	if resume && p.s.Game.HandleIntent(app.IntentResume) {
		p.sm.SetState(p.previous)
	}
}

func (p *PauseState) Draw() {
	p.previous.Draw()
}

// DrawUI рисует UI для состояния паузы
func (p *PauseState) DrawUI() {
	p.previous.DrawUI()
	drawOverlay(p.s.Font, "PAUSED", rl.White)
	p.resume.Draw()
}

func (p *PauseState) Exit() {}
