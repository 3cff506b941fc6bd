// internal/state/menu_state.go
package state

import (
	"go-wave-shooter/internal/app"
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var _ State = (*MenuState)(nil)

// MenuState — стартовый экран.
type MenuState struct {
	sm    *StateMachine
	s     *Session
	start *ui.Button
	exit  *ui.Button
}

func NewMenuState(sm *StateMachine, s *Session) *MenuState {
	return &MenuState{
		sm:    sm,
		s:     s,
		start: ui.NewButton(centeredButton(-40), "START", rl.KeyEnter, s.Font),
		exit:  ui.NewButton(centeredButton(30), "EXIT", 0, s.Font),
	}
}

func (m *MenuState) Enter() {
	rl.EnableCursor()
}

func (m *MenuState) Update(deltaTime float64) {
	mouse := rl.GetMousePosition()
	switch {
	case m.start.Pressed(mouse):
		if m.s.Game.HandleIntent(app.IntentStartMatch) {
			m.sm.SetState(NewPlayState(m.sm, m.s))
		}
	case m.exit.Pressed(mouse):
		m.s.Quit = true
	}
}

func (m *MenuState) Draw() {
	rl.ClearBackground(config.BackgroundColor)
}

func (m *MenuState) DrawUI() {
	const title = "WAVE SHOOTER"
	size := rl.MeasureTextEx(m.s.Font, title, 56, 1)
	rl.DrawTextEx(m.s.Font, title, rl.NewVector2((float32(config.ScreenWidth)-size.X)/2, float32(config.ScreenHeight)/2-160), 56, 1, config.TextDarkColor)

	mouse := rl.GetMousePosition()
	m.start.Draw(mouse)
	m.exit.Draw(mouse)
}

func (m *MenuState) Exit() {}
