// internal/state/end_state.go
package state

import (
	"fmt"

	"go-wave-shooter/internal/app"
	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var _ State = (*EndState)(nil)

// EndState — экран поражения или победы поверх последнего кадра матча.
type EndState struct {
	sm      *StateMachine
	s       *Session
	snap    app.Snapshot
	restart *ui.Button
	menu    *ui.Button
}

func NewEndState(sm *StateMachine, s *Session, snap app.Snapshot) *EndState {
	return &EndState{
		sm:      sm,
		s:       s,
		snap:    snap,
		restart: ui.NewButton(centeredButton(0), "RESTART", rl.KeyEnter, s.Font),
		menu:    ui.NewButton(centeredButton(70), "MENU", rl.KeyM, s.Font),
	}
}

func (e *EndState) Enter() {
	e.s.Log.Info().Stringer("phase", e.snap.Phase).Int("score", e.snap.Score).Int("wave", e.snap.Wave).Msg("match over")
}

func (e *EndState) Update(deltaTime float64) {
	mouse := rl.GetMousePosition()
	switch {
	case e.restart.Pressed(mouse):
		if e.s.Game.HandleIntent(app.IntentStartMatch) {
			e.sm.SetState(NewPlayState(e.sm, e.s))
		}
	case e.menu.Pressed(mouse):
		if e.s.Game.HandleIntent(app.IntentReturnToMenu) {
			e.sm.SetState(NewMenuState(e.sm, e.s))
		}
	}
}

func (e *EndState) Draw() {
	drawScene(e.s, e.snap)
}

func (e *EndState) DrawUI() {
	title, c := "GAME OVER", config.HealthLowColor
	if e.snap.Phase == component.PhaseVictory {
		title, c = "VICTORY", config.HealthColor
	}
	drawOverlay(e.s.Font, title, c)

	score := fmt.Sprintf("SCORE %d   WAVE %d / %d", e.snap.Score, e.snap.Wave, e.snap.MaxWaves)
	size := rl.MeasureTextEx(e.s.Font, score, 28, 1)
	rl.DrawTextEx(e.s.Font, score, rl.NewVector2((float32(config.ScreenWidth)-size.X)/2, float32(config.ScreenHeight)/2-60), 28, 1, config.TextLightColor)

	mouse := rl.GetMousePosition()
	e.restart.Draw(mouse)
	e.menu.Draw(mouse)
}

func (e *EndState) Exit() {}
