// internal/state/play_state.go
package state

import (
	"time"

	"go-wave-shooter/internal/app"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var _ State = (*PlayState)(nil)

// PlayState гоняет симуляцию, пока курсор захвачен окном.
type PlayState struct {
	sm   *StateMachine
	s    *Session
	snap app.Snapshot
}

func NewPlayState(sm *StateMachine, s *Session) *PlayState {
	return &PlayState{sm: sm, s: s, snap: s.Game.Snapshot()}
}

func (p *PlayState) Enter() {
	rl.DisableCursor()
	// Дельта мыши после захвата курсора не должна развернуть камеру
	rl.GetMouseDelta()
}

func (p *PlayState) Update(deltaTime float64) {
	if rl.IsKeyPressed(rl.KeyEscape) || !rl.IsWindowFocused() {
		if p.s.Game.HandleIntent(app.IntentCaptureLost) {
			p.sm.SetState(NewPauseState(p.sm, p.s, p))
			return
		}
	}

	dt := time.Duration(deltaTime * float64(time.Second))
	p.s.Game.Update(dt, readInput())
	p.snap = p.s.Game.Snapshot()

	if p.snap.Phase.Ended() {
		p.sm.SetState(NewEndState(p.sm, p.s, p.snap))
	}
}

func (p *PlayState) Draw() {
	drawScene(p.s, p.snap)
}

func (p *PlayState) DrawUI() {
	p.s.HUD.Draw(p.snap)
}

func (p *PlayState) Exit() {
	rl.EnableCursor()
}
