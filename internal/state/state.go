// internal/state/state.go
package state

import (
	"go-wave-shooter/internal/app"
	"go-wave-shooter/internal/assets"
	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/ui"
	"go-wave-shooter/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

// Session — то, что делят между собой экраны: ядро игры, шрифт и рисовальщики.
type Session struct {
	Game  *app.Game
	Font  rl.Font
	Scene *render.SceneRenderer
	HUD   *ui.HUD
	Log   zerolog.Logger

	// Quit выставляется меню; главный цикл выходит на следующем кадре.
	Quit bool
}

func NewSession(game *app.Game, font rl.Font, models *assets.ModelManager, log zerolog.Logger) *Session {
	scene := render.NewSceneRenderer(game.Level, models)
	scene.ThirdPerson = component.CameraMode(game.Config.Player.CameraMode) == component.CameraThirdPerson
	return &Session{
		Game:  game,
		Font:  font,
		Scene: scene,
		HUD:   ui.NewHUD(font, config.ScreenWidth, config.ScreenHeight),
		Log:   log,
	}
}

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw()
	Exit()
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// Current возвращает текущее состояние.
func (sm *StateMachine) Current() State {
	return sm.current
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw() {
	if sm.current != nil {
		sm.current.Draw()
	}
}

// DrawUI рисует 2D-слой поверх сцены, если состояние его имеет.
func (sm *StateMachine) DrawUI() {
	if uiDrawable, ok := sm.current.(interface{ DrawUI() }); ok {
		uiDrawable.DrawUI()
	}
}

// drawScene рисует 3D-сцену по снимку; используется всеми экранами, кроме меню.
func drawScene(s *Session, snap app.Snapshot) {
	rl.BeginMode3D(s.Scene.Camera(snap))
	s.Scene.Draw(snap)
	rl.EndMode3D()
}

// drawOverlay — затемнение и заголовок по центру экрана.
func drawOverlay(font rl.Font, title string, c rl.Color) {
	rl.DrawRectangle(0, 0, int32(config.ScreenWidth), int32(config.ScreenHeight), rl.NewColor(0, 0, 0, 128))
	const fontSize = 48
	size := rl.MeasureTextEx(font, title, fontSize, 1)
	pos := rl.NewVector2((float32(config.ScreenWidth)-size.X)/2, float32(config.ScreenHeight)/2-120)
	rl.DrawTextEx(font, title, pos, fontSize, 1, c)
}

// centeredButton — прямоугольник кнопки по центру с вертикальным сдвигом.
func centeredButton(offsetY float32) rl.Rectangle {
	const w, h = 240, 50
	return rl.NewRectangle((float32(config.ScreenWidth)-w)/2, float32(config.ScreenHeight)/2+offsetY, w, h)
}
