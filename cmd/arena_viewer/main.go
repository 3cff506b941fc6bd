// cmd/arena_viewer/main.go
package main

import (
	"flag"
	"fmt"
	"image/color"
	"os"
	"time"

	"go-wave-shooter/internal/app"
	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/fx"
	"go-wave-shooter/internal/logging"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/rs/zerolog"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// AppGame — обёртка ebiten над ядром; просмотрщик без звука и без 3D.
type AppGame struct {
	game           *app.Game
	renderer       *ArenaRenderer
	face           font.Face
	log            zerolog.Logger
	autopilot      bool
	speed          int
	snap           app.Snapshot
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now

	a.handleKeys()

	dt := time.Duration(deltaTime * float64(time.Second))
	for i := 0; i < a.speed; i++ {
		a.game.Update(dt, a.input())
	}
	a.snap = a.game.Snapshot()
	return nil
}

func (a *AppGame) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		a.game.HandleIntent(app.IntentStartMatch)
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		if !a.game.HandleIntent(app.IntentCaptureLost) {
			a.game.HandleIntent(app.IntentResume)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		a.game.HandleIntent(app.IntentReturnToMenu)
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		a.autopilot = !a.autopilot
		a.log.Info().Bool("autopilot", a.autopilot).Msg("viewer")
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		a.speed = min(a.speed*2, 16)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		a.speed = max(a.speed/2, 1)
	}
}

// input — автопилот или ручное управление: WASD, стрелки для поворота, пробел — огонь.
func (a *AppGame) input() component.Input {
	if a.autopilot {
		return app.Autopilot(a.game.Snapshot(), a.game.Config.Player.LookSensitivity)
	}
	in := component.Input{
		Forward:  ebiten.IsKeyPressed(ebiten.KeyW),
		Backward: ebiten.IsKeyPressed(ebiten.KeyS),
		Left:     ebiten.IsKeyPressed(ebiten.KeyA),
		Right:    ebiten.IsKeyPressed(ebiten.KeyD),
		Sprint:   ebiten.IsKeyPressed(ebiten.KeyShift),
		Fire:     ebiten.IsKeyPressed(ebiten.KeySpace),
		Reload:   inpututil.IsKeyJustPressed(ebiten.KeyR),
		Switch:   inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}
	const turn = 8.0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.LookDX -= turn
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.LookDX += turn
	}
	return in
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	a.renderer.Draw(screen, a.snap, a.game.Config.Enemy.EngageRange)

	s := a.snap
	lines := []string{
		fmt.Sprintf("%s  match %s  t=%s", s.Phase, shortID(s.MatchID), s.GameTime.Truncate(100*time.Millisecond)),
		fmt.Sprintf("HP %d/%d  SCORE %d  WAVE %d/%d  ENEMIES %d", s.Health, s.MaxHealth, s.Score, s.Wave, s.MaxWaves, s.EnemiesAlive),
		fmt.Sprintf("%s %d/%d  reload=%t switch=%t", s.WeaponName, s.Ammo, s.MaxAmmo, s.Reloading, s.Switching),
		fmt.Sprintf("autopilot=%t (Tab)  speed x%d (+/-)  Enter start  P pause  M menu", a.autopilot, a.speed),
	}
	for i, l := range lines {
		text.Draw(screen, l, a.face, 10, 20+i*18, color.RGBA{20, 20, 30, 255})
	}
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// loadFace — Go Regular; при ошибке разбора остаётся растровый basicfont.
func loadFace(log zerolog.Logger) font.Face {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		log.Warn().Err(err).Msg("falling back to basicfont")
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    13,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Warn().Err(err).Msg("falling back to basicfont")
		return basicfont.Face7x13
	}
	return face
}

func main() {
	configPath := flag.String("config", "", "Path to a config file (yaml/json/toml)")
	autopilot := flag.Bool("autopilot", true, "Let the bot play")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	log := logging.New("info", os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	log = logging.New(cfg.LogLevel, os.Stderr)

	game, err := app.NewGame(cfg, app.WithLogger(log), app.WithFX(fx.LogSink{Log: log}))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game")
	}
	game.HandleIntent(app.IntentStartMatch)

	a := &AppGame{
		game:           game,
		renderer:       NewArenaRenderer(game.Level, config.ScreenWidth, config.ScreenHeight, config.ViewerScale),
		face:           loadFace(log),
		log:            log,
		autopilot:      *autopilot,
		speed:          1,
		snap:           game.Snapshot(),
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Wave Shooter: Arena Viewer")
	if err := ebiten.RunGame(a); err != nil {
		log.Fatal().Err(err).Msg("viewer stopped")
	}
}
