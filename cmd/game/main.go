// cmd/game/main.go
package main

import (
	"flag"
	"os"

	"go-wave-shooter/internal/app"
	"go-wave-shooter/internal/assets"
	"go-wave-shooter/internal/audio"
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/fx"
	"go-wave-shooter/internal/logging"
	"go-wave-shooter/internal/state"
	"go-wave-shooter/internal/telemetry"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	// --- Флаги командной строки ---
	configPath := flag.String("config", "", "Path to a config file (yaml/json/toml)")
	fontPath := flag.String("font", "", "Path to a TTF font; raylib default font if empty")
	modelDir := flag.String("models", "assets/models", "Directory with optional enemy/pickup/player .obj models")
	devMode := flag.Bool("dev", false, "Start a match right away, skipping the menu")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	log := logging.New("info", os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	log = logging.New(cfg.LogLevel, os.Stderr)

	var game *app.Game
	metrics, err := telemetry.New(func() int {
		if game == nil {
			return 0
		}
		return game.EnemiesAlive()
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create metrics")
	}

	var sink fx.Sink = fx.LogSink{Log: log}
	if cfg.Audio.Enabled {
		speaker, err := audio.NewSpeakerSink(cfg.Audio.Volume, log)
		if err != nil {
			log.Warn().Err(err).Msg("audio disabled")
		} else {
			defer speaker.Close()
			sink = fx.Multi{speaker, sink}
		}
	}

	game, err = app.NewGame(cfg, app.WithLogger(log), app.WithFX(sink), app.WithMetrics(metrics))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create game")
	}

	// --- Инициализация Raylib ---
	rl.SetConfigFlags(rl.FlagMsaa4xHint)
	rl.InitWindow(config.ScreenWidth, config.ScreenHeight, "Wave Shooter")
	defer rl.CloseWindow()
	rl.SetTargetFPS(config.TargetFPS)
	// Escape освобождает курсор, а не закрывает окно
	rl.SetExitKey(0)

	// --- Загрузка шрифта ---
	font := rl.GetFontDefault()
	if *fontPath != "" {
		font = rl.LoadFontEx(*fontPath, 64, nil, 0)
		defer rl.UnloadFont(font)
	}

	models := assets.NewModelManager(*modelDir, log)
	models.LoadAll()
	defer models.Cleanup()

	session := state.NewSession(game, font, models, log)
	sm := state.NewStateMachine()
	if *devMode && game.HandleIntent(app.IntentStartMatch) {
		log.Info().Msg("dev mode: starting match directly")
		sm.SetState(state.NewPlayState(sm, session))
	} else {
		sm.SetState(state.NewMenuState(sm, session))
	}

	// --- Главный цикл игры ---
	for !rl.WindowShouldClose() && !session.Quit {
		deltaTime := float64(rl.GetFrameTime())
		if deltaTime > config.MaxDeltaTime {
			deltaTime = config.MaxDeltaTime
		}
		sm.Update(deltaTime)

		rl.BeginDrawing()
		rl.ClearBackground(config.BackgroundColor)
		sm.Draw()
		sm.DrawUI()
		rl.DrawFPS(config.ScreenWidth-90, config.ScreenHeight-30)
		rl.EndDrawing()
	}
	sm.SetState(nil)
}
