package ui

import (
	"image/color"
	"math"
	"time"

	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// StateIndicatorRL — кружок фазы матча; пульсирует при каждом убийстве.
type StateIndicatorRL struct {
	X, Y      float32
	Radius    float32
	lastPulse time.Time
	lastScore int
}

func NewStateIndicatorRL(x, y, radius float32) *StateIndicatorRL {
	return &StateIndicatorRL{
		X:      x,
		Y:      y,
		Radius: radius,
	}
}

// PhaseColor — цвет индикатора для фазы.
func PhaseColor(p component.MatchPhase) color.RGBA {
	switch p {
	case component.PhasePlaying:
		return config.HealthColor
	case component.PhasePaused:
		return config.SparkColor
	case component.PhaseGameOver:
		return config.HealthLowColor
	case component.PhaseVictory:
		return config.UIColorBlue
	}
	return config.SurfaceColor
}

// Draw отрисовывает индикатор. Рост счёта запускает пульсацию.
func (i *StateIndicatorRL) Draw(phase component.MatchPhase, score int) {
	if score > i.lastScore {
		i.lastPulse = time.Now()
	}
	i.lastScore = score

	elapsed := time.Since(i.lastPulse).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	currentRadius := i.Radius * float32(scale)

	rl.DrawCircleV(rl.NewVector2(i.X, i.Y), currentRadius, PhaseColor(phase))
	rl.DrawCircleLines(int32(i.X), int32(i.Y), currentRadius, rl.White)
}
