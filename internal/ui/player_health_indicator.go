// internal/ui/player_health_indicator.go
package ui

import (
	"strconv"

	"go-wave-shooter/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	HealthCells         = 10
	HealthCols          = 5
	HealthCircleRadius  = 10.0
	HealthCircleSpacing = 4.0
)

// PlayerHealthIndicator отображает здоровье игрока сеткой кружков; каждый — десятая часть максимума.
type PlayerHealthIndicator struct {
	Position rl.Vector2
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{
		Position: rl.NewVector2(x, y),
	}
}

// Draw рисует индикатор здоровья игрока.
func (i *PlayerHealthIndicator) Draw(health, maxHealth int) {
	if maxHealth <= 0 {
		return
	}
	startX := i.Position.X
	startY := i.Position.Y
	// Заполненные ячейки, округление вверх: 1 HP — ещё одна ячейка
	filled := (health*HealthCells + maxHealth - 1) / maxHealth
	low := health*10 <= maxHealth*3

	for j := 0; j < HealthCells; j++ {
		row := j / HealthCols
		col := j % HealthCols

		x := startX + float32(col)*(HealthCircleRadius*2+HealthCircleSpacing)
		y := startY + float32(row)*(HealthCircleRadius*2+HealthCircleSpacing)

		color := rl.Black
		if j < filled {
			color = config.HealthColor
			if low {
				color = config.HealthLowColor
			}
		}

		rl.DrawCircle(int32(x+HealthCircleRadius), int32(y+HealthCircleRadius), HealthCircleRadius, color)
		rl.DrawCircleLines(int32(x+HealthCircleRadius), int32(y+HealthCircleRadius), HealthCircleRadius, rl.White)
	}

	healthText := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	textWidth := rl.MeasureText(healthText, 20)
	rl.DrawText(healthText, int32(startX+(HealthCols*(HealthCircleRadius*2+HealthCircleSpacing)-float32(textWidth))/2), int32(startY)-25, 20, config.TextDarkColor)
}

// GetHeight возвращает общую высоту индикатора.
func (i *PlayerHealthIndicator) GetHeight() float32 {
	textHeight := float32(25)
	rows := (HealthCells + HealthCols - 1) / HealthCols
	return textHeight + float32(rows)*(HealthCircleRadius*2+HealthCircleSpacing)
}
