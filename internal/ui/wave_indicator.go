package ui

import (
	"fmt"

	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             float32
	FontSize         float32
	Color            rl.Color
	OutlineColor     rl.Color
	OutlineThickness int32
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y, fontSize float32) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		FontSize:         fontSize,
		Color:            config.UIColorBlue,
		OutlineColor:     rl.White,
		OutlineThickness: 2,
	}
}

// Draw отрисовывает индикатор: римский номер волны и подпись "n / max" под ним.
func (i *WaveIndicator) Draw(waveNumber, maxWaves int, font rl.Font) {
	if waveNumber <= 0 {
		return
	}

	text := utils.ToRoman(waveNumber)

	// Последняя волна — красная
	textColor := i.Color
	if waveNumber == maxWaves {
		textColor = rl.Red
	}

	textSize := rl.MeasureTextEx(font, text, i.FontSize, 1)
	textX := i.X - textSize.X/2
	textY := i.Y

	for y := -i.OutlineThickness; y <= i.OutlineThickness; y++ {
		for x := -i.OutlineThickness; x <= i.OutlineThickness; x++ {
			if x == 0 && y == 0 {
				continue
			}
			rl.DrawTextEx(font, text, rl.NewVector2(textX+float32(x), textY+float32(y)), i.FontSize, 1, i.OutlineColor)
		}
	}
	rl.DrawTextEx(font, text, rl.NewVector2(textX, textY), i.FontSize, 1, textColor)

	sub := fmt.Sprintf("%d / %d", waveNumber, maxWaves)
	subSize := i.FontSize / 3
	subWidth := rl.MeasureTextEx(font, sub, subSize, 1).X
	rl.DrawTextEx(font, sub, rl.NewVector2(i.X-subWidth/2, textY+textSize.Y+4), subSize, 1, config.TextDarkColor)
}
