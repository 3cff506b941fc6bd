// internal/ui/button.go
package ui

import (
	"go-wave-shooter/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Button — кнопка меню; срабатывает по клику или по горячей клавише.
type Button struct {
	Rect       rl.Rectangle
	Text       string
	Key        int32 // 0 — без горячей клавиши
	TextColor  rl.Color
	BgColor    rl.Color
	HoverColor rl.Color
	Font       rl.Font
	FontSize   float32
}

func NewButton(rect rl.Rectangle, text string, key int32, font rl.Font) *Button {
	return &Button{
		Rect:       rect,
		Text:       text,
		Key:        key,
		TextColor:  config.TextLightColor,
		BgColor:    config.UIColorBlue,
		HoverColor: config.PlayerColor,
		Font:       font,
		FontSize:   24,
	}
}

// Pressed — клик по кнопке или нажатие её клавиши в этом кадре.
func (b *Button) Pressed(mousePos rl.Vector2) bool {
	if b.Key != 0 && rl.IsKeyPressed(b.Key) {
		return true
	}
	return rl.CheckCollisionPointRec(mousePos, b.Rect) && rl.IsMouseButtonPressed(rl.MouseLeftButton)
}

func (b *Button) Draw(mousePos rl.Vector2) {
	bgColor := b.BgColor
	if rl.CheckCollisionPointRec(mousePos, b.Rect) {
		bgColor = b.HoverColor
	}

	rl.DrawRectangleRec(b.Rect, bgColor)
	rl.DrawRectangleLinesEx(b.Rect, 2, rl.White)

	textSize := rl.MeasureTextEx(b.Font, b.Text, b.FontSize, 1)
	textX := b.Rect.X + (b.Rect.Width-textSize.X)/2
	textY := b.Rect.Y + (b.Rect.Height-textSize.Y)/2

	rl.DrawTextEx(b.Font, b.Text, rl.NewVector2(textX, textY), b.FontSize, 1, b.TextColor)
}
