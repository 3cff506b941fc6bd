package ui

import (
	"fmt"

	"go-wave-shooter/internal/app"
	"go-wave-shooter/internal/config"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUD собирает все индикаторы игрового экрана и рисует их по снимку симуляции.
type HUD struct {
	font      rl.Font
	health    *PlayerHealthIndicator
	ammo      *AmmoIndicator
	wave      *WaveIndicator
	crosshair *Crosshair
	phase     *StateIndicatorRL
}

func NewHUD(font rl.Font, width, height int) *HUD {
	w, h := float32(width), float32(height)
	m := float32(config.HUDMargin)
	return &HUD{
		font:      font,
		health:    NewPlayerHealthIndicator(m, h-m-2*(HealthCircleRadius*2+HealthCircleSpacing)),
		ammo:      NewAmmoIndicator(w-m, h-m),
		wave:      NewWaveIndicator(w/2, m, 48),
		crosshair: NewCrosshair(w/2, h/2, config.CrosshairSize),
		phase:     NewStateIndicatorRL(w-config.IndicatorOffsetX, config.IndicatorOffsetX, 10),
	}
}

func (h *HUD) Draw(s app.Snapshot) {
	h.health.Draw(s.Health, s.MaxHealth)
	h.ammo.Draw(s.WeaponName, s.Ammo, s.MaxAmmo, s.Reloading, s.Switching, h.font)
	h.wave.Draw(s.Wave, s.MaxWaves, h.font)
	h.crosshair.Draw(s.Aiming, s.Reloading || s.Switching)
	h.phase.Draw(s.Phase, s.Score)

	m := float32(config.HUDMargin)
	rl.DrawTextEx(h.font, fmt.Sprintf("SCORE %d", s.Score), rl.NewVector2(m, m), 26, 1, config.TextDarkColor)
	rl.DrawTextEx(h.font, fmt.Sprintf("ENEMIES %d", s.EnemiesAlive), rl.NewVector2(m, m+30), 20, 1, config.TextDarkColor)
}
