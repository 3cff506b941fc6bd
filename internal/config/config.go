// internal/config/config.go
package config

import "image/color"

// Константы отображения. Настройки симуляции живут в Config (см. load.go).
const (
	ScreenWidth  = 1280
	ScreenHeight = 720
	TargetFPS    = 60
	MaxDeltaTime = 0.1 // секунды; длинные кадры (перетаскивание окна) режутся

	IndicatorOffsetX = 30
	HUDMargin        = 20
	CrosshairSize    = 10

	ViewerScale = 2.6 // пикселей на метр в 2D-просмотрщике
)

var (
	BackgroundColor = color.RGBA{224, 242, 254, 255}
	GroundColor     = color.RGBA{74, 222, 128, 255}
	RoadColor       = color.RGBA{120, 113, 108, 255}
	WallColor       = color.RGBA{120, 113, 108, 255}
	FloorColor      = color.RGBA{168, 162, 158, 255}
	CrateColor      = color.RGBA{146, 64, 14, 255}
	SandbagColor    = color.RGBA{194, 178, 128, 255}
	VehicleColor    = color.RGBA{80, 101, 72, 255}
	TreeColor       = color.RGBA{21, 128, 61, 255}
	PlayerColor     = color.RGBA{59, 130, 246, 255}
	EnemyColor      = color.RGBA{127, 29, 29, 255}
	EnemyHitColor   = color.RGBA{255, 255, 255, 255}
	PickupColor     = color.RGBA{239, 68, 68, 255}
	SparkColor      = color.RGBA{250, 204, 21, 255}
	SurfaceColor    = color.RGBA{156, 163, 175, 255}
	MuzzleColor     = color.RGBA{253, 224, 71, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	UIColorBlue     = color.RGBA{70, 130, 180, 255}
	HealthColor     = color.RGBA{34, 197, 94, 255}
	HealthLowColor  = color.RGBA{220, 38, 38, 255}
)
