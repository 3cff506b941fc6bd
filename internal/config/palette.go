// internal/config/palette.go
package config

import (
	"image/color"

	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/defs"
)

// BoxColor — цвет коробки уровня по её виду. ok=false для невидимых стен.
func BoxColor(kind defs.BoxKind) (c color.RGBA, ok bool) {
	switch kind {
	case defs.BoxWall:
		return WallColor, true
	case defs.BoxFloor:
		return FloorColor, true
	case defs.BoxCrate:
		return CrateColor, true
	case defs.BoxSandbag:
		return SandbagColor, true
	case defs.BoxVehicle:
		return VehicleColor, true
	case defs.BoxInvisible:
		return color.RGBA{}, false
	}
	return WallColor, true
}

// EffectColor — цвет вспышки эффекта.
func EffectColor(kind component.EffectKind) color.RGBA {
	switch kind {
	case component.EffectHitSpark:
		return SparkColor
	case component.EffectMuzzleFlash:
		return MuzzleColor
	}
	return SurfaceColor
}

// EnemyTint — вспышка белым после попадания.
func EnemyTint(flashing bool) color.RGBA {
	if flashing {
		return EnemyHitColor
	}
	return EnemyColor
}
