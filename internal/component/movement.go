// component/movement.go
package component

import "go-wave-shooter/internal/utils"

// Position — позиция сущностей без физического тела (аптечки, эффекты).
// Для тел авторитетна позиция в физическом мире.
type Position struct {
	utils.Vec3
}

// Body — описание физического тела: капсула, аппроксимированная цилиндром.
type Body struct {
	Radius float64
	Height float64
	Mass   float64
}
