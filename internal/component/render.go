// component/render.go
package component

import "image/color"

// Renderable — подсказка отрисовки, общая для 3D-клиента и 2D-просмотрщика.
type Renderable struct {
	Color  color.RGBA
	Radius float32
	Height float32
}
