// internal/defs/level.go
package defs

import (
	"math"

	"go-wave-shooter/internal/utils"
)

// BoxKind влияет только на отрисовку; для физики все коробки одинаково твёрдые.
type BoxKind string

const (
	BoxWall      BoxKind = "wall"
	BoxFloor     BoxKind = "floor"
	BoxCrate     BoxKind = "crate"
	BoxSandbag   BoxKind = "sandbag"
	BoxVehicle   BoxKind = "vehicle"
	BoxInvisible BoxKind = "invisible"
)

// Box — статический выровненный по осям параллелепипед уровня.
type Box struct {
	Center utils.Vec3 `json:"center"`
	Size   utils.Vec3 `json:"size"`
	Kind   BoxKind    `json:"kind"`
}

// Min/Max — углы коробки.
func (b Box) Min() utils.Vec3 { return b.Center.Sub(b.Size.Scale(0.5)) }
func (b Box) Max() utils.Vec3 { return b.Center.Add(b.Size.Scale(0.5)) }

// Level — геометрия арены.
type Level struct {
	Name      string       `json:"name"`
	FloorSize float64      `json:"floor_size"`
	Boxes     []Box        `json:"boxes"`
	Trees     []utils.Vec3 `json:"trees"` // декорация без коллизий
}

// FloorHalf — половина стороны пола.
func (l Level) FloorHalf() float64 { return l.FloorSize / 2 }

// DefaultFloorSize — сторона квадратного пола арены.
const DefaultFloorSize = 250.0

// DefaultLevel — военный полигон: склад, снайперская вышка, два разрушенных дома,
// мешки с песком и танк в центре. Повороты исходных построек приведены к осям.
func DefaultLevel() Level {
	var boxes []Box
	add := func(origin utils.Vec3, parts ...Box) {
		for _, p := range parts {
			p.Center = p.Center.Add(origin)
			boxes = append(boxes, p)
		}
	}

	add(utils.V3(-40, 0, -40), warehouse()...)
	add(utils.V3(-35, 0.75, -35), crate())
	add(utils.V3(-35, 0.75, -45), crate())
	add(utils.V3(-45, 0.75, -35), crate())

	add(utils.V3(40, 0, -40), sniperTower()...)
	add(utils.V3(35, 0, -35), sandbags()...)
	add(utils.V3(45, 0, -45), sandbags()...)

	add(utils.V3(-35, 0, 35), ruinedHouse()...)
	add(utils.V3(-35, 0, 55), ruinedHouse()...)
	add(utils.V3(-25, 1, 45), Box{Size: utils.V3(1, 2, 10), Kind: BoxWall})

	for _, p := range []utils.Vec3{{X: 30, Z: 30}, {X: 35, Z: 30}, {X: 30, Z: 25}, {X: 8, Z: 8}, {X: -8, Z: -8}, {X: 8, Z: -8}, {X: -8, Z: 8}} {
		add(p, sandbags()...)
	}

	// Танк в центре
	add(utils.V3(15, 0, 0),
		Box{Center: utils.V3(0, 1.5, 0), Size: utils.V3(3.5, 2, 6), Kind: BoxVehicle},
		Box{Center: utils.V3(0, 2.8, 0), Size: utils.V3(2.5, 1, 3), Kind: BoxVehicle},
	)

	half := DefaultFloorSize / 2
	boxes = append(boxes,
		Box{Center: utils.V3(0, 10, half), Size: utils.V3(DefaultFloorSize, 20, 1), Kind: BoxInvisible},
		Box{Center: utils.V3(0, 10, -half), Size: utils.V3(DefaultFloorSize, 20, 1), Kind: BoxInvisible},
		Box{Center: utils.V3(half, 10, 0), Size: utils.V3(1, 20, DefaultFloorSize), Kind: BoxInvisible},
		Box{Center: utils.V3(-half, 10, 0), Size: utils.V3(1, 20, DefaultFloorSize), Kind: BoxInvisible},
	)

	trees := make([]utils.Vec3, 0, 48)
	for i := 0; i < 48; i++ {
		angle := float64(i) / 48 * 2 * math.Pi
		r := 85 + float64(i%5)*3
		trees = append(trees, utils.V3(math.Cos(angle)*r, 0, math.Sin(angle)*r))
	}

	return Level{Name: "training-ground", FloorSize: DefaultFloorSize, Boxes: boxes, Trees: trees}
}

func wall(x, y, z, w, h, d float64) Box {
	return Box{Center: utils.V3(x, y, z), Size: utils.V3(w, h, d), Kind: BoxWall}
}

func floor(x, y, z, w, h, d float64) Box {
	return Box{Center: utils.V3(x, y, z), Size: utils.V3(w, h, d), Kind: BoxFloor}
}

func crate() Box {
	return Box{Size: utils.V3(1.5, 1.5, 1.5), Kind: BoxCrate}
}

func sandbags() []Box {
	return []Box{
		{Center: utils.V3(0, 0.3, 0), Size: utils.V3(3, 0.6, 1), Kind: BoxSandbag},
		{Center: utils.V3(0.5, 0.8, 0), Size: utils.V3(1.5, 0.5, 0.8), Kind: BoxSandbag},
	}
}

func sniperTower() []Box {
	return []Box{
		wall(4, 5, 4, 1, 10, 1),
		wall(-4, 5, 4, 1, 10, 1),
		wall(4, 5, -4, 1, 10, 1),
		wall(-4, 5, -4, 1, 10, 1),
		floor(0, 0.2, 0, 10, 0.4, 10),
		floor(0, 5, 0, 10, 0.4, 10),
		wall(0, 6, 4.5, 10, 2, 0.5),
		floor(0, 10, 0, 10, 0.4, 10),
		wall(4.5, 11, 0, 0.5, 2, 10),
		wall(-4.5, 11, 0, 0.5, 2, 10),
		wall(0, 11, -4.5, 10, 2, 0.5),
		wall(0, 11, 4.5, 10, 2, 0.5),
	}
}

func ruinedHouse() []Box {
	return []Box{
		floor(0, 0.2, 0, 16, 0.4, 12),
		wall(-7.5, 2.5, 0, 1, 5, 12),
		wall(7.5, 2.5, 0, 1, 5, 12),
		wall(0, 2.5, -5.5, 14, 5, 1),
		wall(-5, 2.5, 5.5, 6, 5, 1),
		wall(5, 2.5, 5.5, 6, 5, 1),
		wall(0, 4, 5.5, 4, 2, 1),
		wall(0, 2.5, 0, 14, 5, 0.5),
		floor(-4, 5.2, 0, 8, 0.4, 12),
		wall(-7.5, 6.5, 0, 1, 3, 12),
		wall(0, 6.5, -5.5, 14, 3, 1),
	}
}

func warehouse() []Box {
	return []Box{
		floor(0, 0.2, 0, 20, 0.4, 30),
		wall(-9.5, 5, 0, 1, 10, 30),
		wall(9.5, 5, 0, 1, 10, 30),
		wall(0, 5, -14.5, 18, 10, 1),
		wall(0, 10, -10, 20, 1, 1),
		wall(0, 10, 0, 20, 1, 1),
		wall(0, 10, 10, 20, 1, 1),
		floor(-7, 5, 0, 4, 0.5, 28),
	}
}
