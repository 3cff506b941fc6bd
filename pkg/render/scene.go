// pkg/render/scene.go
package render

import (
	"go-wave-shooter/internal/app"
	"go-wave-shooter/internal/assets"
	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/config"
	"go-wave-shooter/internal/defs"
	"go-wave-shooter/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	sparkRadius     = 0.15
	muzzleRadius    = 0.25
	treeTrunkHeight = 3.0
	treeCrownRadius = 2.0
)

// SceneRenderer рисует уровень и снимок симуляции внутри BeginMode3D.
type SceneRenderer struct {
	level  defs.Level
	camera rl.Camera3D
	models *assets.ModelManager
	// ThirdPerson — рисовать тело игрока (в виде от первого лица оно закрывает обзор).
	ThirdPerson bool
}

// NewSceneRenderer — models может быть nil, тогда все тела рисуются примитивами.
func NewSceneRenderer(level defs.Level, models *assets.ModelManager) *SceneRenderer {
	cam := rl.Camera3D{}
	cam.Up = rl.NewVector3(0, 1, 0)
	cam.Projection = rl.CameraPerspective
	cam.Fovy = 75
	return &SceneRenderer{level: level, camera: cam, models: models}
}

func v3(v utils.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

// Camera возвращает камеру raylib, собранную из позы камеры снимка.
func (r *SceneRenderer) Camera(s app.Snapshot) rl.Camera3D {
	c := s.Camera
	if c.Forward.Len() == 0 {
		return r.camera
	}
	r.camera.Position = v3(c.Position)
	r.camera.Target = v3(c.Position.Add(c.Forward))
	if c.FOV > 0 {
		r.camera.Fovy = float32(c.FOV)
	}
	return r.camera
}

// Draw ожидает, что вызывающий уже открыл BeginMode3D с камерой из Camera.
func (r *SceneRenderer) Draw(s app.Snapshot) {
	r.drawLevel()

	for _, e := range s.Enemies {
		r.drawEnemy(e)
	}

	for _, p := range s.Pickups {
		if r.drawModel(assets.ModelPickup, p.Position, 0, float32(p.Radius*2), p.Color) {
			continue
		}
		size := float32(p.Radius * 2)
		rl.DrawCube(v3(p.Position), size, size, size, p.Color)
		rl.DrawCubeWires(v3(p.Position), size, size, size, Shade(p.Color, 0.5))
	}

	for _, e := range s.Effects {
		radius := float32(sparkRadius)
		if e.Kind == component.EffectMuzzleFlash {
			radius = muzzleRadius
		}
		rl.DrawSphere(v3(e.Position), radius, config.EffectColor(e.Kind))
	}

	if r.ThirdPerson && !r.drawModel(assets.ModelPlayer, s.PlayerPosition, s.PlayerYaw, float32(s.PlayerHeight), config.PlayerColor) {
		pos := v3(s.PlayerPosition)
		top := pos
		top.Y += float32(s.PlayerHeight)
		radius := float32(s.PlayerRadius)
		rl.DrawCylinderEx(pos, top, radius, radius, 12, config.PlayerColor)
	}
}

func (r *SceneRenderer) drawLevel() {
	size := float32(r.level.FloorSize)
	rl.DrawPlane(rl.NewVector3(0, 0, 0), rl.NewVector2(size, size), config.GroundColor)

	for _, b := range r.level.Boxes {
		c, ok := config.BoxColor(b.Kind)
		if !ok {
			continue
		}
		center := v3(b.Center)
		w, h, d := float32(b.Size.X), float32(b.Size.Y), float32(b.Size.Z)
		rl.DrawCube(center, w, h, d, c)
		rl.DrawCubeWires(center, w, h, d, Shade(c, 0.5))
	}

	for _, t := range r.level.Trees {
		base := v3(t)
		top := base
		top.Y += treeTrunkHeight
		rl.DrawCylinderEx(base, top, 0.3, 0.25, 8, Shade(config.CrateColor, 0.6))
		top.Y += treeCrownRadius * 0.6
		rl.DrawSphere(top, treeCrownRadius, config.TreeColor)
	}
}

func (r *SceneRenderer) drawEnemy(e app.EnemyView) {
	base := v3(e.Position)
	top := base
	top.Y += float32(e.Height)
	radius := float32(e.Radius)
	c := config.EnemyTint(e.Flashing)
	if !r.drawModel(assets.ModelEnemy, e.Position, e.Yaw, float32(e.Height), c) {
		rl.DrawCylinderEx(base, top, radius, radius, 12, c)
	}

	// Ствол показывает, куда смотрит враг
	eye := e.Position.Add(utils.V3(0, e.Height*0.7, 0))
	dir := utils.ForwardFromAngles(e.Yaw, 0)
	muzzleFrom := v3(eye)
	muzzleTo := v3(eye.Add(dir.Scale(1.2)))
	rl.DrawCylinderEx(muzzleFrom, muzzleTo, 0.08, 0.08, 6, Shade(c, 0.5))

	if e.MaxHealth > 0 {
		r.drawHealthBar(top, float32(e.Health)/float32(e.MaxHealth))
	}
}

// drawModel рисует пользовательскую модель, если она загружена. Модель ожидается
// единичной высоты с основанием в начале координат и взглядом вдоль -Z.
func (r *SceneRenderer) drawModel(id string, pos utils.Vec3, yaw float64, scale float32, tint rl.Color) bool {
	model, ok := r.models.GetModel(id)
	if !ok {
		return false
	}
	rl.DrawModelEx(model, v3(pos), rl.NewVector3(0, 1, 0), float32(yaw*rl.Rad2deg), rl.NewVector3(scale, scale, scale), tint)
	return true
}

// drawHealthBar — плоская полоска над головой.
func (r *SceneRenderer) drawHealthBar(at rl.Vector3, frac float32) {
	if frac < 0 {
		frac = 0
	}
	at.Y += 0.4
	const width = 1.2
	rl.DrawCube(at, width, 0.1, 0.1, config.HealthLowColor)
	fill := at
	fill.X -= width * (1 - frac) / 2
	rl.DrawCube(fill, width*frac, 0.12, 0.12, config.HealthColor)
}
