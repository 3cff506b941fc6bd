package assets

import (
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog"
)

// Идентификаторы моделей, которые может подменить пользователь.
const (
	ModelEnemy  = "enemy"
	ModelPickup = "pickup"
	ModelPlayer = "player"
)

// ModelIDs — все модели, которые ищет сцена.
var ModelIDs = []string{ModelEnemy, ModelPickup, ModelPlayer}

// ModelManager управляет загрузкой, кэшированием и выгрузкой 3D-моделей.
// Отсутствующая модель не ошибка: сцена рисует примитив.
type ModelManager struct {
	dir    string
	models map[string]rl.Model
	log    zerolog.Logger
}

// NewModelManager создает новый экземпляр ModelManager. dir содержит <id>.obj и
// необязательные текстуры <id>.png; пустой dir отключает загрузку.
func NewModelManager(dir string, log zerolog.Logger) *ModelManager {
	return &ModelManager{
		dir:    dir,
		models: make(map[string]rl.Model),
		log:    log,
	}
}

// loadSingleModel безопасно загружает одну модель и ее текстуру.
func (m *ModelManager) loadSingleModel(id string) {
	defer func() {
		if r := recover(); r != nil {
			m.log.Error().Str("model", id).Interface("panic", r).Msg("raylib panicked while loading model, skipping")
		}
	}()

	if _, ok := m.models[id]; ok {
		return
	}

	modelPath := filepath.Join(m.dir, id+".obj")
	if _, err := os.Stat(modelPath); err != nil {
		return
	}
	model := rl.LoadModel(modelPath)
	if model.MeshCount == 0 {
		m.log.Warn().Str("model", id).Str("path", modelPath).Msg("model is empty")
		return
	}

	texturePath := filepath.Join(m.dir, id+".png")
	if _, err := os.Stat(texturePath); err == nil {
		texture := rl.LoadTexture(texturePath)
		if texture.ID > 0 {
			rl.SetMaterialTexture(model.Materials, rl.MapDiffuse, texture)
		} else {
			m.log.Warn().Str("model", id).Str("path", texturePath).Msg("failed to load texture")
		}
	}

	m.models[id] = model
	m.log.Info().Str("model", id).Msg("model loaded")
}

// LoadAll загружает все известные модели. Требует открытого окна raylib.
func (m *ModelManager) LoadAll() {
	if m.dir == "" {
		return
	}
	for _, id := range ModelIDs {
		m.loadSingleModel(id)
	}
}

// Cleanup выгружает все загруженные модели.
func (m *ModelManager) Cleanup() {
	for id, model := range m.models {
		rl.UnloadModel(model)
		delete(m.models, id)
	}
}

// GetModel возвращает модель по ID.
func (m *ModelManager) GetModel(id string) (rl.Model, bool) {
	if m == nil {
		return rl.Model{}, false
	}
	model, ok := m.models[id]
	return model, ok
}
