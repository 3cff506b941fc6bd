package system

import (
	"sort"
	"time"

	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/defs"
	"go-wave-shooter/internal/entity"
	"go-wave-shooter/internal/fx"
	"go-wave-shooter/internal/interfaces"
	"go-wave-shooter/internal/types"
	"go-wave-shooter/internal/utils"

	"github.com/rs/zerolog"
)

// Hit — результат выстрела. Entity == types.NoEntity означает попадание в геометрию.
type Hit struct {
	Entity   types.EntityID
	Point    utils.Vec3
	Distance float64
	Damaged  bool
}

// CombatSystem разрешает мгновенные выстрелы лучом.
type CombatSystem struct {
	ecs          *entity.ECS
	physics      interfaces.Physics
	fx           fx.Sink
	log          zerolog.Logger
	hitSpark     time.Duration
	surfaceSpark time.Duration
}

func NewCombatSystem(ecs *entity.ECS, physics interfaces.Physics, sink fx.Sink, log zerolog.Logger, hitSpark, surfaceSpark time.Duration) *CombatSystem {
	return &CombatSystem{
		ecs:          ecs,
		physics:      physics,
		fx:           sink,
		log:          log,
		hitSpark:     hitSpark,
		surfaceSpark: surfaceSpark,
	}
}

// Fire выпускает один луч из origin в направлении dir. Первая по дистанции цель,
// не равная exclude, останавливает луч; урон получает не более одной сущности.
func (s *CombatSystem) Fire(origin, dir utils.Vec3, weapon *defs.WeaponStats, exclude types.EntityID) (Hit, bool) {
	candidates := s.physics.Raycast(origin, dir, weapon.Range)
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Distance < candidates[j].Distance
	})

	for _, c := range candidates {
		if c.Entity != types.NoEntity && c.Entity == exclude {
			continue
		}
		hit := Hit{Entity: c.Entity, Point: c.Point, Distance: c.Distance}

		if target, ok := s.ecs.Damageable(c.Entity); ok && c.Entity != types.NoEntity && target.Alive() {
			target.ReceiveDamage(weapon.Damage)
			hit.Damaged = true
			s.SpawnEffect(component.EffectHitSpark, c.Point, s.hitSpark)
			s.fx.Emit(fx.Event{Kind: fx.Hit, Source: c.Entity, Position: c.Point})
			s.log.Debug().Uint64("target", uint64(c.Entity)).Int("damage", weapon.Damage).Float64("distance", c.Distance).Msg("hit")
			return hit, true
		}

		// Тело убитого в этом тике врага остаётся до сброса в конце тика и закрывает луч.
		s.SpawnEffect(component.EffectSurfaceSpark, c.Point, s.surfaceSpark)
		s.fx.Emit(fx.Event{Kind: fx.SurfaceImpact, Position: c.Point})
		return hit, true
	}
	return Hit{}, false
}

// SpawnEffect создаёт короткоживущий визуальный эффект.
func (s *CombatSystem) SpawnEffect(kind component.EffectKind, at utils.Vec3, ttl time.Duration) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Effects[id] = &component.Effect{Kind: kind, Position: at, ExpiresAt: s.ecs.GameTime + ttl}
	return id
}

// ApplySpread отклоняет направление на случайный вектор в кубе [-spread, spread].
func ApplySpread(dir utils.Vec3, spread float64, rng *utils.PRNGService) utils.Vec3 {
	if spread <= 0 {
		return dir.Normalize()
	}
	offset := utils.V3(rng.Jitter(2*spread), rng.Jitter(2*spread), rng.Jitter(2*spread))
	return dir.Normalize().Add(offset).Normalize()
}
