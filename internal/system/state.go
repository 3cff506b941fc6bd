// internal/system/state.go
package system

import (
	"go-wave-shooter/internal/component"
	"go-wave-shooter/internal/entity"
	"go-wave-shooter/internal/event"
	"go-wave-shooter/internal/interfaces"
	"go-wave-shooter/internal/telemetry"
	"go-wave-shooter/internal/utils"

	"github.com/rs/zerolog"
)

var _ interfaces.MatchContext = (*StateSystem)(nil)

// StateSystem — единственная точка изменения здоровья, счёта и фазы матча.
type StateSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	log             zerolog.Logger
	metrics         *telemetry.Metrics
}

func NewStateSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, log zerolog.Logger, metrics *telemetry.Metrics) *StateSystem {
	return &StateSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		log:             log,
		metrics:         metrics,
	}
}

func (s *StateSystem) state() *component.GameState {
	return s.ecs.GameState
}

func (s *StateSystem) Phase() component.MatchPhase {
	return s.state().Phase
}

func (s *StateSystem) MatchID() string {
	return s.state().MatchID
}

// Begin начинает новый матч с полным здоровьем и нулевым счётом.
func (s *StateSystem) Begin(matchID string, maxHealth int) {
	gs := s.state()
	gs.MatchID = matchID
	gs.Health = maxHealth
	gs.MaxHealth = maxHealth
	gs.Score = 0
	gs.Wave = 0
	gs.EndedAt = 0
	s.setPhase(component.PhasePlaying)
}

// ApplyPlayerDamage уменьшает здоровье с ограничением снизу нулём.
// Вне фазы Playing урон игнорируется; достижение нуля завершает матч.
func (s *StateSystem) ApplyPlayerDamage(amount int) {
	gs := s.state()
	if gs.Phase != component.PhasePlaying || amount <= 0 {
		return
	}
	before := gs.Health
	gs.Health = utils.ClampInt(gs.Health-amount, 0, gs.MaxHealth)
	s.metrics.PlayerDamaged(before - gs.Health)
	s.log.Debug().Int("amount", amount).Int("health", gs.Health).Msg("player damaged")

	if gs.Health == 0 {
		s.TriggerGameOver()
	}
}

// HealPlayer увеличивает здоровье, не выше максимума.
func (s *StateSystem) HealPlayer(amount int) {
	gs := s.state()
	if gs.Phase != component.PhasePlaying || amount <= 0 {
		return
	}
	gs.Health = utils.ClampInt(gs.Health+amount, 0, gs.MaxHealth)
}

func (s *StateSystem) AddScore(points int) {
	gs := s.state()
	if gs.Phase.Ended() {
		return
	}
	gs.Score += points
}

// SetWave фиксирует номер текущей волны для HUD.
func (s *StateSystem) SetWave(n int) {
	s.state().Wave = n
}

// TriggerGameOver идемпотентен: true только при первом переходе.
func (s *StateSystem) TriggerGameOver() bool {
	gs := s.state()
	if gs.Phase != component.PhasePlaying && gs.Phase != component.PhasePaused {
		return false
	}
	gs.EndedAt = s.ecs.GameTime
	s.log.Info().Int("wave", gs.Wave).Int("score", gs.Score).Msg("game over")
	s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerDied})
	s.metrics.MatchEnded("game_over", gs.Wave)
	s.setPhase(component.PhaseGameOver)
	return true
}

// TriggerVictory идемпотентен, как и TriggerGameOver.
func (s *StateSystem) TriggerVictory() bool {
	gs := s.state()
	if gs.Phase != component.PhasePlaying {
		return false
	}
	gs.EndedAt = s.ecs.GameTime
	s.log.Info().Int("wave", gs.Wave).Int("score", gs.Score).Msg("victory")
	s.metrics.MatchEnded("victory", gs.Wave)
	s.setPhase(component.PhaseVictory)
	return true
}

// Pause переводит Playing в Paused.
func (s *StateSystem) Pause() bool {
	if s.Phase() != component.PhasePlaying {
		return false
	}
	s.setPhase(component.PhasePaused)
	return true
}

// Resume возвращает Paused в Playing.
func (s *StateSystem) Resume() bool {
	if s.Phase() != component.PhasePaused {
		return false
	}
	s.setPhase(component.PhasePlaying)
	return true
}

// ReturnToMenu разрешён только из завершённого матча.
func (s *StateSystem) ReturnToMenu() bool {
	if !s.Phase().Ended() {
		return false
	}
	s.setPhase(component.PhaseMenu)
	return true
}

func (s *StateSystem) setPhase(to component.MatchPhase) {
	gs := s.state()
	from := gs.Phase
	gs.Phase = to
	if from != to {
		s.log.Debug().Stringer("from", from).Stringer("to", to).Msg("match phase changed")
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.MatchPhaseChanged,
			Data: event.PhaseChangeData{From: from, To: to, MatchID: gs.MatchID},
		})
	}
}
