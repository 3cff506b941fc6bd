// internal/telemetry/telemetry.go
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "go-wave-shooter/internal/telemetry"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Metrics — счётчики матча. Используется глобальный провайдер OTel (no-op, если хост его не настроил).
// Nil *Metrics допустим: все методы становятся пустыми.
type Metrics struct {
	shots        metric.Int64Counter
	kills        metric.Int64Counter
	waves        metric.Int64Counter
	playerDamage metric.Int64Counter
	matches      metric.Int64Counter
	enemiesAlive metric.Int64ObservableGauge
}

// New создаёт инструменты. alive вызывается из колбэка наблюдаемого датчика и может быть nil.
func New(alive func() int) (*Metrics, error) {
	m := meter()
	metrics := &Metrics{}

	var err error
	metrics.shots, err = m.Int64Counter(
		"shooter.shots",
		metric.WithDescription("Shots fired by the player"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating shots counter: %w", err)
	}

	metrics.kills, err = m.Int64Counter(
		"shooter.enemy_kills",
		metric.WithDescription("Enemies killed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating kills counter: %w", err)
	}

	metrics.waves, err = m.Int64Counter(
		"shooter.waves",
		metric.WithDescription("Waves started"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating waves counter: %w", err)
	}

	metrics.playerDamage, err = m.Int64Counter(
		"shooter.player_damage",
		metric.WithDescription("Damage taken by the player"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating player damage counter: %w", err)
	}

	metrics.matches, err = m.Int64Counter(
		"shooter.matches",
		metric.WithDescription("Finished matches by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating matches counter: %w", err)
	}

	if alive != nil {
		metrics.enemiesAlive, err = m.Int64ObservableGauge(
			"shooter.enemies.alive",
			metric.WithDescription("Enemies alive in the current wave"),
		)
		if err != nil {
			return nil, fmt.Errorf("creating enemies gauge: %w", err)
		}
		_, err = m.RegisterCallback(
			func(ctx context.Context, o metric.Observer) error {
				o.ObserveInt64(metrics.enemiesAlive, int64(alive()))
				return nil
			},
			metrics.enemiesAlive,
		)
		if err != nil {
			return nil, fmt.Errorf("registering enemies callback: %w", err)
		}
	}

	return metrics, nil
}

func (m *Metrics) ShotFired(weapon string) {
	if m == nil {
		return
	}
	m.shots.Add(context.Background(), 1, metric.WithAttributes(attribute.String("weapon", weapon)))
}

func (m *Metrics) EnemyKilled(wave int) {
	if m == nil {
		return
	}
	m.kills.Add(context.Background(), 1, metric.WithAttributes(attribute.Int("wave", wave)))
}

func (m *Metrics) WaveStarted(wave int) {
	if m == nil {
		return
	}
	m.waves.Add(context.Background(), 1, metric.WithAttributes(attribute.Int("wave", wave)))
}

func (m *Metrics) PlayerDamaged(amount int) {
	if m == nil || amount <= 0 {
		return
	}
	m.playerDamage.Add(context.Background(), int64(amount))
}

func (m *Metrics) MatchEnded(outcome string, wave int) {
	if m == nil {
		return
	}
	m.matches.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
		attribute.Int("wave", wave),
	))
}
