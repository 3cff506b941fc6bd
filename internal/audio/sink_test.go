package audio

import (
	"testing"
	"time"

	"go-wave-shooter/internal/fx"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestTone_LengthAndRange(t *testing.T) {
	for kind, tone := range Tones {
		samples := drain(tone.Streamer(sampleRate))
		assert.Len(t, samples, sampleRate.N(tone.Length), kind.String())
		for _, s := range samples {
			assert.LessOrEqual(t, s[0], tone.Gain+1e-9)
			assert.GreaterOrEqual(t, s[0], -tone.Gain-1e-9)
			assert.Equal(t, s[0], s[1])
		}
	}
}

func TestTone_FadesOut(t *testing.T) {
	samples := drain(healTone.Streamer(sampleRate))
	require.NotEmpty(t, samples)
	tail := samples[len(samples)-10:]
	for _, s := range tail {
		assert.InDelta(t, 0, s[0], 0.01)
	}
}

func TestRamp(t *testing.T) {
	span := 100 * time.Millisecond
	assert.InDelta(t, 500, ramp(RampLinear, 400, 600, 50*time.Millisecond, span), 1e-9)
	assert.InDelta(t, 100, ramp(RampExponential, 10, 1000, 50*time.Millisecond, span), 1e-9)
	assert.Equal(t, 600.0, ramp(RampLinear, 400, 600, time.Second, span))
	// Экспонента к нулю невозможна, остаётся линейной.
	assert.InDelta(t, 0.1, ramp(RampExponential, 0.2, 0, 50*time.Millisecond, span), 1e-9)
}

func TestSink_PlaysMappedKinds(t *testing.T) {
	var played []beep.Streamer
	sink := NewSink(0.5, func(s beep.Streamer) { played = append(played, s) }, zerolog.Nop())

	sink.Emit(fx.Event{Kind: fx.Shoot})
	sink.Emit(fx.Event{Kind: fx.EnemyVocalize, Phrase: "ouch"})
	sink.Emit(fx.Event{Kind: fx.SurfaceImpact})
	sink.Emit(fx.Event{Kind: fx.Heal})

	require.Len(t, played, 2)
	samples := drain(played[0])
	assert.Len(t, samples, sampleRate.N(shootTone.Length))
}

func TestSink_MutedOrNil(t *testing.T) {
	calls := 0
	NewSink(0, func(beep.Streamer) { calls++ }, zerolog.Nop()).Emit(fx.Event{Kind: fx.Shoot})
	var nilSink *Sink
	nilSink.Emit(fx.Event{Kind: fx.Shoot})
	assert.Zero(t, calls)
}
