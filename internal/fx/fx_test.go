package fx

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestSafe_SwallowsPanics(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)
	s := Safe(SinkFunc(func(Event) { panic("speaker gone") }), log)

	assert.NotPanics(t, func() { s.Emit(Event{Kind: Shoot}) })
	assert.Contains(t, buf.String(), "fx sink failed")
	assert.Contains(t, buf.String(), "speaker gone")
}

func TestMulti_FansOutInOrder(t *testing.T) {
	var a, b Recorder
	m := Multi{&a, nil, &b}

	m.Emit(Event{Kind: Hit})
	m.Emit(Event{Kind: Heal})

	assert.Equal(t, 1, a.Count(Hit))
	assert.Equal(t, 1, b.Count(Heal))
	assert.Len(t, b.Events, 2)
}

func TestLogSink_LogsPhrases(t *testing.T) {
	var buf bytes.Buffer
	s := LogSink{Log: zerolog.New(&buf).Level(zerolog.InfoLevel)}

	s.Emit(Event{Kind: EnemyVocalize, Source: 3, Phrase: "Contact!"})
	s.Emit(Event{Kind: Shoot})

	assert.Contains(t, buf.String(), "Contact!")
	assert.NotContains(t, buf.String(), `"kind":"shoot"`)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "weapon_switch", WeaponSwitch.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
