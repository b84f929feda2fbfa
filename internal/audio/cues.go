package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"go-wave-defense/internal/event"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a short synthesized sound tied to a game event.
type Cue int

const (
	CueKill Cue = iota
	CueBossKill
	CueWaveStart
	CueBossSpawn
	CueSpell
	CueMergeSuccess
	CueMergeFail
	CueVictory
	CueGameOver
)

// note is one tone of a cue.
type note struct {
	freq float64
	dur  time.Duration
}

var cueNotes = map[Cue][]note{
	CueKill:         {{880, 40 * time.Millisecond}},
	CueBossKill:     {{523, 90 * time.Millisecond}, {659, 90 * time.Millisecond}, {784, 160 * time.Millisecond}},
	CueWaveStart:    {{440, 80 * time.Millisecond}, {660, 120 * time.Millisecond}},
	CueBossSpawn:    {{196, 200 * time.Millisecond}, {147, 300 * time.Millisecond}},
	CueSpell:        {{1047, 60 * time.Millisecond}, {1319, 60 * time.Millisecond}},
	CueMergeSuccess: {{659, 80 * time.Millisecond}, {988, 140 * time.Millisecond}},
	CueMergeFail:    {{220, 150 * time.Millisecond}},
	CueVictory:      {{523, 120 * time.Millisecond}, {659, 120 * time.Millisecond}, {784, 120 * time.Millisecond}, {1047, 300 * time.Millisecond}},
	CueGameOver:     {{392, 200 * time.Millisecond}, {311, 200 * time.Millisecond}, {262, 400 * time.Millisecond}},
}

// CueFor maps a game event to its cue. Events without a sound report false.
func CueFor(e event.Event) (Cue, bool) {
	switch e.Type {
	case event.EnemyKilled:
		if d, ok := e.Data.(event.EnemyKilledData); ok && d.Boss {
			return CueBossKill, true
		}
		return CueKill, true
	case event.WaveStart:
		return CueWaveStart, true
	case event.BossSpawn:
		return CueBossSpawn, true
	case event.SpellCast:
		return CueSpell, true
	case event.MergeResolved:
		if d, ok := e.Data.(event.MergeData); ok && d.Outcome == "success" {
			return CueMergeSuccess, true
		}
		return CueMergeFail, true
	case event.Victory:
		return CueVictory, true
	case event.GameOver:
		return CueGameOver, true
	}
	return 0, false
}

// Streamer builds the finite stream for a cue at the given volume
// (0 is unchanged, negative is quieter).
func Streamer(c Cue, volume float64) (beep.Streamer, error) {
	notes := cueNotes[c]
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(sampleRate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(sampleRate.N(n.dur), tone))
	}
	return &effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   volume,
	}, nil
}

// Duration is the total length of a cue.
func Duration(c Cue) time.Duration {
	var d time.Duration
	for _, n := range cueNotes[c] {
		d += n.dur
	}
	return d
}
