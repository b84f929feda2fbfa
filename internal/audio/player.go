package audio

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"go-wave-defense/internal/event"
)

// minKillGap throttles the kill cue so a splash that kills ten enemies does
// not stack ten tones.
const minKillGap = 60 * time.Millisecond

// Player plays cues for dispatched game events. It stays silent when the
// audio device cannot be opened.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	muted       bool
	lastKill    time.Time
}

func NewPlayer(volume float64) *Player {
	return &Player{mixer: &beep.Mixer{}, volume: volume}
}

// Initialize opens the speaker. Failure is logged and leaves the player silent.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		slog.Warn("audio disabled", "error", err)
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// SetMuted toggles output without closing the device.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// OnEvent implements event.Listener.
func (p *Player) OnEvent(e event.Event) {
	c, ok := CueFor(e)
	if !ok {
		return
	}
	p.Play(c)
}

func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized || p.muted {
		return
	}
	if c == CueKill {
		now := time.Now()
		if now.Sub(p.lastKill) < minKillGap {
			return
		}
		p.lastKill = now
	}
	s, err := Streamer(c, p.volume)
	if err != nil {
		slog.Debug("cue not playable", "cue", c, "error", err)
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops every playing cue and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
