package audio

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
)

const ringSize = 8192

// Player owns the speaker and plays chimes through a level meter.
type Player struct {
	sr       beep.SampleRate
	notes    []Note
	mu       sync.Mutex
	initDone bool
	disabled bool
	meter    *Meter
}

func NewPlayer(sampleRate int, notes []Note) *Player {
	return &Player{sr: beep.SampleRate(sampleRate), notes: notes}
}

func (p *Player) init() error {
	if p.initDone {
		return nil
	}
	if err := speaker.Init(p.sr, p.sr.N(time.Second/20)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	p.initDone = true
	return nil
}

// Play starts the chime. Audio is best effort: if the speaker cannot be
// opened the error is logged once and later calls do nothing.
func (p *Player) Play() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.disabled {
		return
	}
	if err := p.init(); err != nil {
		log.Printf("audio disabled: %v", err)
		p.disabled = true
		return
	}

	m := NewMeter(Chime(p.sr, p.notes), ringSize)
	p.meter = m

	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
	speaker.Play(beep.Seq(m, beep.Callback(m.Reset)))
}

// Level is the loudness of the chime over the last ~1/60s, 0 when silent.
func (p *Player) Level() float64 {
	p.mu.Lock()
	m := p.meter
	p.mu.Unlock()
	if m == nil {
		return 0
	}
	return m.Level(int(p.sr) / 60)
}
