package audio

import (
	"math"
	"sync"

	"github.com/faiface/beep"
)

// Meter wraps a beep.Streamer and records the last N samples into a ring
// buffer so the renderer can pulse with whatever is playing.
type Meter struct {
	Source    beep.Streamer
	buffer    [][2]float64
	nextIndex int
	filled    int
	mu        sync.RWMutex
}

func NewMeter(src beep.Streamer, ringSize int) *Meter {
	return &Meter{
		Source: src,
		buffer: make([][2]float64, ringSize),
	}
}

func (m *Meter) Stream(samples [][2]float64) (int, bool) {
	n, ok := m.Source.Stream(samples)
	if n > 0 {
		m.mu.Lock()
		for i := 0; i < n; i++ {
			m.buffer[m.nextIndex] = samples[i]
			m.nextIndex++
			if m.nextIndex >= len(m.buffer) {
				m.nextIndex = 0
			}
		}
		m.filled += n
		if m.filled > len(m.buffer) {
			m.filled = len(m.buffer)
		}
		m.mu.Unlock()
	}
	if !ok {
		m.Reset()
	}
	return n, ok
}

func (m *Meter) Err() error { return m.Source.Err() }

// Reset forgets the recorded samples.
func (m *Meter) Reset() {
	m.mu.Lock()
	m.filled = 0
	m.nextIndex = 0
	m.mu.Unlock()
}

// Level returns the RMS of the last n recorded samples, mixed to mono.
func (m *Meter) Level(n int) float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if n > m.filled {
		n = m.filled
	}
	if n == 0 {
		return 0
	}
	// Walk backwards from nextIndex - 1
	idx := m.nextIndex - 1
	var sum float64
	for i := 0; i < n; i++ {
		if idx < 0 {
			idx = len(m.buffer) - 1
		}
		mono := (m.buffer[idx][0] + m.buffer[idx][1]) * 0.5
		sum += mono * mono
		idx--
	}
	return math.Sqrt(sum / float64(n))
}
