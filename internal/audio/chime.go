// Package audio plays the celebration chime.
package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// Note is one tone of the chime.
type Note struct {
	Freq     float64
	Duration time.Duration
}

// Arpeggio is the default celebration chime, a rising C major arpeggio.
var Arpeggio = []Note{
	{Freq: 523.25, Duration: 120 * time.Millisecond},
	{Freq: 659.25, Duration: 120 * time.Millisecond},
	{Freq: 783.99, Duration: 120 * time.Millisecond},
	{Freq: 1046.50, Duration: 480 * time.Millisecond},
}

// Tone returns a sine tone with an exponential decay that lasts d.
func Tone(sr beep.SampleRate, freq float64, d time.Duration, gain float64) beep.Streamer {
	total := sr.N(d)
	pos := 0
	step := 2 * math.Pi * freq / float64(sr)
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		n := 0
		for i := range samples {
			if pos >= total {
				break
			}
			env := math.Exp(-4 * float64(pos) / float64(total))
			v := gain * env * math.Sin(step*float64(pos))
			samples[i][0], samples[i][1] = v, v
			pos++
			n++
		}
		return n, true
	})
}

// Chime sequences the notes into one streamer.
func Chime(sr beep.SampleRate, notes []Note) beep.Streamer {
	tones := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tones = append(tones, Tone(sr, n.Freq, n.Duration, 0.4))
	}
	return beep.Seq(tones...)
}

// Length is the number of samples the notes span at sr.
func Length(sr beep.SampleRate, notes []Note) int {
	total := 0
	for _, n := range notes {
		total += sr.N(n.Duration)
	}
	return total
}
