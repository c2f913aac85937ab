package audio

import (
	"encoding/binary"
	"math"
	"sync"
)

// SampleRate is used for every synthesized sound so one output context serves them all
const SampleRate = 44100

// Mono is the format of the synthesized sounds
var Mono = Format{SampleRate: SampleRate, Channels: 1, BitDepth: 16}

type note struct {
	freq     float64 // Hz, 0 for a rest
	duration float64 // seconds
	volume   float64 // 0..1
}

var (
	chimeOnce   sync.Once
	chimeWAV    []byte
	lullabyOnce sync.Once
	lullabyWAV  []byte
)

// Chime returns the alarm ring: two bright beeps and a pause, meant to be looped
func Chime() []byte {
	chimeOnce.Do(func() {
		chimeWAV = EncodeWAV(Mono, synthesize([]note{
			{freq: 880, duration: 0.18, volume: 0.6},
			{duration: 0.08},
			{freq: 1320, duration: 0.18, volume: 0.6},
			{duration: 0.6},
		}))
	})
	return chimeWAV
}

// Lullaby returns the sleeping music: a slow, soft arpeggio meant to be looped
func Lullaby() []byte {
	lullabyOnce.Do(func() {
		var notes []note
		for _, freq := range []float64{261.63, 329.63, 392.00, 329.63, 293.66, 349.23, 440.00, 349.23} {
			notes = append(notes, note{freq: freq, duration: 0.9, volume: 0.25})
		}
		notes = append(notes, note{duration: 0.6})
		lullabyWAV = EncodeWAV(Mono, synthesize(notes))
	})
	return lullabyWAV
}

// synthesize renders notes as 16-bit little-endian mono PCM with a short
// attack and release so notes do not click
func synthesize(notes []note) []byte {
	var total int
	for _, n := range notes {
		total += int(n.duration * SampleRate)
	}

	pcm := make([]byte, 0, total*2)
	for _, n := range notes {
		count := int(n.duration * SampleRate)
		ramp := min(count/2, SampleRate/100)

		for i := range count {
			var sample float64
			if n.freq > 0 {
				envelope := 1.0
				switch {
				case i < ramp:
					envelope = float64(i) / float64(ramp)
				case i >= count-ramp:
					envelope = float64(count-i) / float64(ramp)
				}
				sample = math.Sin(2*math.Pi*n.freq*float64(i)/SampleRate) * n.volume * envelope
			}
			pcm = binary.LittleEndian.AppendUint16(pcm, uint16(int16(sample*math.MaxInt16)))
		}
	}

	return pcm
}
