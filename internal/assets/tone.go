// Package assets generates the game's sound effects. Nothing is loaded from
// disk; every effect is a short square wave.
package assets

import (
	"math"
	"time"
)

// SampleRate of every generated effect.
const SampleRate = 44100

// Effect names a sound.
type Effect int

const (
	EffectWall Effect = iota
	EffectPaddle
	EffectLost
)

// Tone is a square-wave beep.
type Tone struct {
	Freq     float64
	Duration time.Duration
	Volume   float64 // 0..1
}

// Tones used for each effect.
var Tones = map[Effect]Tone{
	EffectWall:   {Freq: 220, Duration: 40 * time.Millisecond, Volume: 0.1},
	EffectPaddle: {Freq: 440, Duration: 60 * time.Millisecond, Volume: 0.15},
	EffectLost:   {Freq: 110, Duration: 400 * time.Millisecond, Volume: 0.2},
}

// PCM renders t as 16-bit little-endian stereo samples at sampleRate.
// The last 10% of the tone fades out to avoid a click.
func (t Tone) PCM(sampleRate int) []byte {
	n := int(t.Duration.Seconds() * float64(sampleRate))
	buf := make([]byte, n*4)
	fade := n / 10
	for i := 0; i < n; i++ {
		phase := int(float64(i) * t.Freq * 2 / float64(sampleRate))
		val := t.Volume
		if phase%2 == 1 {
			val = -val
		}
		if left := n - i; fade > 0 && left < fade {
			val *= float64(left) / float64(fade)
		}

		v := int16(math.Round(val * math.MaxInt16))
		buf[i*4] = byte(v)
		buf[i*4+1] = byte(v >> 8)
		buf[i*4+2] = byte(v)
		buf[i*4+3] = byte(v >> 8)
	}
	return buf
}
