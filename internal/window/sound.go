package window

import (
	"github.com/hajimehoshi/ebiten/v2/audio"

	"pong/internal/assets"
	"pong/internal/physics"
)

// Sounds plays an effect for every bounce and for the lost ball.
type Sounds struct {
	players map[assets.Effect]*audio.Player
}

func NewSounds() *Sounds {
	ctx := audio.NewContext(assets.SampleRate)
	s := &Sounds{players: make(map[assets.Effect]*audio.Player, len(assets.Tones))}
	for effect, tone := range assets.Tones {
		p := ctx.NewPlayerFromBytes(tone.PCM(assets.SampleRate))
		p.SetVolume(0.5)
		s.players[effect] = p
	}
	return s
}

// Play picks the loudest event in r.
func (s *Sounds) Play(r physics.Report) {
	switch {
	case r.Ended:
		s.play(assets.EffectLost)
	case r.Count(physics.PaddleBounce) > 0:
		s.play(assets.EffectPaddle)
	case r.Count(physics.WallBounce) > 0:
		s.play(assets.EffectWall)
	}
}

func (s *Sounds) play(e assets.Effect) {
	p, ok := s.players[e]
	if !ok {
		return
	}
	if err := p.Rewind(); err != nil {
		return
	}
	p.Play()
}
