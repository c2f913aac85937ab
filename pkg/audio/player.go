package audio

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

// oto allows one context per process, so the first sound played fixes the
// output format. Chime and Lullaby share Mono.
var speaker struct {
	once sync.Once
	ctx  *oto.Context
	err  error
}

func openSpeaker(format Format) (*oto.Context, error) {
	speaker.once.Do(func() {
		if format.BitDepth != 16 {
			speaker.err = fmt.Errorf("unsupported bit depth %d", format.BitDepth)
			return
		}

		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   format.SampleRate,
			ChannelCount: format.Channels,
			Format:       oto.FormatSignedInt16LE,
		})
		if err != nil {
			speaker.err = err
			return
		}
		<-ready

		speaker.ctx = ctx
		log.Printf("Audio output opened at %d Hz, %d channel(s)", format.SampleRate, format.Channels)
	})

	if speaker.err != nil {
		return nil, speaker.err
	}
	if speaker.ctx == nil {
		return nil, errors.New("audio output unavailable")
	}
	return speaker.ctx, nil
}

// Player repeats one sound until Stop is called
type Player struct {
	mu      sync.Mutex
	current *oto.Player
	done    chan struct{}
	stopped bool
}

// PlayLoop starts looping wav in the background. It returns nil when the
// data is not usable WAV or there is no audio device.
func PlayLoop(wav []byte) *Player {
	format, pcm, err := DecodeWAV(wav)
	if err != nil {
		log.Printf("Failed to decode sound: %v", err)
		return nil
	}

	ctx, err := openSpeaker(format)
	if err != nil {
		log.Printf("Failed to open audio output: %v", err)
		return nil
	}

	p := &Player{done: make(chan struct{})}
	go p.loop(ctx, pcm)
	return p
}

func (p *Player) loop(ctx *oto.Context, pcm []byte) {
	poll := time.NewTicker(10 * time.Millisecond)
	defer poll.Stop()

	for {
		current := ctx.NewPlayer(bytes.NewReader(pcm))

		p.mu.Lock()
		if p.stopped {
			p.mu.Unlock()
			current.Close()
			return
		}
		p.current = current
		p.mu.Unlock()

		current.Play()
		for current.IsPlaying() {
			select {
			case <-p.done:
				current.Pause()
				current.Close()
				return
			case <-poll.C:
			}
		}

		if err := current.Close(); err != nil {
			log.Printf("Failed to close audio player: %v", err)
		}
	}
}

// Stop ends playback. Safe on a nil Player and safe to repeat.
func (p *Player) Stop() {
	if p == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stopped {
		return
	}
	p.stopped = true
	close(p.done)

	if p.current != nil {
		p.current.Pause()
	}
}
