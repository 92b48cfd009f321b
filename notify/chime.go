package notify

import (
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/gopxl/beep/v2/speaker"
)

const sampleRate beep.SampleRate = 44100

// Chime plays a short two-note alert through the default audio device.
type Chime struct {
	initErr error
	once    sync.Once
}

// Play queues the chime and returns without waiting for it to finish.
func (c *Chime) Play() error {
	c.once.Do(func() {
		c.initErr = speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	})

	if c.initErr != nil {
		return c.initErr
	}

	stream, err := chimeStream()
	if err != nil {
		return err
	}

	speaker.Play(stream)

	return nil
}

// chimeStream builds the alert: two sine tones a fifth apart with a short
// gap between them.
func chimeStream() (beep.Streamer, error) {
	low, err := generators.SineTone(sampleRate, 880)
	if err != nil {
		return nil, err
	}

	high, err := generators.SineTone(sampleRate, 1320)
	if err != nil {
		return nil, err
	}

	note := sampleRate.N(250 * time.Millisecond)

	return &effects.Volume{
		Streamer: beep.Seq(
			beep.Take(note, low),
			beep.Silence(sampleRate.N(80*time.Millisecond)),
			beep.Take(note, high),
		),
		Base:   2,
		Volume: -2,
	}, nil
}
