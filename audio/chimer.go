package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	chimeSampleRate = beep.SampleRate(44100)
	chimeFrequency  = 880.0

	dingDuration = 150 * time.Millisecond
	gapDuration  = 350 * time.Millisecond
)

// Chimer strikes the hour: one ding per hour on the twelve-hour dial.
// A Chimer built disabled, or one whose speaker failed to open, stays
// inert and Observe only tracks the hour rollover
type Chimer struct {
	mu       sync.Mutex
	ready    bool
	muted    bool
	lastHour int
}

// NewChimer opens the speaker when enabled. Speaker failure is not
// fatal, the clock runs silent
func NewChimer(enabled bool) *Chimer {
	c := &Chimer{lastHour: -1}
	if !enabled {
		return c
	}

	if err := speaker.Init(chimeSampleRate, chimeSampleRate.N(time.Second/10)); err != nil {
		log.Warn("audio initialization failed", "error", err)
		return c
	}
	c.ready = true
	return c
}

// Observe notes the currently displayed hour. On an hour change it
// strikes the chime and reports true. The first observation only arms
// the tracker, so starting mid-hour stays silent
func (c *Chimer) Observe(hour int) bool {
	c.mu.Lock()
	prev := c.lastHour
	c.lastHour = hour
	audible := c.ready && !c.muted
	c.mu.Unlock()

	if prev < 0 || prev == hour {
		return false
	}
	if audible {
		c.play(DingCount(hour))
	}
	return true
}

// DingCount maps an hour to its strike count on a twelve-hour dial
func DingCount(hour int) int {
	n := hour % 12
	if n == 0 {
		n = 12
	}
	return n
}

// play queues count dings separated by silence
func (c *Chimer) play(count int) {
	ding := chimeSampleRate.N(dingDuration)
	gap := chimeSampleRate.N(gapDuration)

	parts := make([]beep.Streamer, 0, 2*count)
	for i := 0; i < count; i++ {
		sine, err := generators.SineTone(chimeSampleRate, chimeFrequency)
		if err != nil {
			log.Error("chime tone generation failed", "error", err)
			return
		}
		parts = append(parts, beep.Take(ding, sine))
		if i < count-1 {
			parts = append(parts, beep.Silence(gap))
		}
	}
	speaker.Play(beep.Seq(parts...))
}

// Ready reports whether the speaker is open
func (c *Chimer) Ready() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ready
}

// Muted reports whether the chime is muted
func (c *Chimer) Muted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.muted
}

// ToggleMute flips the mute state and returns the new value
func (c *Chimer) ToggleMute() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.muted = !c.muted
	return c.muted
}

// Close releases the speaker
func (c *Chimer) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ready {
		speaker.Close()
		c.ready = false
	}
}
