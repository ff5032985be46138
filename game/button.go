package game

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/xrispmm/Reaction-game/hal"
	"github.com/xrispmm/Reaction-game/settings"
)

// Button is one player's debounced input channel. The latch is set on a
// committed release-to-press transition and stays set until the owner calls
// Clear; sampling never drops it.
type Button struct {
	name       string
	pin        hal.InputPin
	settle     time.Duration
	lastStable bool
	latched    bool
	lastTrace  time.Time
}

func NewButton(name string, pin hal.InputPin, settle time.Duration) *Button {
	if settle == 0 {
		settle = settings.DebounceSettle
	}

	return &Button{name: name, pin: pin, settle: settle}
}

// Sample runs one blocking debounce check and reports the latch. A reading
// that differs from the stable state is re-read after the settle interval
// and committed only if it persists.
func (b *Button) Sample() bool {
	raw := b.pin.Get()
	if raw != b.lastStable {
		time.Sleep(b.settle)
		if b.pin.Get() == raw {
			b.lastStable = raw
			if raw {
				b.latched = true
				log.Debugf("%v pressed", b.name)
			}
		}
	}

	b.trace(raw)
	return b.latched
}

// Held reports the live debounced level rather than the latch. The
// controller uses this for the start condition.
func (b *Button) Held() bool {
	b.Sample()
	return b.lastStable
}

// Raw reports the unfiltered pin level.
func (b *Button) Raw() bool {
	return b.pin.Get()
}

// Latched reports the latch without touching the pin.
func (b *Button) Latched() bool {
	return b.latched
}

// Clear drops the latch. Only the round engine and the controller call this.
func (b *Button) Clear() {
	b.latched = false
}

func (b *Button) Name() string {
	return b.name
}

func (b *Button) trace(raw bool) {
	if time.Since(b.lastTrace) < settings.SampleLogInterval {
		return
	}

	b.lastTrace = time.Now()
	log.Tracef("%v sample: raw=%v stable=%v latched=%v", b.name, raw, b.lastStable, b.latched)
}
