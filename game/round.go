package game

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/xrispmm/Reaction-game/hal"
	"github.com/xrispmm/Reaction-game/lib"
	"github.com/xrispmm/Reaction-game/settings"
)

// Outcome is the single result of one round-engine invocation.
type Outcome int

const (
	PlayerOneEarlyPress Outcome = iota
	PlayerTwoEarlyPress
	PlayerOneReacted
	PlayerTwoReacted
)

func (o Outcome) String() string {
	switch o {
	case PlayerOneEarlyPress:
		return "player 1 early press"
	case PlayerTwoEarlyPress:
		return "player 2 early press"
	case PlayerOneReacted:
		return "player 1 reacted"
	case PlayerTwoReacted:
		return "player 2 reacted"
	default:
		return "unknown outcome"
	}
}

// EarlyPress reports whether the outcome is a countdown penalty.
func (o Outcome) EarlyPress() bool {
	return o == PlayerOneEarlyPress || o == PlayerTwoEarlyPress
}

// HoldSource supplies countdown hold durations.
type HoldSource interface {
	NextHold() time.Duration
}

// RandomHolds draws each hold independently and uniformly from the
// configured countdown range.
type RandomHolds struct{}

func (RandomHolds) NextHold() time.Duration {
	return lib.RandomDuration(settings.MinCountdownHold, settings.MaxCountdownHold)
}

// Engine plays single rounds: light all indicators, hold each one for a
// random duration while watching for an early press, then race the two
// buttons once the last light goes out.
type Engine struct {
	indicators []hal.OutputPin
	one        *Button
	two        *Button
	holds      HoldSource
	poll       time.Duration
}

func NewEngine(indicators []hal.OutputPin, one, two *Button, holds HoldSource, poll time.Duration) *Engine {
	if holds == nil {
		holds = RandomHolds{}
	}

	if poll == 0 {
		poll = settings.PollInterval
	}

	return &Engine{
		indicators: indicators,
		one:        one,
		two:        two,
		holds:      holds,
		poll:       poll,
	}
}

// Play runs one round to its outcome. An early press during the countdown
// abandons the round: lights out, both latches dropped, the presser
// reported. Otherwise the first latch after the countdown wins.
func (e *Engine) Play() Outcome {
	e.setAll(true)

	for i, indicator := range e.indicators {
		hold := e.holds.NextHold()
		log.Debugf("countdown step %v holding for %v", i+1, hold)

		deadline := time.Now().Add(hold)
		for time.Now().Before(deadline) {
			if out, pressed := e.checkEarly(); pressed {
				return out
			}

			time.Sleep(e.poll)
		}

		// The light only goes out once its own hold elapsed cleanly.
		indicator.Low()
	}

	log.Debug("countdown finished, waiting for a reaction")
	for {
		// Player 1's channel is polled first, so a same-poll double
		// latch always resolves to player 1.
		if e.one.Sample() {
			return PlayerOneReacted
		}

		if e.two.Sample() {
			return PlayerTwoReacted
		}

		time.Sleep(e.poll)
	}
}

func (e *Engine) checkEarly() (Outcome, bool) {
	if e.one.Sample() {
		e.abandon()
		return PlayerOneEarlyPress, true
	}

	if e.two.Sample() {
		e.abandon()
		return PlayerTwoEarlyPress, true
	}

	return 0, false
}

// abandon kills the countdown: no indicator ever reaches the reaction
// phase, and both latches are consumed.
func (e *Engine) abandon() {
	e.setAll(false)
	e.one.Clear()
	e.two.Clear()
}

func (e *Engine) setAll(on bool) {
	for _, p := range e.indicators {
		p.Set(on)
	}
}
