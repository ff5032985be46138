package settings

import "time"

const (
	// Match shape
	MaxRounds      = 5
	IndicatorCount = 3
	PlayerOneName  = "Player 1"
	PlayerTwoName  = "Player 2"

	// Countdown hold range; each step is drawn independently
	MinCountdownHold = 500 * time.Millisecond
	MaxCountdownHold = 2000 * time.Millisecond

	// Input timing
	DebounceSettle = 50 * time.Millisecond
	PollInterval   = 1 * time.Millisecond
	ReleasePoll    = 10 * time.Millisecond

	// Display holds
	ResultHold = 2000 * time.Millisecond
	FinalHold  = 10000 * time.Millisecond

	// Button samples are traced at most this often per channel
	SampleLogInterval = 100 * time.Millisecond

	// 16x2 character display
	DisplayColumns = 16
	DisplayRows    = 2
)
