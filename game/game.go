package game

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/xrispmm/Reaction-game/hal"
	"github.com/xrispmm/Reaction-game/settings"
)

// MatchState is the controller-owned score sheet. It is mutated only
// between rounds and on scoring events, in program order.
type MatchState struct {
	PlayerOneScore int
	PlayerTwoScore int
	RoundCount     int
	Active         bool
}

type Config struct {
	Display    Display
	Indicators []hal.OutputPin
	PlayerOne  *Button
	PlayerTwo  *Button
	Holds      HoldSource

	MaxRounds    int
	PollInterval time.Duration
	ReleasePoll  time.Duration
	ResultHold   time.Duration
	FinalHold    time.Duration
}

// Game runs one match: Idle until both buttons are held, then MaxRounds
// numbered rounds, then the verdict screen.
type Game struct {
	Config

	screen *Screen
	engine *Engine
	state  MatchState
}

func NewGame(cfg Config) *Game {
	if cfg.MaxRounds == 0 {
		cfg.MaxRounds = settings.MaxRounds
	}

	if cfg.PollInterval == 0 {
		cfg.PollInterval = settings.PollInterval
	}

	if cfg.ReleasePoll == 0 {
		cfg.ReleasePoll = settings.ReleasePoll
	}

	if cfg.ResultHold == 0 {
		cfg.ResultHold = settings.ResultHold
	}

	if cfg.FinalHold == 0 {
		cfg.FinalHold = settings.FinalHold
	}

	return &Game{
		Config: cfg,
		screen: NewScreen(cfg.Display),
		engine: NewEngine(cfg.Indicators, cfg.PlayerOne, cfg.PlayerTwo, cfg.Holds, cfg.PollInterval),
	}
}

// State returns a copy of the match state. Call it after Run returns; the
// game loop owns the state while it is running.
func (g *Game) State() MatchState {
	return g.state
}

// Run plays one full match and returns when the verdict screen has been
// held. It returns early only when ctx is cancelled while Idle or between
// rounds; delays and rounds in flight always run to completion.
func (g *Game) Run(ctx context.Context) error {
	if err := g.idle(ctx); err != nil {
		return err
	}

	g.start()

	for round := 1; round <= g.MaxRounds; round++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		g.playRound(round)
	}

	g.finish()
	return nil
}

func (g *Game) idle(ctx context.Context) error {
	log.Info("idle: waiting for both buttons")
	g.setIndicators(false)
	g.screen.Show("Start Game", "Press both")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		// The start condition is the live debounced level on both
		// channels, not the latches.
		if g.PlayerOne.Held() && g.PlayerTwo.Held() {
			break
		}

		time.Sleep(g.PollInterval)
	}

	// Don't carry the start press into round one.
	log.Debug("start pressed, waiting for release")
	for g.PlayerOne.Raw() || g.PlayerTwo.Raw() {
		time.Sleep(g.ReleasePoll)
	}

	g.PlayerOne.Clear()
	g.PlayerTwo.Clear()
	return nil
}

func (g *Game) start() {
	g.state = MatchState{Active: true}
	log.Info("match started")
}

// playRound plays the numbered round until it resolves by reaction. An
// early press is a penalty point for the opponent and a retry of the same
// round; the round count never advances on a retry.
func (g *Game) playRound(round int) {
	g.state.RoundCount = round

	for {
		g.screen.ShowRound(round, g.state.PlayerOneScore, g.state.PlayerTwoScore)
		log.Infof("round %v starting (score %v)", round, g.scoreLine())

		outcome := g.engine.Play()
		g.award(outcome)
		g.showOutcome(outcome)

		time.Sleep(g.ResultHold)
		g.PlayerOne.Clear()
		g.PlayerTwo.Clear()

		if !outcome.EarlyPress() {
			return
		}

		log.Infof("round %v replayed after %v", round, outcome)
	}
}

func (g *Game) award(outcome Outcome) {
	switch outcome {
	case PlayerTwoEarlyPress, PlayerOneReacted:
		g.state.PlayerOneScore++
	case PlayerOneEarlyPress, PlayerTwoReacted:
		g.state.PlayerTwoScore++
	}

	log.Infof("outcome: %v, score now %v", outcome, g.scoreLine())
}

func (g *Game) showOutcome(outcome Outcome) {
	switch outcome {
	case PlayerOneEarlyPress:
		g.screen.Show("Too soon!", settings.PlayerTwoName+" +1")
	case PlayerTwoEarlyPress:
		g.screen.Show("Too soon!", settings.PlayerOneName+" +1")
	case PlayerOneReacted:
		g.screen.Show(settings.PlayerOneName+" +1", g.scoreLine())
	case PlayerTwoReacted:
		g.screen.Show(settings.PlayerTwoName+" +1", g.scoreLine())
	}
}

func (g *Game) finish() {
	g.state.Active = false
	verdict := Verdict(g.state)
	log.Infof("match over: %v (%v)", verdict, g.scoreLine())

	g.setIndicators(false)
	g.screen.Show(verdict, g.scoreLine())
	time.Sleep(g.FinalHold)

	g.PlayerOne.Clear()
	g.PlayerTwo.Clear()
}

func (g *Game) scoreLine() string {
	return fmt.Sprintf("%v - %v", g.state.PlayerOneScore, g.state.PlayerTwoScore)
}

func (g *Game) setIndicators(on bool) {
	for _, p := range g.Indicators {
		p.Set(on)
	}
}

// Verdict names the result of a finished match.
func Verdict(s MatchState) string {
	switch {
	case s.PlayerOneScore > s.PlayerTwoScore:
		return settings.PlayerOneName + " wins!"
	case s.PlayerTwoScore > s.PlayerOneScore:
		return settings.PlayerTwoName + " wins!"
	default:
		return "It's a tie!"
	}
}
