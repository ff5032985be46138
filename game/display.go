package game

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/xrispmm/Reaction-game/settings"
)

// Display is the character panel the game reports through. Implementations
// must tolerate repeated Init calls: the controller re-arms the panel before
// every message in case it reset since the last write.
type Display interface {
	Init()
	Clear()
	SetCursor(col, row int)
	Print(text string)
}

// Screen formats game messages for the 16x2 panel: centered lines, panel
// re-armed before each message.
type Screen struct {
	d Display
}

func NewScreen(d Display) *Screen {
	return &Screen{d: d}
}

// Show writes up to two centered lines. An empty bottom line leaves the
// second row blank.
func (s *Screen) Show(top, bottom string) {
	s.d.Init()
	s.d.Clear()
	s.d.SetCursor(centerCol(top), 0)
	s.d.Print(top)

	if bottom != "" {
		s.d.SetCursor(centerCol(bottom), 1)
		s.d.Print(bottom)
	}

	log.Debugf("display: %q / %q", top, bottom)
}

func (s *Screen) ShowRound(round, oneScore, twoScore int) {
	s.Show(fmt.Sprintf("Round %v", round), fmt.Sprintf("%v - %v", oneScore, twoScore))
}

// centerCol is the start column for a centered line: (width-len)/2, floored,
// never negative for over-wide text.
func centerCol(text string) int {
	pad := (settings.DisplayColumns - len(text)) / 2
	if pad < 0 {
		pad = 0
	}

	return pad
}
