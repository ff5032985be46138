package sim

import (
	"strings"
	"sync"

	"github.com/xrispmm/Reaction-game/settings"
)

// Display is the simulator's 16x2 panel: a character buffer the game writes
// through the game.Display interface and the TUI renders each frame.
type Display struct {
	mu   sync.Mutex
	rows [settings.DisplayRows][]rune
	col  int
	row  int
}

func NewDisplay() *Display {
	d := &Display{}
	d.reset()

	return d
}

func (d *Display) Init() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.col, d.row = 0, 0
}

func (d *Display) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.reset()
	d.col, d.row = 0, 0
}

func (d *Display) SetCursor(col, row int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if col < 0 {
		col = 0
	}

	if row < 0 {
		row = 0
	}

	if row >= settings.DisplayRows {
		row = settings.DisplayRows - 1
	}

	d.col, d.row = col, row
}

// Print writes from the cursor, dropping anything past the panel edge the
// way the real module does without scrolling.
func (d *Display) Print(text string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, r := range text {
		if d.col >= settings.DisplayColumns {
			break
		}

		d.rows[d.row][d.col] = r
		d.col++
	}
}

// Lines snapshots the panel contents for rendering.
func (d *Display) Lines() [settings.DisplayRows]string {
	d.mu.Lock()
	defer d.mu.Unlock()

	var out [settings.DisplayRows]string
	for i, row := range d.rows {
		out[i] = string(row)
	}

	return out
}

func (d *Display) reset() {
	for i := range d.rows {
		d.rows[i] = []rune(strings.Repeat(" ", settings.DisplayColumns))
	}
}
