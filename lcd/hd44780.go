// Package lcd drives an HD44780-compatible 16x2 character panel in 4-bit
// mode over six GPIO lines.
package lcd

import (
	"time"

	"github.com/xrispmm/Reaction-game/hal"
)

// HD44780 instruction set (write-only wiring, busy flag never read)
const (
	cmdClear       = 0x01
	cmdEntryMode   = 0x06 // increment cursor, no display shift
	cmdDisplayOn   = 0x0C // display on, cursor and blink off
	cmdFunctionSet = 0x28 // 4-bit bus, 2 lines, 5x8 font
	cmdSetDDRAM    = 0x80
)

var rowOffsets = [2]byte{0x00, 0x40}

type HD44780 struct {
	rs   hal.OutputPin
	en   hal.OutputPin
	data [4]hal.OutputPin // D4..D7
}

func New(rs, en, d4, d5, d6, d7 hal.OutputPin) *HD44780 {
	return &HD44780{rs: rs, en: en, data: [4]hal.OutputPin{d4, d5, d6, d7}}
}

// Init runs the standard 4-bit wake-up sequence. It is safe to repeat; the
// game re-arms the panel before every message.
func (l *HD44780) Init() {
	l.rs.Low()
	l.en.Low()
	time.Sleep(15 * time.Millisecond)

	// Three 8-bit function-set knocks, then the switch to 4-bit mode
	l.writeNibble(0x03)
	time.Sleep(5 * time.Millisecond)
	l.writeNibble(0x03)
	time.Sleep(150 * time.Microsecond)
	l.writeNibble(0x03)
	time.Sleep(150 * time.Microsecond)
	l.writeNibble(0x02)
	time.Sleep(150 * time.Microsecond)

	l.command(cmdFunctionSet)
	l.command(cmdDisplayOn)
	l.command(cmdEntryMode)
	l.Clear()
}

func (l *HD44780) Clear() {
	l.command(cmdClear)

	// Clear is the one instruction with a long busy window
	time.Sleep(2 * time.Millisecond)
}

func (l *HD44780) SetCursor(col, row int) {
	if row < 0 {
		row = 0
	}

	if row >= len(rowOffsets) {
		row = len(rowOffsets) - 1
	}

	l.command(cmdSetDDRAM | (rowOffsets[row] + byte(col)))
}

func (l *HD44780) Print(text string) {
	for i := 0; i < len(text); i++ {
		l.write(text[i], true)
	}
}

func (l *HD44780) command(b byte) {
	l.write(b, false)
}

func (l *HD44780) write(b byte, isData bool) {
	l.rs.Set(isData)
	l.writeNibble(b >> 4)
	l.writeNibble(b & 0x0F)
	time.Sleep(50 * time.Microsecond)
}

func (l *HD44780) writeNibble(n byte) {
	for i, pin := range l.data {
		pin.Set(n&(1<<i) != 0)
	}

	l.pulse()
}

// pulse clocks the current nibble into the panel on the falling edge of E.
func (l *HD44780) pulse() {
	l.en.High()
	time.Sleep(time.Microsecond)
	l.en.Low()
	time.Sleep(50 * time.Microsecond)
}
