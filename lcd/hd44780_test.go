package lcd

import "testing"

// busRecorder reconstructs the 4-bit bus traffic by sampling the data and
// RS lines on every falling edge of E.
type busRecorder struct {
	rs     bool
	en     bool
	data   [4]bool
	writes []busWrite
}

type busWrite struct {
	value  byte
	isData bool
}

func (r *busRecorder) set(role int, high bool) {
	switch role {
	case roleRS:
		r.rs = high
	case roleEN:
		if r.en && !high {
			var v byte
			for i, b := range r.data {
				if b {
					v |= 1 << i
				}
			}

			r.writes = append(r.writes, busWrite{value: v, isData: r.rs})
		}

		r.en = high
	default:
		r.data[role] = high
	}
}

const (
	roleRS = -1
	roleEN = -2
)

type busPin struct {
	r    *busRecorder
	role int
}

func (p busPin) Set(high bool) { p.r.set(p.role, high) }
func (p busPin) High()         { p.Set(true) }
func (p busPin) Low()          { p.Set(false) }

func recordedPanel() (*HD44780, *busRecorder) {
	r := &busRecorder{}
	l := New(
		busPin{r, roleRS}, busPin{r, roleEN},
		busPin{r, 0}, busPin{r, 1}, busPin{r, 2}, busPin{r, 3},
	)

	return l, r
}

// bytesAfterWakeup pairs nibbles into bytes, skipping the four wake-up
// knock nibbles at the start of an Init.
func bytesAfterWakeup(writes []busWrite) []busWrite {
	return pairBytes(writes[4:])
}

func TestInitSequence(t *testing.T) {
	l, r := recordedPanel()
	l.Init()

	knock := []byte{0x03, 0x03, 0x03, 0x02}
	for i, want := range knock {
		if r.writes[i].value != want || r.writes[i].isData {
			t.Fatalf("wake-up nibble %v = %+v, expected command %#x", i, r.writes[i], want)
		}
	}

	cmds := bytesAfterWakeup(r.writes)
	want := []byte{cmdFunctionSet, cmdDisplayOn, cmdEntryMode, cmdClear}
	if len(cmds) != len(want) {
		t.Fatalf("expected %v commands after wake-up, got %v", len(want), len(cmds))
	}

	for i, w := range want {
		if cmds[i].value != w || cmds[i].isData {
			t.Fatalf("command %v = %+v, expected %#x", i, cmds[i], w)
		}
	}
}

func TestPrintSendsData(t *testing.T) {
	l, r := recordedPanel()
	l.Init()
	r.writes = nil

	l.Print("Hi")

	got := pairBytes(r.writes)
	if len(got) != 2 {
		t.Fatalf("expected 2 data bytes, got %v", got)
	}

	if got[0].value != 'H' || got[1].value != 'i' {
		t.Fatalf("data bytes = %+v, expected 'H' 'i'", got)
	}

	for i, w := range got {
		if !w.isData {
			t.Fatalf("byte %v sent with RS low", i)
		}
	}
}

func TestSetCursorAddressing(t *testing.T) {
	tests := map[string]struct {
		Col, Row int
		Want     byte
	}{
		"origin":       {Col: 0, Row: 0, Want: 0x80},
		"top centered": {Col: 4, Row: 0, Want: 0x84},
		"second row":   {Col: 0, Row: 1, Want: 0xC0},
		"row clamped":  {Col: 2, Row: 5, Want: 0xC2},
		"negative row": {Col: 1, Row: -1, Want: 0x81},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			l, r := recordedPanel()
			l.SetCursor(test.Col, test.Row)

			got := pairBytes(r.writes)
			if len(got) != 1 || got[0].value != test.Want || got[0].isData {
				t.Fatalf("SetCursor(%v, %v) wrote %+v, expected command %#x", test.Col, test.Row, got, test.Want)
			}
		})
	}
}

func pairBytes(writes []busWrite) []busWrite {
	var out []busWrite
	for i := 0; i+1 < len(writes); i += 2 {
		out = append(out, busWrite{
			value:  writes[i].value<<4 | writes[i+1].value,
			isData: writes[i].isData,
		})
	}

	return out
}
