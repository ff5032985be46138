// Package sim is a terminal stand-in for the board: the three indicator
// LEDs, the character panel, and two keyboard-driven buttons, so the game
// can run on a desktop without hardware.
package sim

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xrispmm/Reaction-game/hal"
	"github.com/xrispmm/Reaction-game/settings"
)

const (
	// How long a key tap holds the simulated button closed. Comfortably
	// longer than the debounce settle.
	pressDuration = 150 * time.Millisecond

	frameInterval = 33 * time.Millisecond

	KeyPlayerOne = "a"
	KeyPlayerTwo = "l"
)

// Hardware is the full simulated board.
type Hardware struct {
	Indicators []*hal.MemoryPin
	PlayerOne  *hal.MemoryPin
	PlayerTwo  *hal.MemoryPin
	Panel      *Display
}

func NewHardware() *Hardware {
	hw := &Hardware{
		PlayerOne: hal.NewMemoryPin(),
		PlayerTwo: hal.NewMemoryPin(),
		Panel:     NewDisplay(),
	}

	for i := 0; i < settings.IndicatorCount; i++ {
		hw.Indicators = append(hw.Indicators, hal.NewMemoryPin())
	}

	return hw
}

type frameMsg time.Time

type releaseMsg int

type Model struct {
	hw *Hardware
}

func NewModel(hw *Hardware) Model {
	return Model{hw: hw}
}

func (m Model) Init() tea.Cmd {
	return frame()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case KeyPlayerOne:
			m.hw.PlayerOne.High()
			return m, release(1)
		case KeyPlayerTwo:
			m.hw.PlayerTwo.High()
			return m, release(2)
		}

	case releaseMsg:
		if msg == 1 {
			m.hw.PlayerOne.Low()
		} else {
			m.hw.PlayerTwo.Low()
		}

	case frameMsg:
		return m, frame()
	}

	return m, nil
}

var (
	ledOn    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	ledOff   = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	panelBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Foreground(lipgloss.Color("42"))
	helpText = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func (m Model) View() string {
	var leds []string
	for _, p := range m.hw.Indicators {
		if p.Get() {
			leds = append(leds, ledOn.Render("●"))
		} else {
			leds = append(leds, ledOff.Render("○"))
		}
	}

	lines := m.hw.Panel.Lines()

	return lipgloss.JoinVertical(
		lipgloss.Center,
		strings.Join(leds, "   "),
		panelBox.Render(strings.Join(lines[:], "\n")),
		helpText.Render(KeyPlayerOne+": player 1   "+KeyPlayerTwo+": player 2   q: quit"),
	) + "\n"
}

func frame() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func release(player int) tea.Cmd {
	return tea.Tick(pressDuration, func(time.Time) tea.Msg {
		return releaseMsg(player)
	})
}
