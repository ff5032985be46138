// Package hal abstracts the board's digital I/O so the game logic can run
// against real GPIO, the terminal simulator, or test fakes.
package hal

import "sync"

// InputPin is a digital input line.
type InputPin interface {
	// Get reads the current logic level: true is pressed/high.
	Get() bool
}

// OutputPin is a digital output line.
type OutputPin interface {
	Set(high bool)
	High()
	Low()
}

// MemoryPin is an in-memory pin backing the simulator and tests. It is safe
// to drive from one goroutine and read from another.
type MemoryPin struct {
	mu    sync.Mutex
	state bool
}

func NewMemoryPin() *MemoryPin {
	return &MemoryPin{}
}

func (p *MemoryPin) Get() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.state
}

func (p *MemoryPin) Set(high bool) {
	p.mu.Lock()
	p.state = high
	p.mu.Unlock()
}

func (p *MemoryPin) High() { p.Set(true) }
func (p *MemoryPin) Low()  { p.Set(false) }
