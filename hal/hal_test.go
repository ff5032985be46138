package hal

import "testing"

func TestMemoryPin(t *testing.T) {
	p := NewMemoryPin()
	if p.Get() {
		t.Fatal("new pin should be low")
	}

	p.High()
	if !p.Get() {
		t.Fatal("pin should be high after High")
	}

	p.Low()
	if p.Get() {
		t.Fatal("pin should be low after Low")
	}

	p.Set(true)
	if !p.Get() {
		t.Fatal("pin should be high after Set(true)")
	}
}
