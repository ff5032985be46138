package lib

import (
	"testing"
	"time"
)

func TestGetRandomInt_Bounds(t *testing.T) {
	for i := 0; i < 1000; i++ {
		n, err := GetRandomInt(5, 10)
		if err != nil {
			t.Fatal(err)
		}

		if n < 5 || n >= 10 {
			t.Fatalf("value %v outside [5, 10)", n)
		}
	}
}

func TestGetRandomInt_EmptyRange(t *testing.T) {
	if _, err := GetRandomInt(10, 10); err == nil {
		t.Fatal("expected error for empty range")
	}
}

func TestRandomDuration_Bounds(t *testing.T) {
	min := 500 * time.Millisecond
	max := 2000 * time.Millisecond

	for i := 0; i < 1000; i++ {
		d := RandomDuration(min, max)
		if d < min || d > max {
			t.Fatalf("duration %v outside [%v, %v]", d, min, max)
		}
	}
}
