package lib

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// GetRandomInt returns a random int in [min, max).
func GetRandomInt(min, max int) (int, error) {
	if max-min <= 0 {
		return 0, fmt.Errorf("tried to get random int between [0, %v)", max-min)
	}

	bg := big.NewInt(int64(max - min))
	n, err := rand.Int(rand.Reader, bg)
	if err != nil {
		return 0, err
	}

	return int(n.Int64()) + min, nil
}

// RandomDuration returns a random duration in [min, max], millisecond
// granularity. Falls back to min if the random source fails.
func RandomDuration(min, max time.Duration) time.Duration {
	lo := int(min / time.Millisecond)
	hi := int(max / time.Millisecond)

	n, err := GetRandomInt(lo, hi+1)
	if err != nil {
		return min
	}

	return time.Duration(n) * time.Millisecond
}
