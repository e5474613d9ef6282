package utils

import (
	"hash/fnv"
	"math/rand"
	"strings"
)

// SeededRand returns a generator owned by the caller. Provider fallbacks
// that must be stable per destination seed it from the destination key
// instead of touching the shared generator.
func SeededRand(seed string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(strings.ToLower(seed)))
	return rand.New(rand.NewSource(int64(h.Sum64())))
}
