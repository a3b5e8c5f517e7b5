package random

import (
	"math/rand"
	"sync"
	"time"
)

// Source is the random capability shared by the selector and the mock scorer
type Source interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Locked is a seedable *rand.Rand safe for concurrent use
type Locked struct {
	mu sync.Mutex
	r  *rand.Rand
}

// New creates a locked source. A zero seed picks a time based seed.
func New(seed int64) *Locked {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Locked{r: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform int in [0, n)
func (l *Locked) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

// Shuffle performs a Fisher-Yates shuffle of n elements
func (l *Locked) Shuffle(n int, swap func(i, j int)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := n - 1; i > 0; i-- {
		j := l.r.Intn(i + 1)
		swap(i, j)
	}
}
