package random

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocked_Seeded(t *testing.T) {
	a, b := New(99), New(99)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}

	x := []int{1, 2, 3, 4, 5, 6}
	y := []int{1, 2, 3, 4, 5, 6}
	a.Shuffle(len(x), func(i, j int) { x[i], x[j] = x[j], x[i] })
	b.Shuffle(len(y), func(i, j int) { y[i], y[j] = y[j], y[i] })
	assert.Equal(t, x, y)
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6}, x)
}

func TestLocked_Concurrent(t *testing.T) {
	r := New(1)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				v := r.Intn(5)
				assert.True(t, v >= 0 && v < 5)
			}
		}()
	}
	wg.Wait()
}
