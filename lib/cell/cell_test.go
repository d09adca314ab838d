package cell

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetReturnsInitial(t *testing.T) {
	c := New("en")
	assert.Equal(t, "en", c.Get())
}

func TestGetReturnsLatestSet(t *testing.T) {
	c := New("en")
	c.Set("fr")
	c.Set("es")
	assert.Equal(t, "es", c.Get())
}

func TestGetterDefersResolution(t *testing.T) {
	c := New(1)
	get := c.Get

	c.Set(2)

	assert.Equal(t, 2, get())
}

func TestSetDoesNotAlias(t *testing.T) {
	type pair struct{ A, B int }
	c := New(pair{1, 2})

	v := c.Get()
	v.A = 10

	assert.Equal(t, pair{1, 2}, c.Get())
}

func TestConcurrentReaders(t *testing.T) {
	c := New(0)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				v := c.Get()
				assert.GreaterOrEqual(t, v, 0)
			}
		}()
	}
	for i := 1; i <= 100; i++ {
		c.Set(i)
	}
	wg.Wait()
	assert.Equal(t, 100, c.Get())
}
