package debounce

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWaitSingleCaller(t *testing.T) {
	g := NewGroup(5 * time.Millisecond)

	assert.True(t, g.Wait(context.Background(), "search"))
}

func TestWaitSupersededByNewerCall(t *testing.T) {
	g := NewGroup(50 * time.Millisecond)

	var wg sync.WaitGroup
	results := make([]bool, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0] = g.Wait(context.Background(), "search")
	}()

	// Let the first caller register before superseding it.
	time.Sleep(10 * time.Millisecond)

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[1] = g.Wait(context.Background(), "search")
	}()

	wg.Wait()
	assert.False(t, results[0], "older call should be superseded")
	assert.True(t, results[1], "latest call should win")
}

func TestWaitKeysAreIndependent(t *testing.T) {
	g := NewGroup(20 * time.Millisecond)

	var wg sync.WaitGroup
	var a, b bool

	wg.Add(2)
	go func() {
		defer wg.Done()
		a = g.Wait(context.Background(), "terminal-1")
	}()
	go func() {
		defer wg.Done()
		b = g.Wait(context.Background(), "terminal-2")
	}()

	wg.Wait()
	assert.True(t, a)
	assert.True(t, b)
}

func TestWaitCancelledContext(t *testing.T) {
	g := NewGroup(time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.False(t, g.Wait(ctx, "search"))
}
