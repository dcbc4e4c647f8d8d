package timer

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoopDeliversCalls(t *testing.T) {
	loop := NewLoop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go loop.Run(ctx)

	var n atomic.Int32

	stop := loop.Every(5*time.Millisecond, func() {
		n.Add(1)
	})

	require.Eventually(t, func() bool {
		return n.Load() >= 3
	}, time.Second, time.Millisecond)

	stop()
	stop()

	after := n.Load()

	time.Sleep(30 * time.Millisecond)

	assert.LessOrEqual(t, n.Load(), after+1)
}

func TestLoopCancelBeforeFirstTick(t *testing.T) {
	loop := NewLoop()

	var n atomic.Int32

	stop := loop.Every(time.Millisecond, func() {
		n.Add(1)
	})
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	loop.Run(ctx)

	assert.Zero(t, n.Load())
}
