package reconcile

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerPool(t *testing.T) {
	tests := []struct {
		name       string
		numTasks   int
		numWorkers int
		failing    int
	}{
		{name: "all tasks succeed", numTasks: 5, numWorkers: 2},
		{name: "failing task does not stop the pool", numTasks: 4, numWorkers: 2, failing: 1},
		{name: "zero size falls back to one worker", numTasks: 3, numWorkers: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wp := NewWorkerPool(tt.numWorkers)
			defer wp.Close()

			var executed, failed atomic.Int32
			var wg sync.WaitGroup
			for i := 0; i < tt.numTasks; i++ {
				wg.Add(1)
				i := i
				err := wp.AddTask(context.Background(), func() error {
					defer wg.Done()
					if i < tt.failing {
						failed.Add(1)
						return assert.AnError
					}
					time.Sleep(10 * time.Millisecond)
					executed.Add(1)
					return nil
				})
				require.NoError(t, err)
			}
			wg.Wait()

			assert.Equal(t, int32(tt.numTasks-tt.failing), executed.Load())
			assert.Equal(t, int32(tt.failing), failed.Load())
		})
	}
}

func TestWorkerPool_CanceledContext(t *testing.T) {
	wp := NewWorkerPool(1)
	defer wp.Close()

	started, block := make(chan struct{}), make(chan struct{})
	defer close(block)
	require.NoError(t, wp.AddTask(context.Background(), func() error {
		close(started)
		<-block
		return nil
	}))
	<-started
	// the only worker is busy and the queue is now full
	require.NoError(t, wp.AddTask(context.Background(), func() error { return nil }))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := wp.AddTask(ctx, func() error {
		t.Error("task should not be queued")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWorkerPool_CloseTwice(t *testing.T) {
	wp := NewWorkerPool(2)
	wp.Close()
	assert.NotPanics(t, wp.Close)
}

func TestWorkerPool_AddAfterClose(t *testing.T) {
	wp := NewWorkerPool(1)
	wp.Close()

	err := wp.AddTask(context.Background(), func() error {
		t.Error("task should not run")
		return nil
	})
	assert.ErrorIs(t, err, ErrPoolClosed)
}

func TestWorkerPool_CloseWhileAdding(t *testing.T) {
	wp := NewWorkerPool(1)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := wp.AddTask(context.Background(), func() error { return nil })
			if err != nil {
				assert.ErrorIs(t, err, ErrPoolClosed)
			}
		}()
	}
	assert.NotPanics(t, wp.Close)
	wg.Wait()
}
