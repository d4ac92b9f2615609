package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleFlight_CollapsesConcurrentCalls(t *testing.T) {
	var g SingleFlight[string]
	var calls atomic.Int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			got, err, _ := g.Do("dataset", func() (string, error) {
				calls.Add(1)
				time.Sleep(20 * time.Millisecond)
				return "ok", nil
			})
			assert.NoError(t, err)
			assert.Equal(t, "ok", got)
		}()
	}

	close(start)
	wg.Wait()

	assert.EqualValues(t, 1, calls.Load())
}

func TestSingleFlight_PanicBecomesError(t *testing.T) {
	var g SingleFlight[int]

	_, err, _ := g.Do("boom", func() (int, error) {
		panic("loader exploded")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loader exploded")

	got, err, _ := g.Do("boom", func() (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestSingleFlight_ForgetStartsNewCall(t *testing.T) {
	var g SingleFlight[int]
	release := make(chan struct{})
	started := make(chan struct{})

	go func() {
		_, _, _ = g.Do("dataset", func() (int, error) {
			close(started)
			<-release
			return 1, nil
		})
	}()
	<-started

	g.Forget("dataset")
	got, err, shared := g.Do("dataset", func() (int, error) { return 2, nil })
	close(release)

	require.NoError(t, err)
	assert.False(t, shared)
	assert.Equal(t, 2, got)
}
