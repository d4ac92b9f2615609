package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (string, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if v != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore[int](time.Minute)
	var calls atomic.Int32

	failing := func(context.Context) (int, error) {
		calls.Add(1)
		return 0, errors.New("source down")
	}

	if _, err := store.GetOrLoad(context.Background(), "k", failing); err == nil {
		t.Fatalf("expected load error")
	}
	if _, err := store.GetOrLoad(context.Background(), "k", failing); err == nil {
		t.Fatalf("expected load error")
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("loader called %d times, want 2", got)
	}
	if store.Len() != 0 {
		t.Fatalf("failed load must not be stored")
	}
}

func TestStore_ExpiresEntries(t *testing.T) {
	t.Parallel()

	store := NewStore[string](time.Minute)
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "k", "v")
	if _, ok := store.Get(context.Background(), "k"); !ok {
		t.Fatalf("expected fresh entry")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatalf("expected entry to expire")
	}
}

func TestStore_DeleteDropsStaleLoad(t *testing.T) {
	t.Parallel()

	store := NewStore[string](0)
	ctx := context.Background()
	started := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		v, err := store.GetOrLoad(ctx, "dataset", func(context.Context) (string, error) {
			close(started)
			<-release
			return "stale", nil
		})
		if err != nil || v != "stale" {
			t.Errorf("in-flight caller got %q, %v", v, err)
		}
	}()
	<-started

	store.Delete(ctx, "dataset")
	close(release)
	<-done

	if _, ok := store.Get(ctx, "dataset"); ok {
		t.Fatalf("load started before Delete must not be cached")
	}

	v, err := store.GetOrLoad(ctx, "dataset", func(context.Context) (string, error) {
		return "fresh", nil
	})
	if err != nil || v != "fresh" {
		t.Fatalf("expected fresh reload, got %q, %v", v, err)
	}
	if got, ok := store.Get(ctx, "dataset"); !ok || got != "fresh" {
		t.Fatalf("expected fresh value cached, got %q", got)
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
