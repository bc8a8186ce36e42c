package service

import (
	"context"
	"sync"
	"time"

	"github.com/set-night/farmtap/internal/repository"
)

// countingStore wraps a Store and counts writes, so tests can assert
// that an operation persisted nothing.
type countingStore struct {
	repository.Store
	sets int
}

func (s *countingStore) Set(ctx context.Context, key string, value any) {
	s.sets++
	s.Store.Set(ctx, key, value)
}

// scriptedAd is an AdProvider returning a fixed error.
type scriptedAd struct {
	err error
}

func (a *scriptedAd) Show(context.Context) error {
	return a.err
}

// blockingAd parks Show until released, signalling when it first starts.
type blockingAd struct {
	started   chan struct{}
	release   chan struct{}
	startOnce sync.Once
}

func newBlockingAd() *blockingAd {
	return &blockingAd{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
}

func (a *blockingAd) Show(ctx context.Context) error {
	a.startOnce.Do(func() { close(a.started) })
	select {
	case <-a.release:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// recordingNotifier captures operator messages.
type recordingNotifier struct {
	messages []string
}

func (n *recordingNotifier) Notify(_ context.Context, text string) {
	n.messages = append(n.messages, text)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
