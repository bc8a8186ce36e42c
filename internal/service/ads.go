package service

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// AdProvider completes one ad display. Show blocks until the ad has run
// (or the context is done) and returns an error when the ad could not
// be shown. Which variant backs it is decided once at startup.
type AdProvider interface {
	Show(ctx context.Context) error
}

// SDKAdProvider triggers the ad network's display endpoint and then
// waits a fixed settle delay approximating real ad duration, since the
// network exposes no completion callback.
type SDKAdProvider struct {
	Client   *http.Client
	Endpoint string
	Settle   time.Duration
}

func (p *SDKAdProvider) Show(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.Endpoint, nil)
	if err != nil {
		return fmt.Errorf("build ad request: %w", err)
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		return fmt.Errorf("trigger ad: %w", err)
	}
	resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("trigger ad: status %d", resp.StatusCode)
	}
	return sleep(ctx, p.Settle)
}

// TimedAdProvider is the degraded mode when no ad network is
// configured: a shorter fixed delay stands in for the ad.
type TimedAdProvider struct {
	Delay time.Duration
}

func (p *TimedAdProvider) Show(ctx context.Context) error {
	return sleep(ctx, p.Delay)
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
