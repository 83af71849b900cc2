package eeg

import (
	"context"
	"fmt"
	"time"

	"github.com/moodbuddy/moodbuddy/internal/logger"
	"github.com/moodbuddy/moodbuddy/internal/models"
)

// DeviceGateway is the slice of the gateway the collector depends on.
type DeviceGateway interface {
	ConnectDevice(ctx context.Context) error
	StartCollection(ctx context.Context) error
	StopCollection(ctx context.Context) error
	BandPower(ctx context.Context) ([]models.BandSample, error)
}

// Collector runs fixed-duration sampling windows against an EEG device
// session. The window ends when the configured sample count has elapsed;
// individual failed samples are skipped, and the stop signal is sent exactly
// once on every exit path to release the upstream session.
type Collector struct {
	device   DeviceGateway
	window   int           // samples per window
	interval time.Duration // delay between samples

	// OnSample, when set, is called after each polling step with the
	// 1-based step number and the snapshot (nil when the step failed).
	OnSample func(step int, snapshot []models.BandSample)
}

// NewCollector creates a collector taking one sample per interval for window
// steps.
func NewCollector(device DeviceGateway, window int, interval time.Duration) *Collector {
	return &Collector{
		device:   device,
		window:   window,
		interval: interval,
	}
}

// Connect opens the device session. It is a separate explicit step so the
// caller can report connection status before committing to a window.
func (c *Collector) Connect(ctx context.Context) error {
	if err := c.device.ConnectDevice(ctx); err != nil {
		return fmt.Errorf("failed to connect EEG device: %w", err)
	}
	return nil
}

// Collect runs one sampling window and returns the captured snapshots. A
// step whose fetch fails is logged and skipped rather than aborting the
// window. StopCollection is always issued once after the loop exits.
func (c *Collector) Collect(ctx context.Context) ([][]models.BandSample, error) {
	if err := c.device.StartCollection(ctx); err != nil {
		return nil, fmt.Errorf("failed to start EEG collection: %w", err)
	}

	defer func() {
		// Release the device session regardless of how the window ended.
		if err := c.device.StopCollection(ctx); err != nil {
			logger.Warn("Failed to stop EEG collection", "error", err)
		}
	}()

	snapshots := make([][]models.BandSample, 0, c.window)
	for step := 1; step <= c.window; step++ {
		snapshot, err := c.device.BandPower(ctx)
		if err != nil {
			logger.Warn("Band power fetch failed", "step", step, "error", err)
			snapshot = nil
		} else {
			snapshots = append(snapshots, snapshot)
		}

		if c.OnSample != nil {
			c.OnSample(step, snapshot)
		}

		if step < c.window {
			select {
			case <-time.After(c.interval):
			case <-ctx.Done():
				return snapshots, ctx.Err()
			}
		}
	}

	return snapshots, nil
}
