package eeg

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/moodbuddy/moodbuddy/internal/models"
)

// fakeDevice scripts the device session for one window.
type fakeDevice struct {
	startErr   error
	stopCalls  int
	fetchCalls int
	failSteps  map[int]bool // 1-based steps whose fetch fails
}

func (f *fakeDevice) ConnectDevice(ctx context.Context) error { return nil }

func (f *fakeDevice) StartCollection(ctx context.Context) error { return f.startErr }

func (f *fakeDevice) StopCollection(ctx context.Context) error {
	f.stopCalls++
	return nil
}

func (f *fakeDevice) BandPower(ctx context.Context) ([]models.BandSample, error) {
	f.fetchCalls++
	if f.failSteps[f.fetchCalls] {
		return nil, errors.New("stream hiccup")
	}
	return []models.BandSample{{Band: "alpha", Percentage: 50}}, nil
}

func TestCollect_FullWindow(t *testing.T) {
	device := &fakeDevice{}
	collector := NewCollector(device, 3, time.Millisecond)

	snapshots, err := collector.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if len(snapshots) != 3 {
		t.Errorf("got %d snapshots, want 3", len(snapshots))
	}
	if device.stopCalls != 1 {
		t.Errorf("stop called %d times, want 1", device.stopCalls)
	}
}

func TestCollect_FailedStepIsSkipped(t *testing.T) {
	device := &fakeDevice{failSteps: map[int]bool{2: true}}
	collector := NewCollector(device, 3, time.Millisecond)

	var nilSteps int
	collector.OnSample = func(step int, snapshot []models.BandSample) {
		if snapshot == nil {
			nilSteps++
		}
	}

	snapshots, err := collector.Collect(context.Background())
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if len(snapshots) != 2 {
		t.Errorf("got %d snapshots, want 2 (one step failed)", len(snapshots))
	}
	if nilSteps != 1 {
		t.Errorf("OnSample saw %d failed steps, want 1", nilSteps)
	}
	if device.stopCalls != 1 {
		t.Errorf("stop called %d times, want 1", device.stopCalls)
	}
}

func TestCollect_StartFailureSkipsWindow(t *testing.T) {
	device := &fakeDevice{startErr: errors.New("no session")}
	collector := NewCollector(device, 3, time.Millisecond)

	if _, err := collector.Collect(context.Background()); err == nil {
		t.Fatal("expected an error when collection cannot start")
	}
	if device.fetchCalls != 0 {
		t.Errorf("fetched %d times after a failed start, want 0", device.fetchCalls)
	}
	if device.stopCalls != 0 {
		t.Errorf("stop called %d times after a failed start, want 0", device.stopCalls)
	}
}

func TestCollect_ContextCancelStillStops(t *testing.T) {
	device := &fakeDevice{}
	collector := NewCollector(device, 10, 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	collector.OnSample = func(step int, snapshot []models.BandSample) {
		if step == 1 {
			cancel()
		}
	}

	snapshots, err := collector.Collect(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if len(snapshots) != 1 {
		t.Errorf("got %d snapshots before cancel, want 1", len(snapshots))
	}
	if device.stopCalls != 1 {
		t.Errorf("stop called %d times, want 1", device.stopCalls)
	}
}

func TestCollect_OnSampleStepNumbers(t *testing.T) {
	device := &fakeDevice{}
	collector := NewCollector(device, 3, time.Millisecond)

	var steps []int
	collector.OnSample = func(step int, snapshot []models.BandSample) {
		steps = append(steps, step)
	}

	if _, err := collector.Collect(context.Background()); err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	want := []int{1, 2, 3}
	if len(steps) != len(want) {
		t.Fatalf("got %d callbacks, want %d", len(steps), len(want))
	}
	for i := range want {
		if steps[i] != want[i] {
			t.Errorf("step[%d] = %d, want %d", i, steps[i], want[i])
		}
	}
}
