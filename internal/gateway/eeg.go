package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/moodbuddy/moodbuddy/internal/models"
)

// statusResponse is the minimal session-control acknowledgement shape.
type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ConnectDevice opens an EEG headset session on the backend.
func (c *Client) ConnectDevice(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodPost, "/eeg/connect", nil, nil)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return rejection(resp, "/eeg/connect")
	}

	var status statusResponse
	if err := decodeInto(resp, &status); err != nil {
		return err
	}
	if status.Status != "connection started" {
		return fmt.Errorf("%w: unexpected connect status %q", ErrServerRejected, status.Status)
	}
	return nil
}

// StartCollection begins streaming band-power data on the device session.
func (c *Client) StartCollection(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodPost, "/eeg/start-collection", nil, nil)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return rejection(resp, "/eeg/start-collection")
	}

	var status statusResponse
	if err := decodeInto(resp, &status); err != nil {
		return err
	}
	if status.Status == "error" {
		return fmt.Errorf("%w: %s", ErrServerRejected, status.Message)
	}
	return nil
}

// StopCollection releases the device session. It must be issued once after
// every sampling window, on success and error paths alike.
func (c *Client) StopCollection(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodPost, "/eeg/stop-collection", nil, nil)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return rejection(resp, "/eeg/stop-collection")
	}
	return decodeInto(resp, nil)
}

// BandPower fetches one instantaneous band-power snapshot.
func (c *Client) BandPower(ctx context.Context) ([]models.BandSample, error) {
	resp, err := c.do(ctx, http.MethodGet, "/eeg/bandpower", nil, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, rejection(resp, "/eeg/bandpower")
	}

	var samples []models.BandSample
	if err := decodeInto(resp, &samples); err != nil {
		return nil, err
	}
	return samples, nil
}
