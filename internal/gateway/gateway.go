// Package gateway is the network boundary: a thin typed wrapper around the
// mood-tracking backend's HTTP API. It performs no retries and keeps no
// domain state; failures are reported as typed errors and retry policy
// belongs to the caller.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/moodbuddy/moodbuddy/internal/logger"
	"github.com/moodbuddy/moodbuddy/internal/models"
)

var (
	// ErrNotFound is returned when an update or delete target does not exist
	// server-side. It indicates a broken id reference and requires caller
	// action rather than silent recovery.
	ErrNotFound = errors.New("record not found on server")

	// ErrServerRejected is returned for any other non-success response.
	ErrServerRejected = errors.New("server rejected request")

	// ErrUnauthorized is returned when credentials are rejected.
	ErrUnauthorized = errors.New("invalid credentials")
)

// Client talks to the remote mood API.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a gateway client for the given base URL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// RawMoodRecord is the wire shape of one mood entry as the backend returns it.
type RawMoodRecord struct {
	ID                json.Number `json:"id"`
	MoodDate          string      `json:"mood_date"`
	Mood              string      `json:"mood"`
	CombinedMood      string      `json:"combined_mood"`
	EEGEmotionalState string      `json:"eeg_emotional_state"`
	Note              string      `json:"note"`
}

// MoodPayload is the wire shape for create/update requests.
type MoodPayload struct {
	UserID            string `json:"user_id,omitempty"`
	MoodDate          string `json:"mood_date,omitempty"`
	Mood              string `json:"mood"`
	CombinedMood      string `json:"combined_mood"`
	EEGEmotionalState string `json:"eeg_emotional_state"`
	Note              string `json:"note"`
}

// Interpretation is a canned title/interpretation pair for a combined-mood
// label.
type Interpretation struct {
	Title          string `json:"title"`
	Interpretation string `json:"interpretation"`
}

// Profile identifies the signed-in user as the backend reports it.
type Profile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) (*http.Response, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s failed: %w", path, err)
	}
	return resp, nil
}

func decodeInto(resp *http.Response, out interface{}) error {
	defer resp.Body.Close()
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func rejection(resp *http.Response, path string) error {
	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	logger.Warn("Server rejected request", "path", path, "status", resp.StatusCode)
	return fmt.Errorf("%w: %s returned %d: %s", ErrServerRejected, path, resp.StatusCode, strings.TrimSpace(string(body)))
}

// Ping checks backend reachability with a bare GET against the API root.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.do(ctx, http.MethodGet, "/", nil, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: health check returned %d", ErrServerRejected, resp.StatusCode)
	}
	return nil
}

// Create persists a new mood entry and returns the server-assigned id.
func (c *Client) Create(ctx context.Context, payload MoodPayload) (string, error) {
	resp, err := c.do(ctx, http.MethodPost, "/moods/create", nil, payload)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", rejection(resp, "/moods/create")
	}

	var record RawMoodRecord
	if err := decodeInto(resp, &record); err != nil {
		return "", err
	}
	return record.ID.String(), nil
}

// Update rewrites the record with the given id. ErrNotFound signals a broken
// id reference.
func (c *Client) Update(ctx context.Context, id string, payload MoodPayload) error {
	// Update payloads carry only mutable fields.
	payload.UserID = ""
	payload.MoodDate = ""

	resp, err := c.do(ctx, http.MethodPut, "/moods/update/"+url.PathEscape(id), nil, payload)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return fmt.Errorf("%w: mood id %s", ErrNotFound, id)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return rejection(resp, "/moods/update")
	}
	return decodeInto(resp, nil)
}

// Delete removes the record with the given id. Callers treat failure as
// "deleted locally, not yet synced" rather than fatal.
func (c *Client) Delete(ctx context.Context, id, userID string) error {
	q := url.Values{}
	q.Set("mood_id", id)
	q.Set("user_id", userID)

	resp, err := c.do(ctx, http.MethodDelete, "/moods/delete", q, nil)
	if err != nil {
		return err
	}
	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return fmt.Errorf("%w: mood id %s", ErrNotFound, id)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return rejection(resp, "/moods/delete")
	}
	return decodeInto(resp, nil)
}

// FilterByRange returns the user's mood records between startDate and endDate
// inclusive. An empty list is a valid result, not an error.
func (c *Client) FilterByRange(ctx context.Context, userID, startDate, endDate string) ([]RawMoodRecord, error) {
	q := url.Values{}
	q.Set("user_id", userID)
	q.Set("start_date", startDate)
	q.Set("end_date", endDate)

	resp, err := c.do(ctx, http.MethodGet, "/moods/filter", q, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, rejection(resp, "/moods/filter")
	}

	var records []RawMoodRecord
	if err := decodeInto(resp, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// FetchInterpretation returns the canned interpretation for a combined-mood
// label, or nil (not an error) when the server has none.
func (c *Client) FetchInterpretation(ctx context.Context, combinedMood string) (*Interpretation, error) {
	q := url.Values{}
	q.Set("combined_mood", combinedMood)

	resp, err := c.do(ctx, http.MethodGet, "/moods/interpretation", q, nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, rejection(resp, "/moods/interpretation")
	}

	var interp Interpretation
	if err := decodeInto(resp, &interp); err != nil {
		return nil, err
	}
	return &interp, nil
}

// analyzeResponse mirrors the backend's nested /moods/analyze payload.
type analyzeResponse struct {
	Analysis struct {
		SessionID      string `json:"session_id"`
		FacialAnalysis struct {
			Emotion string `json:"emotion"`
			Title   string `json:"title"`
			Color   string `json:"color"`
			Valence string `json:"valence"`
		} `json:"facial_analysis"`
		EEGAnalysis struct {
			DominantBand   string `json:"dominant_band"`
			EmotionalState string `json:"emotional_state"`
			Color          string `json:"color"`
			Description    string `json:"description"`
		} `json:"eeg_analysis"`
		CombinedAnalysis struct {
			Title             string `json:"title"`
			Interpretation    string `json:"interpretation"`
			CombinedMood      string `json:"combined_mood"`
			EEGEmotionalState string `json:"eeg_emotional_state"`
			ChatAsk           string `json:"chatAsk"`
			ChatbotPrompt     string `json:"chatbotPrompt"`
		} `json:"combined_analysis"`
	} `json:"analysis"`
}

// Analyze asks the backend to combine a facial emotion with averaged EEG band
// powers. The eegData keys use the derived five-band vocabulary in lowercase
// (alpha, beta, theta, delta, gamma).
func (c *Client) Analyze(ctx context.Context, facialEmotion string, eegData map[string]float64) (*models.CombinedAnalysis, error) {
	body := map[string]interface{}{
		"facial_emotion": facialEmotion,
		"eeg_data":       eegData,
	}

	resp, err := c.do(ctx, http.MethodPost, "/moods/analyze", nil, body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, rejection(resp, "/moods/analyze")
	}

	var parsed analyzeResponse
	if err := decodeInto(resp, &parsed); err != nil {
		return nil, err
	}

	a := parsed.Analysis
	return &models.CombinedAnalysis{
		SessionID: a.SessionID,
		Facial: models.FacialAnalysis{
			Emotion: constantsMood(a.FacialAnalysis.Emotion),
			Title:   a.FacialAnalysis.Title,
			Color:   a.FacialAnalysis.Color,
			Valence: constantsValence(a.FacialAnalysis.Valence),
		},
		EEG: models.EEGAnalysis{
			DominantBand:   constantsBand(a.EEGAnalysis.DominantBand),
			EmotionalState: constantsState(a.EEGAnalysis.EmotionalState),
			Color:          a.EEGAnalysis.Color,
			Description:    a.EEGAnalysis.Description,
		},
		Title:          a.CombinedAnalysis.Title,
		Interpretation: a.CombinedAnalysis.Interpretation,
		CombinedMood:   a.CombinedAnalysis.CombinedMood,
		ChatAsk:        a.CombinedAnalysis.ChatAsk,
		ChatPrompt:     a.CombinedAnalysis.ChatbotPrompt,
	}, nil
}
