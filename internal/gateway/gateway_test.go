package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/moodbuddy/moodbuddy/internal/constants"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL, 5*time.Second)
}

func TestCreate_ReturnsServerID(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/moods/create" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var payload MoodPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("failed to decode payload: %v", err)
		}
		if payload.UserID != "alice" || payload.Mood != "happy" {
			t.Errorf("payload = %+v", payload)
		}

		// ids come back numeric from the backend
		w.Write([]byte(`{"id": 42, "mood_date": "2025-06-15", "mood": "happy"}`))
	})

	id, err := client.Create(context.Background(), MoodPayload{
		UserID:   "alice",
		MoodDate: "2025-06-15",
		Mood:     "happy",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if id != "42" {
		t.Errorf("id = %q, want 42", id)
	}
}

func TestUpdate_MissingTargetIsErrNotFound(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	err := client.Update(context.Background(), "99", MoodPayload{Mood: "sad"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdate_StripsImmutableFields(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			t.Fatalf("failed to decode payload: %v", err)
		}
		if _, ok := raw["user_id"]; ok {
			t.Error("update payload must not carry user_id")
		}
		if _, ok := raw["mood_date"]; ok {
			t.Error("update payload must not carry mood_date")
		}
		w.Write([]byte(`{}`))
	})

	err := client.Update(context.Background(), "7", MoodPayload{
		UserID:   "alice",
		MoodDate: "2025-06-15",
		Mood:     "sad",
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
}

func TestDelete_SendsQueryParams(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("mood_id") != "7" || r.URL.Query().Get("user_id") != "alice" {
			t.Errorf("query = %s", r.URL.RawQuery)
		}
		w.Write([]byte(`{"status": "deleted"}`))
	})

	if err := client.Delete(context.Background(), "7", "alice"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
}

func TestFilterByRange_EmptyListIsValid(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	records, err := client.FilterByRange(context.Background(), "alice", "2025-01-01", "2025-12-31")
	if err != nil {
		t.Fatalf("FilterByRange failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}

func TestFetchInterpretation_NotFoundIsNil(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no interpretation", http.StatusNotFound)
	})

	interp, err := client.FetchInterpretation(context.Background(), "happy_alpha")
	if err != nil {
		t.Fatalf("FetchInterpretation failed: %v", err)
	}
	if interp != nil {
		t.Errorf("interp = %+v, want nil", interp)
	}
}

func TestFetchInterpretation_ParsesBody(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("combined_mood") != "happy_alpha" {
			t.Errorf("query = %s", r.URL.RawQuery)
		}
		w.Write([]byte(`{"title": "Peaceful Joy", "interpretation": "You experienced happiness in a relaxed, centered state."}`))
	})

	interp, err := client.FetchInterpretation(context.Background(), "happy_alpha")
	if err != nil {
		t.Fatalf("FetchInterpretation failed: %v", err)
	}
	if interp == nil || interp.Title != "Peaceful Joy" {
		t.Errorf("interp = %+v", interp)
	}
}

func TestAnalyze_ParsesNestedPayload(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("failed to decode payload: %v", err)
		}
		if body["facial_emotion"] != "happy" {
			t.Errorf("facial_emotion = %v", body["facial_emotion"])
		}

		w.Write([]byte(`{
			"analysis": {
				"session_id": "session_1750000000000_abcd1234",
				"facial_analysis": {"emotion": "happy", "title": "Happy", "color": "#4CAF50", "valence": "positive"},
				"eeg_analysis": {"dominant_band": "Alpha", "emotional_state": "Peaceful Contentment", "color": "#27AE60", "description": "Relaxed awareness and contentment"},
				"combined_analysis": {"title": "Peaceful Joy", "interpretation": "You experienced happiness in a relaxed, centered state.", "combined_mood": "happy_alpha", "eeg_emotional_state": "Peaceful Contentment", "chatAsk": "Discuss your mood analysis", "chatbotPrompt": "I'm feeling happy. Can you help me understand this better?"}
			}
		}`))
	})

	analysis, err := client.Analyze(context.Background(), "happy", map[string]float64{
		"alpha": 45.5, "beta": 20, "theta": 15, "delta": 10, "gamma": 9.5,
	})
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if analysis.Facial.Emotion != constants.MoodHappy {
		t.Errorf("facial emotion = %q", analysis.Facial.Emotion)
	}
	if analysis.EEG.DominantBand != constants.BandAlpha {
		t.Errorf("dominant band = %q", analysis.EEG.DominantBand)
	}
	if analysis.EEG.EmotionalState != constants.StatePeacefulContentment {
		t.Errorf("emotional state = %q", analysis.EEG.EmotionalState)
	}
	if analysis.CombinedMood != "happy_alpha" {
		t.Errorf("combined mood = %q", analysis.CombinedMood)
	}
	if analysis.ChatPrompt == "" {
		t.Error("expected a chat prompt")
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	})

	_, err := client.Login(context.Background(), "alice@example.com", "wrong")
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}
}

func TestLogin_ReturnsProfile(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message": "ok", "email": "alice@example.com", "username": "alice", "full_name": "Alice A"}`))
	})

	profile, err := client.Login(context.Background(), "alice@example.com", "secret")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if profile.Username != "alice" || profile.FullName != "Alice A" {
		t.Errorf("profile = %+v", profile)
	}
}

func TestStartCollection_ErrorStatusRejected(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "error", "message": "device not connected"}`))
	})

	err := client.StartCollection(context.Background())
	if !errors.Is(err, ErrServerRejected) {
		t.Errorf("err = %v, want ErrServerRejected", err)
	}
}

func TestConnectDevice_UnexpectedStatus(t *testing.T) {
	client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "idle"}`))
	})

	if err := client.ConnectDevice(context.Background()); err == nil {
		t.Error("expected an error for an unexpected connect status")
	}
}
