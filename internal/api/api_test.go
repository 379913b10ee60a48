package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sunshine-labs/sunshine/internal/engine"
	"github.com/sunshine-labs/sunshine/internal/models"
	"github.com/sunshine-labs/sunshine/internal/session"
	"github.com/sunshine-labs/sunshine/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mgr := session.NewManager(store.NewInMemoryStore())
	eng := engine.New(mgr)
	ts := httptest.NewServer(NewServer(eng, mgr).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postChat(t *testing.T, ts *httptest.Server, body string) (*http.Response, models.APIResponse) {
	t.Helper()
	resp, err := http.Post(ts.URL+"/api/chat", "application/json", bytes.NewBufferString(body))
	if err != nil {
		t.Fatalf("POST /api/chat failed: %v", err)
	}
	defer resp.Body.Close()
	var envelope models.APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("failed to decode response envelope: %v", err)
	}
	return resp, envelope
}

func chatResult(t *testing.T, envelope models.APIResponse) models.ChatResponse {
	t.Helper()
	data, err := json.Marshal(envelope.Result)
	if err != nil {
		t.Fatal(err)
	}
	var cr models.ChatResponse
	if err := json.Unmarshal(data, &cr); err != nil {
		t.Fatalf("result is not a chat response: %v", err)
	}
	return cr
}

func TestChatCreatesSession(t *testing.T) {
	ts := newTestServer(t)
	resp, envelope := postChat(t, ts, `{"message": "hello"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if envelope.Status != models.APIStatusOK {
		t.Fatalf("envelope status = %q, want ok", envelope.Status)
	}
	cr := chatResult(t, envelope)
	if !strings.HasPrefix(cr.SessionID, "s_") {
		t.Errorf("session id %q missing s_ prefix", cr.SessionID)
	}
	if cr.Message == "" {
		t.Error("chat reply must not be empty")
	}
}

func TestChatContinuesSession(t *testing.T) {
	ts := newTestServer(t)
	_, first := postChat(t, ts, `{"message": "hi"}`)
	sid := chatResult(t, first).SessionID

	resp, second := postChat(t, ts, `{"session_id": "`+sid+`", "message": "my job is stressful"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if got := chatResult(t, second).SessionID; got != sid {
		t.Errorf("continued session id = %q, want %q", got, sid)
	}
}

func TestChatRejectsBadInput(t *testing.T) {
	ts := newTestServer(t)
	cases := map[string]string{
		"empty message": `{"message": "   "}`,
		"bad json":      `{"message": `,
		"long session":  `{"session_id": "` + strings.Repeat("x", models.MaxSessionIDLength+1) + `", "message": "hi"}`,
		"long message":  `{"message": "` + strings.Repeat("a", models.MaxChatMessageLength+1) + `"}`,
	}
	for name, body := range cases {
		resp, envelope := postChat(t, ts, body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", name, resp.StatusCode)
		}
		if envelope.Status != models.APIStatusError {
			t.Errorf("%s: envelope status = %q, want error", name, envelope.Status)
		}
	}
}

func TestChatMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/chat")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("GET /api/chat status = %d, want 405", resp.StatusCode)
	}
}

func TestSessionEndpoint(t *testing.T) {
	ts := newTestServer(t)
	_, envelope := postChat(t, ts, `{"message": "my name is jordan and work is rough"}`)
	sid := chatResult(t, envelope).SessionID

	resp, err := http.Get(ts.URL + "/api/sessions/" + sid)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var out models.APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	data, _ := json.Marshal(out.Result)
	var summary models.SessionSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		t.Fatalf("result is not a session summary: %v", err)
	}
	if summary.SessionID != sid || summary.SessionLength != 1 {
		t.Errorf("unexpected summary: %+v", summary)
	}
	if summary.ClientName != "Jordan" {
		t.Errorf("summary client name = %q, want Jordan", summary.ClientName)
	}
}

func TestSessionNotFound(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/sessions/s_doesnotexist")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestMessagesEndpoint(t *testing.T) {
	ts := newTestServer(t)
	_, envelope := postChat(t, ts, `{"message": "hello"}`)
	sid := chatResult(t, envelope).SessionID

	resp, err := http.Get(ts.URL + "/api/messages?session_id=" + sid)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var out models.APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	data, _ := json.Marshal(out.Result)
	var msgs []models.Message
	if err := json.Unmarshal(data, &msgs); err != nil {
		t.Fatalf("result is not a message list: %v", err)
	}
	if len(msgs) != 2 {
		t.Errorf("transcript has %d messages, want 2", len(msgs))
	}
}

func TestMessagesRequiresSessionID(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/api/messages")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestStatsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	postChat(t, ts, `{"message": "hello"}`)
	postChat(t, ts, `{"message": "i want to end my life"}`)

	resp, err := http.Get(ts.URL + "/api/stats")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var out models.APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatal(err)
	}
	data, _ := json.Marshal(out.Result)
	var stats models.Stats
	if err := json.Unmarshal(data, &stats); err != nil {
		t.Fatalf("result is not stats: %v", err)
	}
	if stats.Sessions != 2 || stats.Turns != 2 || stats.CrisisTurns != 1 {
		t.Errorf("stats = %+v, want 2 sessions, 2 turns, 1 crisis turn", stats)
	}
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("health status = %d, want 200", resp.StatusCode)
	}
}
