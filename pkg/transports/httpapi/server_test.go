package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/hashgraph-labs/ledgerkit/pkg/ledgerkit"
	"github.com/hashgraph-labs/ledgerkit/pkg/registry"
	"github.com/hashgraph-labs/ledgerkit/pkg/tools"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	reg := registry.New()
	if err := tools.RegisterAll(reg); err != nil {
		t.Fatalf("RegisterAll: %v", err)
	}
	backend, err := ledgerkit.ResolveBackend(ledgerkit.Config{})
	if err != nil {
		t.Fatalf("ResolveBackend: %v", err)
	}
	d := ledgerkit.NewDispatcher(reg, backend, ledgerkit.DispatcherOptions{Timeout: 5 * time.Second})
	return NewServer(d, nil)
}

func doJSON(t *testing.T, s *Server, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	var payload map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("%s %s: undecodable body %q", method, path, rec.Body.String())
	}
	return rec, payload
}

func TestCallEndpointRoundTrip(t *testing.T) {
	s := newTestServer(t)

	rec, payload := doJSON(t, s, http.MethodPost, "/v1/call",
		`{"operation":"create_account","arguments":{"initial_balance":5}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %v", rec.Code, payload)
	}
	if payload["mode"] != "mock" {
		t.Fatalf("mode = %v", payload["mode"])
	}
	fields := payload["fields"].(map[string]any)
	accountID, _ := fields["account_id"].(string)
	if accountID == "" {
		t.Fatalf("no account_id: %v", fields)
	}

	rec, payload = doJSON(t, s, http.MethodPost, "/v1/call",
		`{"operation":"get_balance","arguments":{"account_id":"`+accountID+`"}}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %v", rec.Code, payload)
	}
	if got := payload["fields"].(map[string]any)["balance"].(float64); got != 5 {
		t.Fatalf("balance = %v, want 5", got)
	}
}

func TestCallEndpointErrorStatuses(t *testing.T) {
	s := newTestServer(t)

	cases := []struct {
		body     string
		wantCode int
		wantKind string
	}{
		{`{"operation":"no_such_op","arguments":{}}`, http.StatusNotFound, "unknown_operation"},
		{`{"operation":"transfer_hbar","arguments":{"amount":1}}`, http.StatusBadRequest, "invalid_input"},
		{`{"operation":"get_balance","arguments":{"account_id":"0.0.99999"}}`, http.StatusUnprocessableEntity, "backend_rejected"},
		{`{"arguments":{}}`, http.StatusBadRequest, "invalid_input"},
	}
	for _, tc := range cases {
		rec, payload := doJSON(t, s, http.MethodPost, "/v1/call", tc.body)
		if rec.Code != tc.wantCode {
			t.Fatalf("%s: status = %d, want %d (%v)", tc.body, rec.Code, tc.wantCode, payload)
		}
		if payload["kind"] != tc.wantKind {
			t.Fatalf("%s: kind = %v, want %s", tc.body, payload["kind"], tc.wantKind)
		}
	}
}

func TestOperationsEndpointListsCatalog(t *testing.T) {
	s := newTestServer(t)

	rec, payload := doJSON(t, s, http.MethodGet, "/v1/operations", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	ops := payload["operations"].([]any)
	if len(ops) != 37 {
		t.Fatalf("operations = %d, want 37", len(ops))
	}
	first := ops[0].(map[string]any)
	if first["name"] != "create_account" {
		t.Fatalf("first operation = %v", first["name"])
	}
	if _, ok := first["parameters"].(map[string]any); !ok {
		t.Fatal("operation missing parameters schema")
	}
}

func TestBackendEndpointDescribesMockFallback(t *testing.T) {
	s := newTestServer(t)

	rec, payload := doJSON(t, s, http.MethodGet, "/v1/backend", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if payload["mode"] != "mock" {
		t.Fatalf("mode = %v", payload["mode"])
	}
	reasons := payload["reasons"].([]any)
	if len(reasons) == 0 {
		t.Fatal("mock backend reports no fallback reasons")
	}
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec, payload := doJSON(t, s, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK || payload["status"] != "ok" {
		t.Fatalf("health = %d %v", rec.Code, payload)
	}
}

func TestTopicStreamEndpoint(t *testing.T) {
	s := newTestServer(t)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	_, payload := doJSON(t, s, http.MethodPost, "/v1/call",
		`{"operation":"create_topic","arguments":{"memo":"feed"}}`)
	topicID, _ := payload["fields"].(map[string]any)["topic_id"].(string)
	if topicID == "" {
		t.Fatalf("no topic_id: %v", payload)
	}
	doJSON(t, s, http.MethodPost, "/v1/call",
		`{"operation":"submit_message","arguments":{"topic_id":"`+topicID+`","message":"hello"}}`)

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/topics/" + topicID + "/stream"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var frame map[string]any
	if err := conn.ReadJSON(&frame); err != nil {
		t.Fatalf("read frame: %v", err)
	}
	if frame["message"] != "hello" || frame["sequence_number"].(float64) != 1 {
		t.Fatalf("frame = %v", frame)
	}
}

func TestTopicStreamUnknownTopicIs404(t *testing.T) {
	s := newTestServer(t)
	rec, payload := doJSON(t, s, http.MethodGet, "/v1/topics/0.0.424242/stream", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d: %v", rec.Code, payload)
	}
	if payload["kind"] != "backend_rejected" {
		t.Fatalf("kind = %v", payload["kind"])
	}
}
