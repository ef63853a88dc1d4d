package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type rawResponse struct {
	Type    string          `json:"type"`
	ID      string          `json:"id"`
	Payload json.RawMessage `json:"payload"`
}

func dial(t *testing.T) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(New(nil))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func roundTrip(t *testing.T, conn *websocket.Conn, msg any) rawResponse {
	t.Helper()
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatalf("write: %v", err)
	}
	var resp rawResponse
	if err := conn.ReadJSON(&resp); err != nil {
		t.Fatalf("read: %v", err)
	}
	if _, err := uuid.Parse(resp.ID); err != nil {
		t.Fatalf("response id %q is not a uuid: %v", resp.ID, err)
	}
	return resp
}

func checkMsg(src string) map[string]any {
	return map[string]any{"type": "check", "payload": map[string]string{"source": src}}
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	New(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Fatalf("healthz = %d %s", rec.Code, rec.Body.String())
	}
}

func TestWSCheckAccepted(t *testing.T) {
	conn := dial(t)
	resp := roundTrip(t, conn, checkMsg("var a, k: array[2:10,10:40] of byte, d17,e7: word;"))
	if resp.Type != "result" {
		t.Fatalf("type = %q", resp.Type)
	}
	var res ResultPayload
	if err := json.Unmarshal(resp.Payload, &res); err != nil {
		t.Fatal(err)
	}
	if !res.Accepted || len(res.Symbols) != 4 || res.Error != nil {
		t.Fatalf("result = %+v", res)
	}
	if res.Symbols[0].Name != "a" || res.Symbols[0].Type != "array[2:10,10:40] of byte" {
		t.Fatalf("first symbol = %+v", res.Symbols[0])
	}
}

func TestWSCheckRejected(t *testing.T) {
	conn := dial(t)
	resp := roundTrip(t, conn, checkMsg("var a,a: byte;"))

	var res ResultPayload
	if err := json.Unmarshal(resp.Payload, &res); err != nil {
		t.Fatal(err)
	}
	e := res.Error
	if res.Accepted || e == nil {
		t.Fatalf("result = %+v", res)
	}
	if e.Kind != "semantic" || e.Code != "SEM3002" || e.Position != 6 || e.Length != 1 {
		t.Fatalf("error = %+v", e)
	}
	if e.Before != "var a," || e.Lexeme != "a" || e.After != ": byte;" {
		t.Fatalf("split = %q|%q|%q", e.Before, e.Lexeme, e.After)
	}
	if e.Related == nil || e.Related.Position != 4 {
		t.Fatalf("related = %+v", e.Related)
	}

	// соединение живёт дальше
	resp = roundTrip(t, conn, checkMsg("var a: byte"))
	if err := json.Unmarshal(resp.Payload, &res); err != nil {
		t.Fatal(err)
	}
	if res.Error == nil || res.Error.Position != 11 || res.Error.Lexeme != "" || res.Error.Before != "var a: byte" {
		t.Fatalf("second = %+v", res.Error)
	}
}

func TestWSTokenizePingUnknown(t *testing.T) {
	conn := dial(t)

	resp := roundTrip(t, conn, map[string]any{"type": "tokenize", "payload": map[string]string{"source": "var a;"}})
	var toks []map[string]any
	if err := json.Unmarshal(resp.Payload, &toks); err != nil || resp.Type != "tokens" || len(toks) != 3 {
		t.Fatalf("tokens = %s (%v)", resp.Payload, err)
	}

	if resp = roundTrip(t, conn, map[string]string{"type": "ping"}); resp.Type != "pong" {
		t.Fatalf("ping -> %q", resp.Type)
	}

	resp = roundTrip(t, conn, map[string]string{"type": "launch"})
	var p ProblemPayload
	if err := json.Unmarshal(resp.Payload, &p); err != nil || resp.Type != "error" || p.Code != "unknown_type" {
		t.Fatalf("unknown -> %q %s", resp.Type, resp.Payload)
	}

	resp = roundTrip(t, conn, map[string]any{"type": "check", "payload": 42})
	if err := json.Unmarshal(resp.Payload, &p); err != nil || p.Code != "invalid_payload" {
		t.Fatalf("bad payload -> %s", resp.Payload)
	}
}

func TestDispatchIndependentIDs(t *testing.T) {
	s := New(nil)
	a := s.dispatch(Message{Type: "ping"})
	b := s.dispatch(Message{Type: "ping"})
	if a.ID == b.ID {
		t.Fatal("ids must differ per request")
	}
}
