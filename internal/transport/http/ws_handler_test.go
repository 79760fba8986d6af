package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"swayn-kiosk/internal/app"
	"swayn-kiosk/internal/content"
	"swayn-kiosk/internal/infra/memory"
)

func TestWebSocketVisitFlow(t *testing.T) {
	conn := dialKiosk(t, "")
	defer conn.Close()

	// Expect joined event first.
	_, payload := readNext(conn, t, "joined")
	if id, _ := payload["visitId"].(string); id == "" || payload["preload"] == nil {
		t.Fatalf("expected joined payload, got %v", payload)
	}

	waitForSnapshot(t, conn, func(s map[string]any) bool {
		return s["screen"] == "invitation" && s["phase"] == "idle"
	})

	if err := conn.WriteJSON(map[string]any{"type": "goToQuizIntro"}); err != nil {
		t.Fatalf("write: %v", err)
	}

	cueSeen := false
	for i := 0; i < 10; i++ {
		typ, payload := readNext(conn, t, "")
		if typ == "cue" && payload["cue"] == "transition" {
			cueSeen = true
		}
		if typ == "snapshot" && payload["screen"] == "quiz-intro" && payload["phase"] == "idle" {
			break
		}
	}
	if !cueSeen {
		t.Fatalf("expected a transition cue")
	}

	if err := conn.WriteJSON(map[string]any{"type": "answer", "payload": map[string]any{"option": 0}}); err != nil {
		t.Fatalf("write answer: %v", err)
	}
	// Off the quiz page the answer is ignored, so the next message must not be an error.
	if err := conn.WriteJSON(map[string]any{"type": "dance"}); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, payload = readUntil(t, conn, "error")
	if payload["message"] != errUnsupported.Error() {
		t.Fatalf("expected unsupported error, got %v", payload)
	}
}

func TestWebSocketUnknownCatalog(t *testing.T) {
	conn := dialKiosk(t, "?catalog=missing")
	defer conn.Close()

	readNext(conn, t, "error")
}

func dialKiosk(t *testing.T, query string) *websocket.Conn {
	t.Helper()
	catalogs := memory.NewCatalogRepository(memory.NewStaticCatalogLoader(content.Default()), time.Minute)
	settings := app.Settings{Timing: app.Timing{
		PageExit:     10 * time.Millisecond,
		PageEnter:    10 * time.Millisecond,
		AnswerSettle: 10 * time.Millisecond,
		IntroStep:    10 * time.Millisecond,
	}}
	service := app.NewService(memory.NewVisitRegistry(), catalogs, settings, nil)
	wsHandler := NewWSHandler(service, content.DefaultCatalogID, nil)

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", wsHandler.ServeWS)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	u := "ws" + server.URL[len("http"):] + "/ws" + query
	conn, _, err := websocket.DefaultDialer.Dial(u, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	return conn
}

func waitForSnapshot(t *testing.T, conn *websocket.Conn, match func(map[string]any) bool) {
	t.Helper()
	for i := 0; i < 20; i++ {
		typ, payload := readNext(conn, t, "")
		if typ == "snapshot" && match(payload) {
			return
		}
	}
	t.Fatalf("snapshot never matched")
}

func readUntil(t *testing.T, conn *websocket.Conn, want string) (string, map[string]any) {
	t.Helper()
	for i := 0; i < 20; i++ {
		typ, payload := readNext(conn, t, "")
		if typ == want {
			return typ, payload
		}
	}
	t.Fatalf("never received %s", want)
	return "", nil
}

func readNext(conn *websocket.Conn, t *testing.T, expect string) (string, map[string]any) {
	t.Helper()
	var msg struct {
		Type    string         `json:"type"`
		Payload map[string]any `json:"payload"`
	}
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("read json: %v", err)
	}
	if expect != "" && msg.Type != expect {
		t.Fatalf("expected type %s, got %s", expect, msg.Type)
	}
	return msg.Type, msg.Payload
}
