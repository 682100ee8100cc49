package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vovakirdan/frog-chase/internal/config"
	"github.com/vovakirdan/frog-chase/internal/core"
	"github.com/vovakirdan/frog-chase/internal/games/frogchase"
)

func startHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	h := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	go h.Run(ctx)

	srv := httptest.NewServer(NewRouter(h))
	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return h, srv
}

func TestHealthz(t *testing.T) {
	_, srv := startHub(t)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatalf("GET /healthz: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, expected 200", resp.StatusCode)
	}
}

func TestFrameEndpoint(t *testing.T) {
	h, srv := startHub(t)

	resp, err := http.Get(srv.URL + "/frame")
	if err != nil {
		t.Fatalf("GET /frame: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("status before any frame = %d, expected 204", resp.StatusCode)
	}

	h.Publish(frogchase.Frame{Tick: 7, Phase: "playing"})

	resp, err = http.Get(srv.URL + "/frame")
	if err != nil {
		t.Fatalf("GET /frame: %v", err)
	}
	defer resp.Body.Close()
	var f frogchase.Frame
	if err := json.NewDecoder(resp.Body).Decode(&f); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if f.Tick != 7 || f.Phase != "playing" {
		t.Errorf("frame = %+v", f)
	}
}

func TestWebSocketReceivesFrames(t *testing.T) {
	h, srv := startHub(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer conn.Close()

	h.Publish(frogchase.Frame{Tick: 42, Round: 1})

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage: %v", err)
	}
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("unmarshal %q: %v", data, err)
	}
	if msg.Event != "frame" || msg.Frame == nil || msg.Frame.Tick != 42 {
		t.Errorf("unexpected message %s", data)
	}
}

func TestPublishKeepsNewest(t *testing.T) {
	h := NewHub(nil)
	for i := range 5 {
		h.Publish(frogchase.Frame{Tick: uint64(i)})
	}
	if got := (<-h.frames).Tick; got != 4 {
		t.Errorf("queued tick = %d, expected 4", got)
	}
	if h.Latest().Tick != 4 {
		t.Errorf("latest tick = %d, expected 4", h.Latest().Tick)
	}
}

func TestObserveGame(t *testing.T) {
	g, err := frogchase.New(config.DefaultFrogChaseConfig())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.Reset(core.RuntimeConfig{Seed: 1})

	h := NewHub(nil)
	h.Observe(g)
	f := h.Latest()
	if f == nil || f.Phase != "intro" || f.Round != 1 {
		t.Errorf("observed frame = %+v", f)
	}
}

func TestListenAndShutdown(t *testing.T) {
	s, err := Listen("127.0.0.1:0", NewHub(nil))
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	resp, err := http.Get("http://" + s.Addr() + "/healthz")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}

func TestListenFailure(t *testing.T) {
	s, err := Listen("127.0.0.1:0", NewHub(nil))
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	defer s.Shutdown(context.Background())

	_, err = Listen(s.Addr(), NewHub(nil))
	if !errors.Is(err, core.ErrSubsystemInit) {
		t.Fatalf("second listener on the same address: err = %v, expected ErrSubsystemInit", err)
	}
}
