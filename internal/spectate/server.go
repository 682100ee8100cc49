package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vovakirdan/frog-chase/internal/core"
)

// NewRouter mounts the spectator routes:
//
//	GET /healthz  liveness
//	GET /frame    latest frame as JSON, 204 before the first one
//	GET /ws       WebSocket frame stream
func NewRouter(h *Hub) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Get("/frame", func(w http.ResponseWriter, _ *http.Request) {
		f := h.Latest()
		if f == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		respondJSON(w, http.StatusOK, f)
	})
	r.Get("/ws", h.ServeWS)

	return r
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Server runs a hub behind an HTTP listener.
type Server struct {
	Hub *Hub

	http   *http.Server
	ln     net.Listener
	cancel context.CancelFunc
}

// Listen binds addr and starts serving in the background.
func Listen(addr string, h *Hub) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("%w: spectate: %w", core.ErrSubsystemInit, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		Hub:    h,
		ln:     ln,
		cancel: cancel,
		http: &http.Server{
			Handler:           NewRouter(h),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}

	go h.Run(ctx)
	go func() {
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			h.logger.Error("spectator server stopped", "err", err)
		}
	}()
	h.logger.Info("spectator feed listening", "address", ln.Addr().String())
	return s, nil
}

// Addr returns the bound address.
func (s *Server) Addr() string {
	return s.ln.Addr().String()
}

// Shutdown stops the listener and disconnects watchers.
func (s *Server) Shutdown(ctx context.Context) error {
	s.cancel()
	return s.http.Shutdown(ctx)
}
