package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/janpfeifer/GoMemory/internal/frontend"
	"github.com/janpfeifer/GoMemory/internal/game"
	"github.com/maxence-charriere/go-app/v10/pkg/app"
	"k8s.io/klog/v2"
)

// Config of the server.
type Config struct {
	// Addr to listen on. Empty means an automatic port on localhost.
	Addr string

	// Game configures the engine of every session.
	Game game.Config
}

// ServerState holds the live sessions, one per WebSocket connection.
type ServerState struct {
	// Address the server is actually listening on.
	Address string

	Config Config

	mu       sync.RWMutex
	Sessions map[string]*Session
}

// NewServerState creates an empty server.
func NewServerState(cfg Config) *ServerState {
	return &ServerState{
		Config:   cfg,
		Sessions: make(map[string]*Session),
	}
}

// Session returns the session with the given ID, or nil.
func (s *ServerState) Session(id string) *Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.Sessions[id]
}

// NumSessions returns the number of live sessions.
func (s *ServerState) NumSessions() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.Sessions)
}

func (s *ServerState) addSession(session *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Sessions[session.ID] = session
}

func (s *ServerState) removeSession(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Sessions, id)
}

func (s *ServerState) closeSessions() {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, session := range s.Sessions {
		session.conn.CloseNow()
	}
}

// Handler returns the HTTP handler serving the UI and the game WebSocket.
func (s *ServerState) Handler() http.Handler {
	// Register go-app routes so the server knows how to prerender them
	app.Route("/", func() app.Composer { return &frontend.Board{} })

	// The web assets and the compiled webassembly
	// are served natively by the go-app framework
	h := &app.Handler{
		Name:        "GoMemory",
		Title:       "Memory Matching Game",
		Description: "A memory matching card game",
		Version:     game.Version,
		Styles: []string{
			"/web/css/main.css",
		},
	}

	mux := http.NewServeMux()

	// Register WebSocket endpoint
	mux.HandleFunc("/ws", s.HandleWS)

	mux.Handle("/web/", http.StripPrefix("/web/", http.FileServer(http.Dir("web/"))))
	mux.Handle("/", h)
	return mux
}

// Run starts the server and blocks until the context is canceled.
// If started is not nil, it receives the ServerState once the server is listening.
func Run(ctx context.Context, cfg Config, started chan<- *ServerState) error {
	if err := cfg.Game.Validate(); err != nil {
		return fmt.Errorf("invalid game configuration: %w", err)
	}

	// Initialize global client state for server-side prerendering without panic
	frontend.InitState()

	serverState := NewServerState(cfg)

	addr := cfg.Addr
	if addr == "" {
		addr = "localhost:0"
	}
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %q: %w", addr, err)
	}
	serverState.Address = listener.Addr().String()

	srv := &http.Server{
		Handler: serverState.Handler(),
	}

	serveErr := make(chan error, 1)
	go func() {
		klog.Infof("Server started on %s", serverState.Address)
		if err := srv.Serve(listener); err != nil && err != http.ErrServerClosed {
			klog.Errorf("Server error: %v", err)
			serveErr <- err
		}
		close(serveErr)
	}()
	if started != nil {
		started <- serverState
	}

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
	}

	// Graceful shutdown with 5 second timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	klog.Infof("Shutting down server...")
	err = srv.Shutdown(shutdownCtx)
	// Hijacked WebSocket connections are not tracked by http.Server.
	serverState.closeSessions()
	return err
}
