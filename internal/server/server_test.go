package server

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/janpfeifer/GoMemory/internal/game"
)

func TestServerRun(t *testing.T) {
	// Use a background context that we can cancel
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start the server in a goroutine
	started := make(chan *ServerState, 1)
	errCh := make(chan error, 1)
	go func() {
		errCh <- Run(ctx, Config{Game: game.DefaultConfig()}, started)
	}()

	var s *ServerState
	select {
	case s = <-started:
	case err := <-errCh:
		t.Fatalf("Server failed to start: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatalf("Server took too long to start")
	}

	resp, err := http.Get("http://" + s.Address + "/")
	if err != nil {
		t.Fatalf("Failed to connect to server: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected status OK, got %v", resp.Status)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read body: %v", err)
	}

	body := string(bodyBytes)

	// The go-app framework generates standard HTML, prerendering the board page.
	if !strings.Contains(body, "Memory Matching Game") {
		t.Errorf("Expected body to contain 'Memory Matching Game', got body: %s", body)
	}

	// Cancel the context to stop the server
	cancel()

	// Wait for the server to shutdown cleanly
	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("Server shut down with error: %v", err)
		}
	case <-time.After(6 * time.Second):
		t.Errorf("Server took too long to shut down")
	}
}

func TestServerRunInvalidConfig(t *testing.T) {
	err := Run(context.Background(), Config{Game: game.Config{MatchDelay: -time.Second}}, nil)
	if err == nil {
		t.Errorf("Expected an error for a negative match delay")
	}
}
