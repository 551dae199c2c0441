package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/janpfeifer/GoMemory/internal/game"
	"github.com/janpfeifer/GoMemory/internal/server"
	_ "github.com/joho/godotenv/autoload"
	"k8s.io/klog/v2"
)

var (
	flagAddr       = flag.String("addr", os.Getenv("MEMORY_ADDR"), "Address to listen on (default: auto-port on localhost). Env: MEMORY_ADDR")
	flagMatchDelay = flag.Duration("match_delay", envDuration("MEMORY_MATCH_DELAY", game.DefaultMatchDelay), "Time the two cards of a turn stay face up before the match-check. Env: MEMORY_MATCH_DELAY")
	flagSeed       = flag.Int64("seed", envInt64("MEMORY_SEED", 0), "Seed for the deck shuffling, 0 for a time based seed. Env: MEMORY_SEED")
)

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			klog.Warningf("Ignoring %s=%q: %v", key, v, err)
			return def
		}
		return d
	}
	return def
}

func envInt64(key string, def int64) int64 {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			klog.Warningf("Ignoring %s=%q: %v", key, v, err)
			return def
		}
		return n
	}
	return def
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	cfg := server.Config{
		Addr: *flagAddr,
		Game: game.Config{
			MatchDelay: *flagMatchDelay,
			Seed:       *flagSeed,
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	started := make(chan *server.ServerState, 1)
	go func() {
		state := <-started
		fmt.Printf("GoMemory server listening on http://%s\n", state.Address)
	}()

	if err := server.Run(ctx, cfg, started); err != nil {
		klog.Errorf("Server failed: %v", err)
		klog.Flush()
		os.Exit(1)
	}
}
