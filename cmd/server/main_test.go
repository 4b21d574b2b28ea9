package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/iho/ledgerexplorer/internal/adapter/http/middleware"
	"github.com/iho/ledgerexplorer/internal/infrastructure/config"
)

func TestRunLimiterCleanupStopsOnCancel(t *testing.T) {
	rl := middleware.NewRateLimiter(1, 1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		runLimiterCleanup(ctx, rl, 5*time.Millisecond)
		close(done)
	}()

	// throttle one client, then let the cleanup evict its limiter
	handler := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	send := func() int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "9.9.9.9:1"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}
	send()
	if code := send(); code != http.StatusTooManyRequests {
		t.Fatalf("expected throttled request, got %d", code)
	}

	deadline := time.After(2 * time.Second)
	for send() == http.StatusTooManyRequests {
		select {
		case <-deadline:
			t.Fatal("idle limiter was never evicted")
		case <-time.After(20 * time.Millisecond):
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("cleanup loop did not stop after cancel")
	}
}

func TestNewIndexerClientsOnePerNetwork(t *testing.T) {
	cfg := &config.Config{
		Networks:      []string{"mainnet", "shimmer"},
		ChronicleURLs: map[string]string{"mainnet": "http://chronicle-iota", "shimmer": "http://chronicle-smr"},
		NodeURLs:      map[string]string{"mainnet": "http://node-iota", "shimmer": "http://node-smr"},
	}

	clients, err := newIndexerClients(cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mainnet, err := clients.Client("mainnet")
	if err != nil {
		t.Fatalf("expected mainnet client: %v", err)
	}
	shimmer, err := clients.Client("shimmer")
	if err != nil {
		t.Fatalf("expected shimmer client: %v", err)
	}
	if mainnet == shimmer {
		t.Fatal("expected a distinct client per network")
	}

	if _, err := clients.Client("testnet"); err == nil {
		t.Fatal("expected no client for an unconfigured network")
	}
}

func TestNewIndexerClientsMissingEndpoint(t *testing.T) {
	cfg := &config.Config{
		Networks:     []string{"mainnet", "shimmer"},
		ChronicleURL: "http://chronicle",
		NodeURL:      "http://node",
	}

	if _, err := newIndexerClients(cfg); err == nil {
		t.Fatal("expected error when several networks share one endpoint")
	}
}
