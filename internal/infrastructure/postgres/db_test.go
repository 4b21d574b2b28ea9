package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
)

func TestNewPoolWithConfigDefaults(t *testing.T) {
	ctx := context.Background()

	// using invalid URL should return error
	if _, err := NewPoolWithConfig(ctx, PoolConfig{DatabaseURL: "not-a-url"}); err == nil {
		t.Fatalf("expected error when parsing invalid URL")
	}
}

func TestNewPoolWithConfigPingFailure(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cfg := PoolConfig{
		DatabaseURL: "postgres://invalid:5432/db?connect_timeout=1",
		MaxConns:    1,
		MinConns:    0,
	}

	_, err := NewPoolWithConfig(ctx, cfg)
	if err == nil {
		t.Fatalf("expected error when pool cannot connect")
	}
}

func TestNewPoolWithConfigRetriesUntilTimeout(t *testing.T) {
	ctx := context.Background()

	cfg := PoolConfig{
		DatabaseURL:    "postgres://invalid:5432/db?connect_timeout=1",
		MaxConns:       1,
		ConnectTimeout: 300 * time.Millisecond,
	}

	start := time.Now()
	if _, err := NewPoolWithConfig(ctx, cfg); err == nil {
		t.Fatalf("expected error when database never becomes reachable")
	}
	if elapsed := time.Since(start); elapsed > 30*time.Second {
		t.Fatalf("expected retries to stop near the connect timeout, took %s", elapsed)
	}
}

func TestConnectBackOffWithoutTimeoutStopsImmediately(t *testing.T) {
	b := connectBackOff(context.Background(), 0)
	if next := b.NextBackOff(); next != backoff.Stop {
		t.Fatalf("expected no retry, got %s", next)
	}
}

func TestRunMigrationsInvalidSource(t *testing.T) {
	if err := RunMigrations("postgres://invalid:5432/db?sslmode=disable", "/nonexistent/migrations"); err == nil {
		t.Fatalf("expected error for missing migrations directory")
	}
}
