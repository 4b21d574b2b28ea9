package idgen

import (
	"testing"
	"time"
)

func TestULIDGeneratorIsMonotonic(t *testing.T) {
	fixed := time.Date(2023, 10, 4, 12, 0, 0, 0, time.UTC)
	g := NewULIDGenerator()
	g.now = func() time.Time { return fixed }

	prev := g.Generate()
	for i := 0; i < 100; i++ {
		next := g.Generate()
		if next <= prev {
			t.Fatalf("expected %s to sort after %s", next, prev)
		}
		prev = next
	}
}

func TestGeneratedAt(t *testing.T) {
	fixed := time.Date(2023, 10, 4, 12, 0, 0, 0, time.UTC)
	g := NewULIDGenerator()
	g.now = func() time.Time { return fixed }

	at, err := GeneratedAt(g.Generate())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !at.Equal(fixed) {
		t.Fatalf("expected %s, got %s", fixed, at)
	}
}

func TestGeneratedAtRejectsGarbage(t *testing.T) {
	if _, err := GeneratedAt("not-a-ulid"); err == nil {
		t.Fatalf("expected parse error")
	}
}
