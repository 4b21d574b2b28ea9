package indexer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iho/ledgerexplorer/internal/domain"
)

const testAddress = "smr1qp8rknypruss89dkqnnuedm87y7xmnmdj2tk3rwcpgamapcep7uvznuxg57"

func TestListOutputsFollowsCursor(t *testing.T) {
	var requests int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.URL.Path != "/api/explorer/v2/ledger/updates/by-address/"+testAddress {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("sort") != "oldest" {
			t.Errorf("expected oldest-first sort, got %s", r.URL.RawQuery)
		}

		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("cursor") {
		case "":
			w.Write([]byte(`{"address":"` + testAddress + `","items":[
				{"outputId":"0x01","isSpent":false,"milestoneIndex":1,"milestoneTimestamp":0},
				{"outputId":"0x02","isSpent":true,"milestoneIndex":2,"milestoneTimestamp":100}
			],"cursor":"next"}`))
		case "next":
			w.Write([]byte(`{"address":"` + testAddress + `","items":[
				{"outputId":"0x03","isSpent":false,"milestoneIndex":3,"milestoneTimestamp":200}
			]}`))
		default:
			t.Errorf("unexpected cursor %s", r.URL.Query().Get("cursor"))
			http.Error(w, "bad cursor", http.StatusBadRequest)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.URL, WithPageSize(2))

	refs, err := c.ListOutputs(context.Background(), "shimmer", testAddress, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if requests != 2 {
		t.Fatalf("expected 2 page requests, got %d", requests)
	}

	if len(refs) != 3 {
		t.Fatalf("expected 3 refs, got %d", len(refs))
	}

	if !refs[1].IsSpent || refs[1].MilestoneTimestamp != 100 || refs[0].OutputID != "0x01" {
		t.Fatalf("unexpected refs %+v", refs)
	}

	since, err := c.ListOutputs(context.Background(), "shimmer", testAddress, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(since) != 1 || since[0].OutputID != "0x03" {
		t.Fatalf("expected only outputs after since, got %+v", since)
	}
}

func TestListOutputsUnknownAddress(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	refs, err := NewClient(srv.URL, srv.URL).ListOutputs(context.Background(), "shimmer", testAddress, 0)
	if err != nil {
		t.Fatalf("expected empty history, got %v", err)
	}
	if len(refs) != 0 {
		t.Fatalf("expected no refs, got %d", len(refs))
	}
}

func TestListOutputsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	if _, err := NewClient(srv.URL, srv.URL).ListOutputs(context.Background(), "shimmer", testAddress, 0); err == nil {
		t.Fatal("expected error for server failure")
	}
}

func TestResolveOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/core/v2/outputs/0xspent":
			w.Write([]byte(`{"metadata":{"blockId":"0xb","transactionId":"0xcreate","outputIndex":0,"isSpent":true,
				"transactionIdSpent":"0xspend","milestoneTimestampBooked":100,"milestoneTimestampSpent":200},
				"output":{"type":3,"amount":"18446744073709551616"}}`))
		case "/api/core/v2/outputs/0xnometa":
			w.Write([]byte(`{"output":{"type":3,"amount":"1"}}`))
		case "/api/core/v2/outputs/0xgarbage":
			w.Write([]byte(`not json`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, srv.URL)
	ctx := context.Background()

	detail, err := c.ResolveOutput(ctx, "shimmer", "0xspent")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if detail.Amount != "18446744073709551616" || detail.TransactionID != "0xcreate" || detail.TransactionIDSpent != "0xspend" {
		t.Fatalf("unexpected detail %+v", detail)
	}
	if detail.MilestoneTimestampBooked != 100 {
		t.Fatalf("expected booked timestamp 100, got %d", detail.MilestoneTimestampBooked)
	}

	if _, err := c.ResolveOutput(ctx, "shimmer", "0xnometa"); !errors.Is(err, domain.ErrMalformedOutput) {
		t.Fatalf("expected ErrMalformedOutput, got %v", err)
	}

	if _, err := c.ResolveOutput(ctx, "shimmer", "0xgarbage"); !errors.Is(err, domain.ErrMalformedOutput) {
		t.Fatalf("expected ErrMalformedOutput for invalid json, got %v", err)
	}

	if _, err := c.ResolveOutput(ctx, "shimmer", "0xmissing"); !errors.Is(err, domain.ErrOutputNotFound) {
		t.Fatalf("expected ErrOutputNotFound, got %v", err)
	}
}
