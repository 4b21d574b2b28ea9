package usecase

import (
	"context"
	"time"

	"github.com/iho/ledgerexplorer/internal/domain"
)

// OutputSource lists the ledger updates of an address.
type OutputSource interface {
	// ListOutputs returns every output ref of address booked after since (unix seconds, 0 for all).
	ListOutputs(ctx context.Context, network, address string, since uint32) ([]domain.RawOutputRef, error)
}

// OutputDetailResolver fetches the body and metadata of a single output.
type OutputDetailResolver interface {
	ResolveOutput(ctx context.Context, network, outputID string) (*domain.OutputDetail, error)
}

// TokenInfoProvider supplies the token conventions of a network.
// It returns domain.ErrNetworkNotFound or domain.ErrHistoryExportUnsupported for networks
// the history engine cannot serve.
type TokenInfoProvider interface {
	TokenInfo(ctx context.Context, network string) (domain.TokenInfo, error)
}

// ArchiveWriter packs a single CSV file into a downloadable archive.
type ArchiveWriter interface {
	WriteCSVEntry(filename, content string) ([]byte, error)
	ContentType() string
}

// ExportObserver receives export lifecycle events, typically to record metrics.
type ExportObserver interface {
	OutputResolved(ok bool)
	AmountRejected()
	ExportFinished(kind, status string, duration time.Duration, records int)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}
