package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/iho/ledgerexplorer/internal/domain"
)

// HistoryUseCase reconciles the outputs of an address into a transaction history.
type HistoryUseCase struct {
	source        OutputSource
	resolver      OutputDetailResolver
	tokens        TokenInfoProvider
	archive       ArchiveWriter
	idGen         IDGenerator
	observer      ExportObserver
	logger        zerolog.Logger
	concurrency   int
	decimalPlaces uint8
}

// Option configures a HistoryUseCase.
type Option func(*HistoryUseCase)

// WithConcurrency sets the maximum number of concurrent output detail lookups.
func WithConcurrency(n int) Option {
	return func(uc *HistoryUseCase) {
		if n > 0 {
			uc.concurrency = n
		}
	}
}

// WithDecimalPlaces sets the fraction precision used when a request does not pick one.
func WithDecimalPlaces(places uint8) Option {
	return func(uc *HistoryUseCase) {
		uc.decimalPlaces = places
	}
}

// WithObserver sets the observer notified about resolutions and finished exports.
func WithObserver(observer ExportObserver) Option {
	return func(uc *HistoryUseCase) {
		if observer != nil {
			uc.observer = observer
		}
	}
}

// NewHistoryUseCase creates a new HistoryUseCase.
func NewHistoryUseCase(
	source OutputSource,
	resolver OutputDetailResolver,
	tokens TokenInfoProvider,
	archive ArchiveWriter,
	idGen IDGenerator,
	logger zerolog.Logger,
	opts ...Option,
) *HistoryUseCase {
	uc := &HistoryUseCase{
		source:        source,
		resolver:      resolver,
		tokens:        tokens,
		archive:       archive,
		idGen:         idGen,
		observer:      nopObserver{},
		logger:        logger,
		concurrency:   DefaultResolveConcurrency,
		decimalPlaces: domain.DefaultDecimalPlaces,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}

// GetHistoryInput represents input for building an address history.
type GetHistoryInput struct {
	Network string
	Address string
	// Since restricts the listing to outputs booked after this unix timestamp.
	Since uint32
	// TargetDate, when set, keeps only transactions strictly after it.
	TargetDate *time.Time
	// DecimalPlaces overrides the default fraction precision.
	DecimalPlaces *uint8
}

// History is the reconciled transaction history of an address.
type History struct {
	ExportID       string
	Network        string
	Address        string
	Token          domain.TokenInfo
	Records        []domain.TransactionRecord
	TotalOutputs   int
	// SkippedOutputs counts unresolved outputs and rejected amounts within the returned period.
	SkippedOutputs int
}

// ExportResult is a packed history ready for delivery.
type ExportResult struct {
	ExportID       string
	Filename       string
	ContentType    string
	Content        []byte
	Records        int
	SkippedOutputs int
}

// GetHistory builds the transaction history of an address.
func (uc *HistoryUseCase) GetHistory(ctx context.Context, input GetHistoryInput) (*History, error) {
	start := time.Now()

	history, err := uc.buildHistory(ctx, input)
	uc.finish(KindView, start, history, err)

	return history, err
}

// ExportHistory builds the transaction history of an address and packs it as a CSV archive.
// Nothing is returned unless the archive was written completely.
func (uc *HistoryUseCase) ExportHistory(ctx context.Context, input GetHistoryInput) (*ExportResult, error) {
	start := time.Now()

	result, history, err := uc.export(ctx, input)
	uc.finish(KindDownload, start, history, err)

	return result, err
}

func (uc *HistoryUseCase) export(ctx context.Context, input GetHistoryInput) (*ExportResult, *History, error) {
	history, err := uc.buildHistory(ctx, input)
	if err != nil {
		return nil, nil, err
	}

	content, err := RenderCSV(history.Records)
	if err != nil {
		return nil, history, fmt.Errorf("%w: %v", domain.ErrArchiveFailed, err)
	}

	archive, err := uc.archive.WriteCSVEntry(HistoryFilename, content)
	if err != nil {
		return nil, history, fmt.Errorf("%w: %v", domain.ErrArchiveFailed, err)
	}

	return &ExportResult{
		ExportID:       history.ExportID,
		Filename:       ArchiveFilename,
		ContentType:    uc.archive.ContentType(),
		Content:        archive,
		Records:        len(history.Records),
		SkippedOutputs: history.SkippedOutputs,
	}, history, nil
}

func (uc *HistoryUseCase) buildHistory(ctx context.Context, input GetHistoryInput) (*History, error) {
	if err := domain.ValidateAddress(input.Address); err != nil {
		return nil, err
	}

	token, err := uc.tokens.TokenInfo(ctx, input.Network)
	if err != nil {
		return nil, err
	}

	exportID := uc.idGen.Generate()
	logger := uc.logger.With().
		Str("export_id", exportID).
		Str("network", input.Network).
		Str("address", input.Address).
		Logger()

	refs, err := uc.source.ListOutputs(ctx, input.Network, input.Address, input.Since)
	if err != nil {
		return nil, fmt.Errorf("failed to list outputs: %w", err)
	}

	resolved, err := uc.resolveOutputs(ctx, logger, input.Network, refs)
	if err != nil {
		return nil, err
	}

	groups, ungrouped := GroupByTransaction(SortOutputs(resolved))
	for _, out := range ungrouped {
		if out.Resolved {
			logger.Warn().Str("output_id", out.OutputID).Msg("output has no transaction id, skipping")
		}
	}

	places := uc.decimalPlaces
	if input.DecimalPlaces != nil {
		places = *input.DecimalPlaces
	}

	records, rejected := AssembleRecords(groups, token, places)
	for _, outputID := range rejected {
		uc.observer.AmountRejected()
		logger.Warn().Str("output_id", outputID).Msg("output amount is missing or invalid, counted as zero")
	}

	skipped := len(ungrouped) + len(rejected)
	if input.TargetDate != nil {
		records = FilterAfter(records, *input.TargetDate)
		skipped = skippedAfter(records, ungrouped, rejected, *input.TargetDate)
	}

	if skipped > 0 {
		logger.Warn().
			Int("skipped_outputs", skipped).
			Int("total_outputs", len(refs)).
			Msg("history built with incomplete outputs")
	}

	logger.Debug().
		Int("outputs", len(refs)).
		Int("transactions", len(records)).
		Msg("history built")

	return &History{
		ExportID:       exportID,
		Network:        input.Network,
		Address:        input.Address,
		Token:          token,
		Records:        records,
		TotalOutputs:   len(refs),
		SkippedOutputs: skipped,
	}, nil
}

func (uc *HistoryUseCase) finish(kind string, start time.Time, history *History, err error) {
	status := StatusSuccess
	switch {
	case err == nil:
	case isRejection(err):
		status = StatusRejected
	default:
		status = StatusFailed
		uc.logger.Error().Err(err).Str("kind", kind).Msg("history export failed")
	}

	records := 0
	if err == nil && history != nil {
		records = len(history.Records)
	}

	uc.observer.ExportFinished(kind, status, time.Since(start), records)
}

type nopObserver struct{}

func (nopObserver) OutputResolved(bool)                               {}
func (nopObserver) AmountRejected()                                   {}
func (nopObserver) ExportFinished(string, string, time.Duration, int) {}
