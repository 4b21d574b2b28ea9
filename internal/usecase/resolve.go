package usecase

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/iho/ledgerexplorer/internal/domain"
)

// resolveOutputs looks up the detail of every ref with at most uc.concurrency lookups in flight.
// The result has the same order as refs. A failed lookup leaves its output unresolved and is
// logged; only cancellation of ctx fails the batch.
func (uc *HistoryUseCase) resolveOutputs(ctx context.Context, logger zerolog.Logger, network string, refs []domain.RawOutputRef) ([]domain.ResolvedOutput, error) {
	resolved := make([]domain.ResolvedOutput, len(refs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency)

	for i, ref := range refs {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			detail, err := uc.resolver.ResolveOutput(gctx, network, ref.OutputID)
			if err == nil && detail == nil {
				err = domain.ErrOutputNotFound
			}
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}

				logger.Warn().Err(err).Str("output_id", ref.OutputID).Msg("failed to resolve output details")
				uc.observer.OutputResolved(false)
				resolved[i] = domain.Resolve(ref, nil)
				return nil
			}

			uc.observer.OutputResolved(true)
			resolved[i] = domain.Resolve(ref, detail)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return resolved, nil
}
