package usecase

import (
	"errors"

	"github.com/iho/ledgerexplorer/internal/domain"
)

// isRejection reports whether err refused the request before any processing started.
func isRejection(err error) bool {
	return errors.Is(err, domain.ErrInvalidAddress) ||
		errors.Is(err, domain.ErrNetworkNotFound) ||
		errors.Is(err, domain.ErrHistoryExportUnsupported)
}
