package domain

import "errors"

var (
	// Network errors
	ErrNetworkNotFound          = errors.New("network not found")
	ErrHistoryExportUnsupported = errors.New("network does not support history export")

	// Address errors
	ErrInvalidAddress = errors.New("invalid address")

	// Output errors
	ErrOutputNotFound  = errors.New("output not found")
	ErrMalformedOutput = errors.New("malformed output response")

	// Export errors
	ErrArchiveFailed = errors.New("failed to build history archive")
)
