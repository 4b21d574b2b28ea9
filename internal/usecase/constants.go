package usecase

const (
	// DefaultResolveConcurrency caps in-flight output detail lookups per request.
	DefaultResolveConcurrency = 16

	// HistoryFilename is the name of the CSV entry inside the history archive.
	HistoryFilename = "history.csv"

	// ArchiveFilename is the name the archive is delivered under.
	ArchiveFilename = "history.zip"
)

// Export kinds and statuses reported to the ExportObserver.
const (
	KindView     = "view"
	KindDownload = "download"

	StatusSuccess  = "success"
	StatusRejected = "rejected"
	StatusFailed   = "failed"
)
