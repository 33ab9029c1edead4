package constants

// DocStatus is the terminal status of one document in a batch run.
type DocStatus string

// Stable values (these exact strings appear in logs and summaries).
const (
	DocStatusOK     DocStatus = "OK"     // extracted and persisted
	DocStatusFailed DocStatus = "FAILED" // skipped, batch continued
)
