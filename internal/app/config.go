package app

import "time"

// Defaults shared between flag registration and file-config overlay.
const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "goreceipts/1.0 (+https://github.com/hyperifyio/goreceipts)"
)

// Config holds runtime configuration for one extraction run.
type Config struct {
	// Source is the bank identifier, e.g. "cbe" or "telebirr".
	Source string
	// Location is a receipt URL, a local file path holding already-acquired
	// document bytes, or (for Telebirr) a bare receipt ID.
	Location string

	// OutputPath receives the JSON result; empty means stdout.
	OutputPath string

	// Acquisition policy.
	Timeout   time.Duration
	Insecure  bool
	UserAgent string

	Verbose bool
}
