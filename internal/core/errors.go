package core

import "errors"

// Boot-time failure kinds. Hosts wrap the underlying cause with %w so callers
// can test the kind with errors.Is and still read the cause.
var (
	// ErrAssetLoad marks a missing, unreadable or invalid level/config asset.
	ErrAssetLoad = errors.New("asset load failure")

	// ErrSubsystemInit marks a presentation or persistence subsystem that failed to start.
	ErrSubsystemInit = errors.New("subsystem init failure")
)
