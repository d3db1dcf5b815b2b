package ports

import "time"

// Clock returns the current instant. Statistics that depend on time take one so tests can pin it.
type Clock func() time.Time
