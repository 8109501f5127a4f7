// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful shutdown of infrastructure
// components (database pings, HTTP server shutdown, publisher close).
const DefaultTimeout = 10 * time.Second
