// Package lifecycle holds shared constants for process start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful shutdown of managed
// resources (HTTP server drain, store connection close).
const DefaultTimeout = 10 * time.Second
