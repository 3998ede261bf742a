// Package lifecycle holds shared constants for fx lifecycle hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown hook work such as pinging
// the database or draining the HTTP server.
const DefaultTimeout = 15 * time.Second
