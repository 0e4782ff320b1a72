// Package lifecycle holds timing constants shared by long-running components.
package lifecycle

import "time"

// DefaultTimeout bounds start-up checks and graceful shutdown.
const DefaultTimeout = 10 * time.Second
