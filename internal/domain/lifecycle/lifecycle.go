// Package lifecycle holds process-wide lifecycle settings shared by deliveries.
package lifecycle

import "time"

// DefaultTimeout bounds graceful start and stop of every delivery.
const DefaultTimeout = 30 * time.Second
