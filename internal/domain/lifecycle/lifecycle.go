// Package lifecycle holds timing constants shared by components started and
// stopped through fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds startup probes and graceful shutdown of servers and clients.
const DefaultTimeout = 10 * time.Second
