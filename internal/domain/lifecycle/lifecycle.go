// Package lifecycle holds shared start/stop settings for fx hooks.
package lifecycle

import "time"

// DefaultTimeout bounds connect, ping and shutdown work in lifecycle hooks.
const DefaultTimeout = 10 * time.Second
