// Package seq hands out sequential identifiers.
package seq

import (
	"sync/atomic"

	"github.com/leap-fish/ntype/typeid"
)

// Counter is a monotonically increasing identifier source starting at 0.
// The zero value is ready for use. A Counter is never reset.
type Counter struct {
	next atomic.Uint64
}

// Next returns the next free identifier. Concurrent callers never observe
// the same value and no value is skipped.
func (c *Counter) Next() typeid.ID {
	return typeid.ID(c.next.Add(1) - 1)
}

// Peek returns how many identifiers have been handed out so far.
func (c *Counter) Peek() typeid.ID {
	return typeid.ID(c.next.Load())
}

// Process is the process-wide counter shared by every default registry.
var Process = &Counter{}

// Next allocates from the Process counter.
func Next() typeid.ID {
	return Process.Next()
}
