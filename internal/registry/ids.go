package registry

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator produces identifiers for new menus and rules.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random version 4 UUIDs.
type UUIDGenerator struct{}

// NewID implements IDGenerator.
func (UUIDGenerator) NewID() string { return uuid.NewString() }

// Counter issues "<prefix>-1", "<prefix>-2", ... and is safe for concurrent
// use. Tests use it for deterministic ids.
type Counter struct {
	prefix string
	n      atomic.Uint64
}

// NewCounter returns a Counter starting at 1.
func NewCounter(prefix string) *Counter {
	return &Counter{prefix: prefix}
}

// NewID implements IDGenerator.
func (c *Counter) NewID() string {
	return fmt.Sprintf("%s-%d", c.prefix, c.n.Add(1))
}
