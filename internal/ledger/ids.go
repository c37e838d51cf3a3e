package ledger

import (
	"strconv"

	"github.com/google/uuid"
)

// IDSource mints expense identifiers. Every call must return a value distinct from
// all previous calls in the same session.
type IDSource interface {
	NewID() string
}

// UUIDSource issues time-ordered UUIDv7 identifiers.
type UUIDSource struct{}

// NewID implements IDSource.
func (UUIDSource) NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Counter issues "1", "2", "3", ... Not safe for concurrent use.
type Counter struct {
	n uint64
}

// NewID implements IDSource.
func (c *Counter) NewID() string {
	c.n++
	return strconv.FormatUint(c.n, 10)
}
