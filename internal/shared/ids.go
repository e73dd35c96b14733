package shared

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// IDGenerator produces ids that are unique for the lifetime of a session.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator returns random UUIDv4 strings.
type UUIDGenerator struct{}

// NewID returns a new UUID.
func (UUIDGenerator) NewID() string { return uuid.NewString() }

// SequenceGenerator returns prefix-1, prefix-2, ... Deterministic ids make
// test expectations readable.
type SequenceGenerator struct {
	mu     sync.Mutex
	prefix string
	n      int
}

// NewSequenceGenerator returns a generator whose ids start with prefix.
func NewSequenceGenerator(prefix string) *SequenceGenerator {
	return &SequenceGenerator{prefix: prefix}
}

// NewID returns the next id in the sequence.
func (g *SequenceGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.n++
	return fmt.Sprintf("%s-%d", g.prefix, g.n)
}
