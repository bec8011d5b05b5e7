package mocks

import (
	"fmt"

	"github.com/futevolucao/futevolucao-go/internal/dependencies/ident"
)

// MockIdent is a mock id generator for testing
type MockIdent struct {
	// IDResults is a queue of ids to return from NewID
	IDResults []string
	idIndex   int

	// counter backs generated ids once the queue is exhausted
	counter int
}

// Ensure MockIdent implements Generator
var _ ident.Generator = (*MockIdent)(nil)

// NewMockIdent creates a new MockIdent
func NewMockIdent() *MockIdent {
	return &MockIdent{}
}

// NewID returns the next queued id, or a sequential "id-N" fallback
func (g *MockIdent) NewID() string {
	if g.idIndex < len(g.IDResults) {
		result := g.IDResults[g.idIndex]
		g.idIndex++
		return result
	}
	g.counter++
	return fmt.Sprintf("id-%d", g.counter)
}

// QueueID adds ids to the result queue
func (g *MockIdent) QueueID(ids ...string) {
	g.IDResults = append(g.IDResults, ids...)
}

// Reset clears queued ids and the fallback counter
func (g *MockIdent) Reset() {
	g.IDResults = nil
	g.idIndex = 0
	g.counter = 0
}
