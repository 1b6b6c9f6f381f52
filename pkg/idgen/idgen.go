package idgen

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Generator produces identifiers of the form "<prefix>-<suffix>".
type Generator interface {
	Next(prefix string) string
}

// UUID suffixes every identifier with a random v4 UUID.
type UUID struct{}

func (UUID) Next(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString())
}

// Sequence hands out monotonically increasing suffixes per prefix, starting at 1.
// It keeps test output deterministic.
type Sequence struct {
	mu       sync.Mutex
	counters map[string]int64
}

func NewSequence() *Sequence {
	return &Sequence{counters: make(map[string]int64)}
}

func (s *Sequence) Next(prefix string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.counters[prefix]++
	return fmt.Sprintf("%s-%d", prefix, s.counters[prefix])
}

// New returns the generator for a configured strategy name; unknown names fall back to UUID.
func New(strategy string) Generator {
	if strategy == "sequence" {
		return NewSequence()
	}
	return UUID{}
}
