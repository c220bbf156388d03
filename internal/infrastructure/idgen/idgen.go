// Package idgen provides the identifier generators used by the store.
package idgen

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/storefront/store-service/internal/core/ports"
)

const (
	StrategyUUID     = "uuid"
	StrategySequence = "sequence"
)

// UUID generates random version 4 identifiers, optionally prefixed.
type UUID struct {
	Prefix string
}

func (g UUID) NewID() string {
	return g.Prefix + uuid.NewString()
}

// Sequence generates deterministic identifiers of the form <prefix>000001.
// Safe for concurrent use.
type Sequence struct {
	prefix string
	next   atomic.Uint64
}

func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

func (g *Sequence) NewID() string {
	return fmt.Sprintf("%s%06d", g.prefix, g.next.Add(1))
}

// New returns the generator for the named strategy.
func New(strategy, prefix string) (ports.IDGenerator, error) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case "", StrategyUUID:
		return UUID{Prefix: prefix}, nil
	case StrategySequence:
		return NewSequence(prefix), nil
	default:
		return nil, fmt.Errorf("idgen: unknown strategy %q", strategy)
	}
}
