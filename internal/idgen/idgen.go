// Package idgen issues role-prefixed user identifiers.
package idgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/verte-zerg/skillshare/internal/model"
)

const (
	seekerBase   = 1000
	providerBase = 2000

	seekerPrefix   = "S"
	providerPrefix = "P"
)

// Generator maintains one monotonically increasing counter per role.
// It is owned by the store; there is no package-level state.
type Generator struct {
	nextSeeker   int64
	nextProvider int64
}

// New returns a Generator with both counters at their bases.
func New() *Generator {
	return &Generator{nextSeeker: seekerBase, nextProvider: providerBase}
}

// Next returns the next identifier for the role and advances its counter.
func (g *Generator) Next(role model.Role) string {
	switch role {
	case model.RoleProvider:
		id := providerPrefix + strconv.FormatInt(g.nextProvider, 10)
		g.nextProvider++
		return id
	default:
		id := seekerPrefix + strconv.FormatInt(g.nextSeeker, 10)
		g.nextSeeker++
		return id
	}
}

// Observe advances the matching counter past a previously issued id so that
// ids loaded from disk are never re-issued. Ids with an unknown prefix are
// ignored; a malformed numeric suffix is reported but leaves the counters
// untouched.
func (g *Generator) Observe(id string) error {
	if len(id) < 2 {
		return nil
	}
	suffix := id[1:]
	switch {
	case strings.HasPrefix(id, seekerPrefix):
		seq, err := strconv.ParseInt(suffix, 10, 64)
		if err != nil {
			return fmt.Errorf("malformed seeker id %q: %w", id, err)
		}
		if seq >= g.nextSeeker {
			g.nextSeeker = seq + 1
		}
	case strings.HasPrefix(id, providerPrefix):
		seq, err := strconv.ParseInt(suffix, 10, 64)
		if err != nil {
			return fmt.Errorf("malformed provider id %q: %w", id, err)
		}
		if seq >= g.nextProvider {
			g.nextProvider = seq + 1
		}
	}
	return nil
}

// Reset restores both counters to their bases. Run before loading persisted
// data so restarts without a data file stay deterministic.
func (g *Generator) Reset() {
	g.nextSeeker = seekerBase
	g.nextProvider = providerBase
}
