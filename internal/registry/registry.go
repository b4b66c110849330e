// Package registry provides the in-memory entity collections backing the
// domain store. Each registry is the single source of truth for its entity
// family during a process lifetime; registries are owned by the store, never
// package-level.
package registry

import (
	"strings"

	"github.com/verte-zerg/skillshare/internal/model"
)

// Registry is an ordered in-memory collection with predicate lookup.
type Registry[T any] struct {
	items []T
}

// Add appends an entity.
func (r *Registry[T]) Add(item T) {
	r.items = append(r.items, item)
}

// All returns a defensive copy; caller mutation must not affect the registry.
func (r *Registry[T]) All() []T {
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

// Find returns the first entity matching the predicate, in insertion order.
func (r *Registry[T]) Find(pred func(T) bool) (T, bool) {
	for _, item := range r.items {
		if pred(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Len reports the number of stored entities.
func (r *Registry[T]) Len() int { return len(r.items) }

// Clear removes every entity.
func (r *Registry[T]) Clear() { r.items = nil }

// SkillNameMatches is the shared natural-key comparison: skill-name lookups
// are case-insensitive everywhere.
func SkillNameMatches(a, b string) bool {
	return strings.EqualFold(a, b)
}

// RequestRegistry holds pending session requests and suppresses structural
// duplicates at insertion time.
type RequestRegistry struct {
	requests []model.SessionRequest
}

// Add inserts the request unless a structurally equal one is already queued.
// It reports whether the request was inserted.
func (r *RequestRegistry) Add(req model.SessionRequest) bool {
	for _, existing := range r.requests {
		if existing.Equal(req) {
			return false
		}
	}
	r.requests = append(r.requests, req)
	return true
}

// Remove deletes the first structural match and reports whether one existed.
func (r *RequestRegistry) Remove(req model.SessionRequest) bool {
	for i, existing := range r.requests {
		if existing.Equal(req) {
			r.requests = append(r.requests[:i], r.requests[i+1:]...)
			return true
		}
	}
	return false
}

// All returns a defensive copy of the queued requests.
func (r *RequestRegistry) All() []model.SessionRequest {
	out := make([]model.SessionRequest, len(r.requests))
	copy(out, r.requests)
	return out
}

// Len reports the number of queued requests.
func (r *RequestRegistry) Len() int { return len(r.requests) }

// Clear removes every request.
func (r *RequestRegistry) Clear() { r.requests = nil }

// ResultRegistry holds quiz results, at most one per (seeker, skill) pair.
type ResultRegistry struct {
	results []model.QuizResult
}

// Add inserts the result, replacing any prior result for the same seeker and
// skill. Skill names compare case-insensitively, seeker ids exactly.
func (r *ResultRegistry) Add(result model.QuizResult) {
	for i := len(r.results) - 1; i >= 0; i-- {
		if r.results[i].SeekerID == result.SeekerID && SkillNameMatches(r.results[i].SkillName, result.SkillName) {
			r.results = append(r.results[:i], r.results[i+1:]...)
		}
	}
	r.results = append(r.results, result)
}

// ForSeeker returns every result belonging to the seeker.
func (r *ResultRegistry) ForSeeker(seekerID string) []model.QuizResult {
	var out []model.QuizResult
	for _, res := range r.results {
		if res.SeekerID == seekerID {
			out = append(out, res)
		}
	}
	return out
}

// ForSeekerAndSkill returns the result for the pair, if any.
func (r *ResultRegistry) ForSeekerAndSkill(seekerID, skillName string) (model.QuizResult, bool) {
	for _, res := range r.results {
		if res.SeekerID == seekerID && SkillNameMatches(res.SkillName, skillName) {
			return res, true
		}
	}
	return model.QuizResult{}, false
}

// All returns a defensive copy of the stored results.
func (r *ResultRegistry) All() []model.QuizResult {
	out := make([]model.QuizResult, len(r.results))
	copy(out, r.results)
	return out
}

// Len reports the number of stored results.
func (r *ResultRegistry) Len() int { return len(r.results) }

// Clear removes every result.
func (r *ResultRegistry) Clear() { r.results = nil }
