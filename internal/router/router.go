// Package router maps queries to backend model identifiers using ordered
// keyword-priority rules with randomized tie-breaking for the default case.
package router

import (
	"math/rand"
	"strings"
	"sync"

	"github.com/psychohealer/psychohealer/internal/model"
	"github.com/psychohealer/psychohealer/pkg/metrics"
)

// Fixed rule targets. Crisis queries always go to the most reliable backend,
// complex conditions to the advanced-analysis backend, and relationship
// topics to the social-dynamics backend.
const (
	CrisisBackend       = "llama"
	ComplexBackend      = "deepseek"
	RelationshipBackend = "mistral"
)

const (
	ReasonCrisis       = "Crisis situation detected"
	ReasonComplex      = "Complex psychological condition"
	ReasonRelationship = "Relationship and social dynamics"
	ReasonGeneral      = "General concern"
)

var crisisKeywords = []string{
	"suicide", "kill myself", "end my life", "hurt myself", "self-harm",
	"emergency",
}

var complexKeywords = []string{
	"trauma", "ptsd", "bipolar", "schizophrenia", "personality disorder",
	"addiction",
}

var relationshipKeywords = []string{
	"relationship", "marriage", "divorce", "breakup", "partner",
	"friendship", "social anxiety",
}

// Router selects a backend per query. Decisions are memoized by lower-cased
// query text in a bounded cache; memoization is a performance optimization
// only, the general-rotation branch stays non-deterministic across misses.
type Router struct {
	rotation []string

	mu       sync.Mutex
	cache    map[string]model.RoutingDecision
	order    []string
	capacity int
}

// New creates a router with the given general-rotation set and cache capacity.
func New(rotation []string, cacheSize int) *Router {
	if len(rotation) == 0 {
		rotation = []string{CrisisBackend, ComplexBackend}
	}
	if cacheSize <= 0 {
		cacheSize = 100
	}
	return &Router{
		rotation: rotation,
		cache:    make(map[string]model.RoutingDecision, cacheSize),
		order:    make([]string, 0, cacheSize),
		capacity: cacheSize,
	}
}

// Select returns the backend and human-readable reason for a query.
func (r *Router) Select(query string) model.RoutingDecision {
	key := strings.ToLower(strings.TrimSpace(query))

	r.mu.Lock()
	if d, ok := r.cache[key]; ok {
		r.mu.Unlock()
		return d
	}
	r.mu.Unlock()

	d := r.classify(key)

	r.mu.Lock()
	if _, ok := r.cache[key]; !ok {
		if len(r.order) >= r.capacity {
			oldest := r.order[0]
			r.order = r.order[1:]
			delete(r.cache, oldest)
		}
		r.cache[key] = d
		r.order = append(r.order, key)
	}
	r.mu.Unlock()

	metrics.ModelSelectionsTotal.WithLabelValues(d.Backend, d.Reason).Inc()
	return d
}

func (r *Router) classify(q string) model.RoutingDecision {
	if containsAny(q, crisisKeywords) {
		return model.RoutingDecision{Backend: CrisisBackend, Reason: ReasonCrisis}
	}
	if containsAny(q, complexKeywords) {
		return model.RoutingDecision{Backend: ComplexBackend, Reason: ReasonComplex}
	}
	if containsAny(q, relationshipKeywords) {
		return model.RoutingDecision{Backend: RelationshipBackend, Reason: ReasonRelationship}
	}
	return model.RoutingDecision{
		Backend: r.rotation[rand.Intn(len(r.rotation))],
		Reason:  ReasonGeneral,
	}
}

// Rotation returns the configured general-rotation backend set.
func (r *Router) Rotation() []string {
	return r.rotation
}

func containsAny(q string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(q, k) {
			return true
		}
	}
	return false
}
