package rule

import (
	"sort"

	"github.com/tidycss/tidycss/internal/lint"
)

// Registry is a collection of named rules. Registration happens once
// at process start; a Registry is read-only during verification runs.
type Registry struct {
	byID map[string]Rule
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]Rule)}
}

// Register adds a rule. Registering a second rule with the same id
// overwrites the previous definition: lookups always resolve to the
// most recently registered rule for that id.
func (g *Registry) Register(r Rule) {
	g.byID[r.Meta().ID] = r
}

// Clear empties the registry. Used for isolated test runs.
func (g *Registry) Clear() {
	g.byID = make(map[string]Rule)
}

// List returns the registered rules in ascending lexicographic id
// order. The ordering is surfaced to external tooling and must stay
// stable regardless of registration order.
func (g *Registry) List() []Rule {
	ids := make([]string, 0, len(g.byID))
	for id := range g.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	rules := make([]Rule, 0, len(ids))
	for _, id := range ids {
		rules = append(rules, g.byID[id])
	}
	return rules
}

// ByID returns the rule registered under id, or nil.
func (g *Registry) ByID(id string) Rule {
	return g.byID[id]
}

// DefaultRuleset returns a fresh mapping of every registered rule id
// to warning severity. Callers own and freely mutate the result.
func (g *Registry) DefaultRuleset() lint.Ruleset {
	rs := make(lint.Ruleset, len(g.byID))
	for id := range g.byID {
		rs[id] = lint.Warn
	}
	return rs
}

// defaultRegistry backs the package-level registration used by the
// per-rule init functions.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Register adds a rule to the process-wide registry.
func Register(r Rule) {
	defaultRegistry.Register(r)
}

// All returns the process-wide registry's rules sorted by id.
func All() []Rule {
	return defaultRegistry.List()
}

// ByID returns a rule from the process-wide registry, or nil.
func ByID(id string) Rule {
	return defaultRegistry.ByID(id)
}

// Reset clears the process-wide registry. Used for testing.
func Reset() {
	defaultRegistry.Clear()
}
