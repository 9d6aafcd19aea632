package filter

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Manager holds named filters, typically loaded from configuration,
// and evaluates them on demand.
type Manager struct {
	compiler  Compiler
	evaluator *Evaluator
	filters   map[string]CompiledFilter
	mu        sync.RWMutex
}

// ManagerOption configures a filter manager.
type ManagerOption func(*Manager)

// WithCompiler sets a custom compiler.
func WithCompiler(compiler Compiler) ManagerOption {
	return func(m *Manager) {
		m.compiler = compiler
	}
}

// WithEvaluator sets a custom evaluator.
func WithEvaluator(evaluator *Evaluator) ManagerOption {
	return func(m *Manager) {
		m.evaluator = evaluator
	}
}

// NewManager creates a filter manager.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		compiler:  NewExprCompiler(),
		evaluator: NewEvaluator(),
		filters:   make(map[string]CompiledFilter),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Register compiles and stores a filter under the given name,
// replacing any previous filter with that name.
func (m *Manager) Register(name, expression string) error {
	filter, err := m.compiler.Compile(expression)
	if err != nil {
		return fmt.Errorf("failed to compile filter '%s': %w", name, err)
	}

	m.mu.Lock()
	m.filters[name] = filter
	m.mu.Unlock()

	return nil
}

// RegisterAll compiles and stores multiple filters. Nothing is stored
// unless every expression compiles.
func (m *Manager) RegisterAll(filters map[string]string) error {
	compiled := make(map[string]CompiledFilter, len(filters))

	for name, expression := range filters {
		filter, err := m.compiler.Compile(expression)
		if err != nil {
			return fmt.Errorf("failed to compile filter '%s': %w", name, err)
		}
		compiled[name] = filter
	}

	m.mu.Lock()
	maps.Copy(m.filters, compiled)
	m.mu.Unlock()

	return nil
}

// Unregister removes a filter.
func (m *Manager) Unregister(name string) {
	m.mu.Lock()
	delete(m.filters, name)
	m.mu.Unlock()
}

// Get returns a compiled filter by name.
func (m *Manager) Get(name string) (CompiledFilter, bool) {
	m.mu.RLock()
	filter, exists := m.filters[name]
	m.mu.RUnlock()
	return filter, exists
}

// Names returns all registered filter names, sorted.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.filters))
	for name := range m.filters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// EvaluateFilter evaluates one registered filter against the items.
func (m *Manager) EvaluateFilter(ctx context.Context, name string, items []Item) ([]Item, error) {
	filter, exists := m.Get(name)
	if !exists {
		return nil, fmt.Errorf("filter '%s' not found", name)
	}

	return m.evaluator.Evaluate(ctx, filter, items)
}

// EvaluateAll evaluates every registered filter against the items.
func (m *Manager) EvaluateAll(ctx context.Context, items []Item) (map[string][]Item, error) {
	m.mu.RLock()
	filters := make(map[string]CompiledFilter, len(m.filters))
	maps.Copy(filters, m.filters)
	m.mu.RUnlock()

	return m.evaluator.EvaluateBatch(ctx, filters, items)
}
