package sweep

import (
	"fmt"
	"sort"
	"sync"
)

// Param is a sweepable parameter.
type Param struct {
	Name        string
	Description string

	// Apply sets the parameter on a scenario.
	Apply func(s *Scenario, v float64)

	// DefaultRange returns the range swept when none is given.
	// It may depend on the rest of the scenario.
	DefaultRange func(s Scenario) Range
}

var (
	params = make(map[string]Param)
	mu     sync.RWMutex
)

// Register adds a parameter to the registry.
// Panics if a parameter with the same name is already registered.
func Register(p Param) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := params[p.Name]; exists {
		panic(fmt.Sprintf("sweep: parameter %q already registered", p.Name))
	}
	params[p.Name] = p
}

// List returns all registered parameters, sorted by name.
func List() []Param {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Param, 0, len(params))
	for _, p := range params {
		result = append(result, p)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Lookup returns the parameter registered under name.
func Lookup(name string) (Param, error) {
	mu.RLock()
	defer mu.RUnlock()

	p, ok := params[name]
	if !ok {
		return Param{}, fmt.Errorf("sweep: unknown parameter %q", name)
	}
	return p, nil
}

// Exists checks if a parameter with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := params[name]
	return ok
}
