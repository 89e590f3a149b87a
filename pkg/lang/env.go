package lang

import "sort"

// Environment is the single flat scope of a program run. Names are bound at
// most once: there is no reassignment and no shadowing.
type Environment struct {
	values map[string]int64
}

func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]int64)}
}

// Define binds name to value. It fails when name is already bound.
func (e *Environment) Define(name string, value int64) error {
	if _, exists := e.values[name]; exists {
		return runtimeErrorf("variable %q already declared", name)
	}
	e.values[name] = value
	return nil
}

// Get returns the value bound to name.
func (e *Environment) Get(name string) (int64, error) {
	v, ok := e.values[name]
	if !ok {
		return 0, runtimeErrorf("undeclared variable %q", name)
	}
	return v, nil
}

// Len returns the number of bindings.
func (e *Environment) Len() int {
	return len(e.values)
}

// Keys returns the bound names in sorted order.
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
