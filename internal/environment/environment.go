// Package environment abstracts the process environment so the exec
// substitution can run against the real environment or an in-memory copy.
package environment

import (
	"os"
	"sort"
	"strings"
)

// Variable is a single NAME=value pair.
type Variable struct {
	Name  string
	Value string
}

// Store is read-all, remove and set access to an environment.
type Store interface {
	// List returns a snapshot of all variables sorted by name.
	List() []Variable

	// Unset removes name. Removing a missing variable is not an error.
	Unset(name string) error

	// Set installs or overwrites name.
	Set(name, value string) error

	// Environ renders the store as NAME=value strings for a child process.
	Environ() []string
}

// OS is the real process environment.
type OS struct{}

// List implements Store.
func (OS) List() []Variable {
	return parse(os.Environ())
}

// Unset implements Store.
func (OS) Unset(name string) error {
	return os.Unsetenv(name)
}

// Set implements Store.
func (OS) Set(name, value string) error {
	return os.Setenv(name, value)
}

// Environ implements Store.
func (OS) Environ() []string {
	return os.Environ()
}

// Map is an in-memory environment.
type Map struct {
	vars map[string]string
}

// NewMap builds a Map from alternating names and values.
func NewMap(pairs ...string) *Map {
	m := &Map{vars: make(map[string]string)}
	for i := 0; i+1 < len(pairs); i += 2 {
		m.vars[pairs[i]] = pairs[i+1]
	}
	return m
}

// FromEnviron builds a Map from NAME=value strings such as os.Environ().
func FromEnviron(environ []string) *Map {
	m := &Map{vars: make(map[string]string)}
	for _, v := range parse(environ) {
		m.vars[v.Name] = v.Value
	}
	return m
}

// Get returns the value of name and whether it is set.
func (m *Map) Get(name string) (string, bool) {
	v, ok := m.vars[name]
	return v, ok
}

// List implements Store.
func (m *Map) List() []Variable {
	vars := make([]Variable, 0, len(m.vars))
	for name, value := range m.vars {
		vars = append(vars, Variable{Name: name, Value: value})
	}
	sortVariables(vars)
	return vars
}

// Unset implements Store.
func (m *Map) Unset(name string) error {
	delete(m.vars, name)
	return nil
}

// Set implements Store.
func (m *Map) Set(name, value string) error {
	m.vars[name] = value
	return nil
}

// Environ implements Store.
func (m *Map) Environ() []string {
	vars := m.List()
	environ := make([]string, len(vars))
	for i, v := range vars {
		environ[i] = v.Name + "=" + v.Value
	}
	return environ
}

// parse splits NAME=value entries. Windows keeps per-drive entries such as
// "=C:=C:\\" whose name starts with '='; those are preserved.
func parse(environ []string) []Variable {
	vars := make([]Variable, 0, len(environ))
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if ok && name == "" {
			name, value, ok = strings.Cut(kv[1:], "=")
			name = "=" + name
		}
		if !ok {
			continue
		}
		vars = append(vars, Variable{Name: name, Value: value})
	}
	sortVariables(vars)
	return vars
}

func sortVariables(vars []Variable) {
	sort.Slice(vars, func(i, j int) bool {
		return vars[i].Name < vars[j].Name
	})
}
