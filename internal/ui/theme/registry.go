package theme

import (
	"sort"
	"sync"
)

var registry = &manager{themes: make(map[string]Theme)}

type manager struct {
	mu      sync.RWMutex
	themes  map[string]Theme
	current string
}

// Register adds t under t.Name. The first registered theme becomes current.
func Register(t Theme) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.themes[t.Name] = t
	if registry.current == "" {
		registry.current = t.Name
	}
}

// Set switches to a registered theme and reports whether it exists.
func Set(name string) bool {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	if _, ok := registry.themes[name]; !ok {
		return false
	}
	registry.current = name
	return true
}

// Current returns the active theme.
func Current() Theme {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.themes[registry.current]
}

// CurrentName returns the name of the active theme.
func CurrentName() string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.current
}

// Available lists registered theme names in sorted order.
func Available() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	return registry.sortedNames()
}

// Cycle moves to the next theme in sorted order and returns its name.
func Cycle() string {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	names := registry.sortedNames()
	if len(names) == 0 {
		return ""
	}
	next := 0
	for i, name := range names {
		if name == registry.current {
			next = (i + 1) % len(names)
			break
		}
	}
	registry.current = names[next]
	return registry.current
}

func (m *manager) sortedNames() []string {
	names := make([]string, 0, len(m.themes))
	for name := range m.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
