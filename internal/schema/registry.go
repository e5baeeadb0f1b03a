package schema

import (
	"fmt"
	"sort"
	"sync"
)

var (
	registry   = make(map[string]DatasetSpec)
	registryMu sync.RWMutex
)

// Register adds a dataset spec to the registry.
// Panics if a spec with the same key is already registered.
func Register(spec DatasetSpec) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := registry[spec.Key]; exists {
		panic(fmt.Sprintf("dataset already registered: %s", spec.Key))
	}

	registry[spec.Key] = spec
}

// Get returns a dataset spec by key.
// Returns false if not found.
func Get(key string) (DatasetSpec, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	spec, ok := registry[key]
	return spec, ok
}

// All returns all registered dataset specs, sorted by key.
func All() []DatasetSpec {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]DatasetSpec, 0, len(registry))
	for _, spec := range registry {
		result = append(result, spec)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Key < result[j].Key
	})

	return result
}

// Keys returns the registered dataset keys, sorted.
func Keys() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}

	sort.Strings(keys)
	return keys
}

// Count returns the number of registered datasets.
func Count() int {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return len(registry)
}
