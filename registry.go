package pluck

import "sync"

var (
	defaultEngine   *Engine
	defaultEngineMu sync.RWMutex
)

// Default returns the shared engine behind the package-level functions,
// building it with default options on first use.
func Default() *Engine {
	// Fast path: read-lock cache check
	defaultEngineMu.RLock()
	if e := defaultEngine; e != nil {
		defaultEngineMu.RUnlock()
		return e
	}
	defaultEngineMu.RUnlock()

	// Slow path: build and cache with write-lock
	defaultEngineMu.Lock()
	defer defaultEngineMu.Unlock()

	// Double-check pattern
	if defaultEngine != nil {
		return defaultEngine
	}

	defaultEngine = MustNew()
	return defaultEngine
}

// Reset drops the shared engine and its type caches.
// This is primarily useful for test isolation.
func Reset() {
	defaultEngineMu.Lock()
	defer defaultEngineMu.Unlock()
	defaultEngine = nil
}

// Get resolves name in source with the default engine.
func Get(source any, name string, def any) any {
	return Default().Get(source, name, def)
}

// GetMany resolves names in source with the default engine.
func GetMany(source any, names []string, def any) map[string]any {
	return Default().GetMany(source, names, def)
}

// Set assigns one value with the default engine.
func Set(target any, name string, value any) bool {
	return Default().Set(target, name, value)
}

// SetMany assigns values with the default engine and returns the names it
// could not place.
func SetMany(target any, values map[string]any) []string {
	return Default().SetMany(target, values)
}

// SetPath assigns value at a dotted path with the default engine.
func SetPath(target any, path string, value any) bool {
	return Default().SetPath(target, path, value)
}

// Locate resolves the parent of path with the default engine.
func Locate(source any, path string) (Location, bool) {
	return Default().Locate(source, path)
}

// Writable lists assignable names of target with the default engine.
func Writable(target any) []string {
	return Default().Writable(target)
}

// Getters lists getter methods of target.
func Getters(target any) []string {
	return Default().Getters(target)
}

// Setters lists setter methods of target.
func Setters(target any) []string {
	return Default().Setters(target)
}
