package assets

import "sync"

// Cache memoizes values built from embedded assets. Entries are keyed by the
// cleaned asset path, so "assets/floor.png" and "floor.png" share one entry.
// Failed loads are not cached.
type Cache[T any] struct {
	mu     sync.Mutex
	byPath map[string]T
}

// Load returns the cached value for path, building it with build on first use.
// build receives the cleaned path.
func (c *Cache[T]) Load(path string, build func(path string) (T, error)) (T, error) {
	var zero T
	key := cleanAssetPath(path)
	if key == "" {
		return zero, &LoadError{Path: path, Err: errEmptyPath}
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.byPath[key]; ok {
		return v, nil
	}
	v, err := build(key)
	if err != nil {
		return zero, err
	}
	if c.byPath == nil {
		c.byPath = make(map[string]T)
	}
	c.byPath[key] = v
	return v, nil
}

// Len reports how many assets are cached.
func (c *Cache[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.byPath)
}
