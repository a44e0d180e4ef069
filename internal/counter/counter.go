// Package counter tallies observed values per category and reports the most
// frequent one.
//
// It is used once per batch of files to pick album-wide defaults:
//
//	c := counter.New[string, string]()
//	c.Insert("artist", "Pink Floyd")
//	c.Insert("artist", "Pink Floyd")
//	c.Insert("artist", "Genesis")
//	v, ok := c.MostCommon("artist") // "Pink Floyd", true
package counter

// Counter counts occurrences of values grouped by key.
//
// Counter is not safe for concurrent use.
type Counter[K comparable, V comparable] struct {
	items map[K]map[V]int
}

// New creates an empty Counter.
func New[K comparable, V comparable]() *Counter[K, V] {
	return &Counter[K, V]{items: make(map[K]map[V]int)}
}

// Insert records one observation of value under key.
func (c *Counter[K, V]) Insert(key K, value V) {
	if c.items == nil {
		c.items = make(map[K]map[V]int)
	}
	values, ok := c.items[key]
	if !ok {
		values = make(map[V]int)
		c.items[key] = values
	}
	values[value]++
}

// MostCommon returns the value observed most often under key.
//
// The second result is false if key was never observed. When several values
// share the highest count, any one of them may be returned.
func (c *Counter[K, V]) MostCommon(key K) (V, bool) {
	var (
		best  V
		count int
	)
	for value, n := range c.items[key] {
		if n > count {
			best, count = value, n
		}
	}
	return best, count > 0
}

// Count returns how many times value was observed under key.
func (c *Counter[K, V]) Count(key K, value V) int {
	return c.items[key][value]
}
