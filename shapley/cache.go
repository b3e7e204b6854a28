// Package shapley - content-addressed coalition value cache.
//
// The same coalition recurs across permutations, and value-function calls
// dominate estimation cost, so evaluated values are memoized for the
// duration of one estimation run. Keys are canonical (sorted) coalition
// representations — never object identity — to guarantee hits regardless
// of the order players joined.
package shapley

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/katalvlaran/attribkit/journey"
)

// keySep separates channel names inside a cache key. Unit Separator cannot
// occur in sane channel identifiers and keeps keys collision-free.
const keySep = "\x1f"

// coalitionKey renders a canonical key for a sorted coalition.
//
// Complexity: O(total name length).
func coalitionKey(sorted []string) string {
	return strings.Join(sorted, keySep)
}

// valueCache memoizes value-function evaluations under a mutex so that
// concurrent sampling workers can share one cache. A duplicate evaluation
// during a race is tolerated (the function is pure by contract); holding
// the lock across the evaluation would serialize the whole run.
type valueCache struct {
	mu     sync.Mutex
	values map[string]float64
	misses int

	fn journey.ValueFunc
}

func newValueCache(fn journey.ValueFunc) *valueCache {
	return &valueCache{values: make(map[string]float64), fn: fn}
}

// value returns the cached value of the sorted coalition, evaluating the
// underlying function on a miss. Non-finite results and evaluation errors
// surface as ErrInvalidValueFunction; nothing is coerced.
func (c *valueCache) value(sorted []string) (float64, error) {
	key := coalitionKey(sorted)

	c.mu.Lock()
	v, ok := c.values[key]
	c.mu.Unlock()
	if ok {
		return v, nil
	}

	v, err := c.fn(sorted)
	if err != nil {
		return 0, fmt.Errorf("coalition {%s}: %v: %w", strings.Join(sorted, ","), err, ErrInvalidValueFunction)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("coalition {%s}: non-finite value %v: %w", strings.Join(sorted, ","), v, ErrInvalidValueFunction)
	}

	c.mu.Lock()
	if _, dup := c.values[key]; !dup {
		c.values[key] = v
		c.misses++
	}
	c.mu.Unlock()

	return v, nil
}

// evaluations returns the number of distinct coalitions evaluated so far.
func (c *valueCache) evaluations() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.misses
}
