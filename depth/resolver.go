package depth

import (
	"fmt"
	"sort"
	"strings"
)

// Strategy selects how the dependency graph is built.
type Strategy int

const (
	// StrategyAllPairs compares every ordered pair of entities.
	StrategyAllPairs Strategy = iota
	// StrategyLinked sorts by key and only links consecutive key groups.
	StrategyLinked
)

func (s Strategy) String() string {
	switch s {
	case StrategyAllPairs:
		return "all_pairs"
	case StrategyLinked:
		return "linked"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps a configuration name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "all_pairs", "allpairs":
		return StrategyAllPairs, nil
	case "linked", "sort_and_link":
		return StrategyLinked, nil
	}
	return 0, fmt.Errorf("depth: unknown resolver strategy %q", name)
}

// UnmarshalText lets configuration decoders fill a Strategy by name.
func (s *Strategy) UnmarshalText(text []byte) error {
	parsed, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Resolver computes paint orders for one frame's entity batch.
type Resolver struct {
	strategy Strategy
}

// NewResolver creates a resolver using the given graph construction strategy.
func NewResolver(strategy Strategy) *Resolver {
	return &Resolver{strategy: strategy}
}

// Strategy returns the graph construction strategy in use.
func (r *Resolver) Strategy() Strategy {
	if r == nil {
		return StrategyAllPairs
	}
	return r.strategy
}

// Resolve returns entity indices in paint order. Entity i is painted before
// entity j whenever keys[i] < keys[j]; entities sharing a key keep their input
// order.
func (r *Resolver) Resolve(keys []GridPos) ([]int, error) {
	if len(keys) == 0 {
		return nil, nil
	}

	var g *graph
	switch r.Strategy() {
	case StrategyLinked:
		g = buildLinked(keys)
	default:
		g = buildAllPairs(keys)
	}
	return g.sort()
}

// Resolve orders keys with the all-pairs strategy.
func Resolve(keys []GridPos) ([]int, error) {
	return NewResolver(StrategyAllPairs).Resolve(keys)
}

// graph is a dependency graph over entity indices. adj[i] lists the entities
// that must be painted after i, in ascending index order.
type graph struct {
	adj      [][]int
	inDegree []int
}

func newGraph(n int) *graph {
	return &graph{
		adj:      make([][]int, n),
		inDegree: make([]int, n),
	}
}

func (g *graph) addEdge(from, to int) {
	g.adj[from] = append(g.adj[from], to)
	g.inDegree[to]++
}

func buildAllPairs(keys []GridPos) *graph {
	g := newGraph(len(keys))
	for i := range keys {
		for j := range keys {
			if i == j {
				continue
			}
			if keys[i].Less(keys[j]) {
				g.addEdge(i, j)
			}
		}
	}
	return g
}

// buildLinked connects each group of equal keys to the next larger group only.
// Transitivity through the chain gives the same reachability as all pairs.
func buildLinked(keys []GridPos) *graph {
	g := newGraph(len(keys))

	idx := make([]int, len(keys))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return keys[idx[a]].Less(keys[idx[b]])
	})

	var prev []int
	for start := 0; start < len(idx); {
		end := start + 1
		for end < len(idx) && keys[idx[end]].Compare(keys[idx[start]]) == 0 {
			end++
		}
		group := idx[start:end]
		for _, from := range prev {
			for _, to := range group {
				g.addEdge(from, to)
			}
		}
		prev = group
		start = end
	}
	return g
}

// sort runs Kahn's algorithm with a FIFO queue seeded in index order.
func (g *graph) sort() ([]int, error) {
	n := len(g.inDegree)
	inDegree := append([]int(nil), g.inDegree...)

	queue := make([]int, 0, n)
	for i, d := range inDegree {
		if d == 0 {
			queue = append(queue, i)
		}
	}

	order := make([]int, 0, n)
	for head := 0; head < len(queue); head++ {
		node := queue[head]
		order = append(order, node)
		for _, next := range g.adj[node] {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if len(order) != n {
		return nil, &InvariantError{Emitted: len(order), Total: n}
	}
	return order, nil
}
