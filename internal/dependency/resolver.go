package dependency

import (
	"errors"
	"fmt"
	"slices"

	"github.com/srcgen/srcgen/internal/manifest"
)

// ErrCycle is returned when the dependency graph contains a cycle.
var ErrCycle = errors.New("dependency cycle detected")

// Resolve builds the dependency graph of the manifest's types and returns:
// - ordered: type indexes in topological order (dependencies first)
// - tiers: type indexes grouped by depth (tier 0 = no deps, tier 1 = depend only on tier 0, etc.)
// Within a tier, types keep manifest order so output is deterministic.
func Resolve(m *manifest.Manifest) (ordered []int, tiers [][]int, err error) {
	if m == nil || len(m.Types) == 0 {
		return nil, nil, nil
	}

	index := make(map[*manifest.Type]int, len(m.Types))
	for i := range m.Types {
		index[&m.Types[i]] = i
	}

	// dependents[i] lists types that must come after i.
	inDegree := make([]int, len(m.Types))
	dependents := make([][]int, len(m.Types))
	for i := range m.Types {
		for _, dep := range m.Dependencies(&m.Types[i]) {
			j := index[dep]
			dependents[j] = append(dependents[j], i)
			inDegree[i]++
		}
	}

	var queue []int
	for i := range m.Types {
		if inDegree[i] == 0 {
			queue = append(queue, i)
		}
	}

	ordered = make([]int, 0, len(m.Types))
	for len(queue) > 0 {
		slices.Sort(queue)
		tiers = append(tiers, slices.Clone(queue))
		var next []int
		for _, u := range queue {
			ordered = append(ordered, u)
			for _, v := range dependents[u] {
				inDegree[v]--
				if inDegree[v] == 0 {
					next = append(next, v)
				}
			}
		}
		queue = next
	}

	if len(ordered) != len(m.Types) {
		var stuck []string
		for i, d := range inDegree {
			if d > 0 {
				stuck = append(stuck, m.Types[i].QualifiedName())
			}
		}
		return nil, nil, fmt.Errorf("%w between %v", ErrCycle, stuck)
	}
	return ordered, tiers, nil
}
