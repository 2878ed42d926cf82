package syntax

import (
	"slices"
	"strings"
)

// NormalizeImports drops exact duplicates (first occurrence wins) and sorts
// the rest: non-static imports first, then static ones, each ascending by
// ordinal comparison of the name.
func NormalizeImports(imports []Import) []Import {
	seen := make(map[Import]bool, len(imports))
	out := make([]Import, 0, len(imports))
	for _, imp := range imports {
		if seen[imp] {
			continue
		}
		seen[imp] = true
		out = append(out, imp)
	}
	slices.SortStableFunc(out, compareImports)
	return out
}

func compareImports(a, b Import) int {
	if a.Static != b.Static {
		if a.Static {
			return 1
		}
		return -1
	}
	return strings.Compare(a.Name, b.Name)
}
