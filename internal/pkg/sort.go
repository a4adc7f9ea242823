package pkg

import (
	"fmt"
	"sort"
	"strings"
)

// Sort selects one of a fixed set of sort keys for a listing query. Keys are
// mapped to column expressions by the caller; unknown keys are rejected
// instead of silently falling back to a default.
type Sort struct {
	Key   string
	Order string
}

func (s Sort) Clause(allowed map[string]string) (string, error) {
	column, ok := allowed[s.Key]
	if !ok {
		keys := make([]string, 0, len(allowed))
		for k := range allowed {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		return "", fmt.Errorf("unknown sort key %q, allowed: %s", s.Key, strings.Join(keys, ", "))
	}

	order := strings.ToLower(s.Order)
	switch order {
	case "", "desc":
		order = "DESC"
	case "asc":
		order = "ASC"
	default:
		return "", fmt.Errorf("unknown sort order %q, allowed: asc, desc", s.Order)
	}

	return column + " " + order, nil
}
