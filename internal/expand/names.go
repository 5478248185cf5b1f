package expand

import "fmt"

// ReplicaNames generates the instance names for a template replicated qty
// times: the base name alone when qty is 1, otherwise base_1 through
// base_qty. The same rule covers nodes, publishers, and subscribers.
func ReplicaNames(base string, qty int) []string {
	if qty == 1 {
		return []string{base}
	}
	names := make([]string, 0, qty)
	for k := 1; k <= qty; k++ {
		names = append(names, fmt.Sprintf("%s_%d", base, k))
	}
	return names
}
