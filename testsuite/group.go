package testsuite

type group[T any] struct {
	key   string
	items []T
}

// groupBy groups items by key, keeping groups and their members in first-occurrence order.
func groupBy[T any](items []T, key func(T) string) []group[T] {
	index := map[string]int{}
	var groups []group[T]
	for _, item := range items {
		k := key(item)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, group[T]{key: k})
		}
		groups[i].items = append(groups[i].items, item)
	}
	return groups
}

// nest builds one node per group of items; build reports false for a node without
// children and such nodes are dropped.
func nest[T any, N any](items []T, key func(T) string, build func(name string, items []T) (N, bool)) []N {
	var nodes []N
	for _, g := range groupBy(items, key) {
		if node, ok := build(g.key, g.items); ok {
			nodes = append(nodes, node)
		}
	}
	return nodes
}
