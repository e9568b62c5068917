package verify

// dsu is a disjoint-set forest with path halving and union by rank.
type dsu[T comparable] struct {
	parent map[T]T
	rank   map[T]int
}

func newDSU[T comparable](items []T) *dsu[T] {
	d := &dsu[T]{
		parent: make(map[T]T, len(items)),
		rank:   make(map[T]int, len(items)),
	}
	for _, it := range items {
		d.parent[it] = it
	}

	return d
}

// find returns the root of u, compressing the walk as it goes.
func (d *dsu[T]) find(u T) T {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}

	return u
}

// union merges the sets of u and v. It reports false when they were already
// joined, which for an edge means the edge closes a cycle.
func (d *dsu[T]) union(u, v T) bool {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false
	}
	// Attach the shallower tree under the deeper one.
	if d.rank[ru] < d.rank[rv] {
		d.parent[ru] = rv
	} else {
		d.parent[rv] = ru
		if d.rank[ru] == d.rank[rv] {
			d.rank[ru]++
		}
	}

	return true
}
