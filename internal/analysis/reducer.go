package analysis

// Accumulator keeps a running sum and the number of contributions.
type Accumulator struct {
	Sum   float64
	Count int
}

func (a *Accumulator) Add(v float64) {
	a.Sum += v
	a.Count++
}

func (a Accumulator) Mean() float64 {
	if a.Count == 0 {
		return 0
	}
	return a.Sum / float64(a.Count)
}

// Percentage is the accumulated sum normalized against MaxScore.
func (a Accumulator) Percentage() string {
	return Percentage(a.Sum, a.Count)
}

func (a Accumulator) percent() float64 {
	return percent(a.Sum, a.Count)
}

// groups buckets values by key and remembers first-seen key order.
type groups[K comparable, V any] struct {
	keys []K
	m    map[K]*V
}

func newGroups[K comparable, V any]() *groups[K, V] {
	return &groups[K, V]{m: make(map[K]*V)}
}

func (g *groups[K, V]) get(key K) *V {
	if v, ok := g.m[key]; ok {
		return v
	}
	v := new(V)
	g.m[key] = v
	g.keys = append(g.keys, key)
	return v
}

func (g *groups[K, V]) each(fn func(key K, v *V)) {
	for _, k := range g.keys {
		fn(k, g.m[k])
	}
}

func (g *groups[K, V]) len() int {
	return len(g.keys)
}

type set map[string]struct{}

func (s *set) add(v string) {
	if *s == nil {
		*s = make(set)
	}
	(*s)[v] = struct{}{}
}
