package insight

// orderedCounter counts keys and remembers the order they were first seen in,
// which is the tie-break for every "first maximum" selection.
type orderedCounter struct {
	keys   []string
	counts map[string]int
}

func newOrderedCounter() *orderedCounter {
	return &orderedCounter{counts: make(map[string]int)}
}

func (c *orderedCounter) add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.keys = append(c.keys, key)
	}
	c.counts[key]++
}

func (c *orderedCounter) top() (string, int, bool) {
	best := ""
	bestCount := 0
	for _, key := range c.keys {
		if n := c.counts[key]; n > bestCount {
			best = key
			bestCount = n
		}
	}
	return best, bestCount, bestCount > 0
}

// groupedCounter keeps one orderedCounter per group.
type groupedCounter struct {
	groups map[string]*orderedCounter
}

func newGroupedCounter() *groupedCounter {
	return &groupedCounter{groups: make(map[string]*orderedCounter)}
}

func (g *groupedCounter) add(group, key string) {
	c, ok := g.groups[group]
	if !ok {
		c = newOrderedCounter()
		g.groups[group] = c
	}
	c.add(key)
}

func (g *groupedCounter) get(group string) (*orderedCounter, bool) {
	c, ok := g.groups[group]
	return c, ok
}

func (g *groupedCounter) names() []string {
	out := make([]string, 0, len(g.groups))
	for name := range g.groups {
		out = append(out, name)
	}
	return out
}

func truncate[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(items) > n {
		return items[:n]
	}
	return items
}
