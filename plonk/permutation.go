package plonk

// copySet tracks copy constraints between cells.
// Downstream permutation arguments act on full equivalence classes rather
// than the recorded pairs, so membership is resolved through union-find:
// recording (a, b) and (b, c) also asserts a = c.
type copySet struct {
	parent map[Cell]Cell
	rank   map[Cell]int
	pairs  [][2]Cell
}

func newCopySet() *copySet {
	return &copySet{
		parent: make(map[Cell]Cell),
		rank:   make(map[Cell]int),
	}
}

func (s *copySet) find(c Cell) Cell {
	p, ok := s.parent[c]
	if !ok {
		s.parent[c] = c
		return c
	}
	if p == c {
		return c
	}

	root := s.find(p)
	s.parent[c] = root
	return root
}

// record adds the equality a = b.
func (s *copySet) record(a, b Cell) {
	s.pairs = append(s.pairs, [2]Cell{a, b})

	ra, rb := s.find(a), s.find(b)
	if ra == rb {
		return
	}

	if s.rank[ra] < s.rank[rb] {
		ra, rb = rb, ra
	}
	s.parent[rb] = ra
	if s.rank[ra] == s.rank[rb] {
		s.rank[ra]++
	}
}

// classes returns the equivalence classes induced by the recorded pairs,
// with cells in first-recorded order within and across classes.
func (s *copySet) classes() [][]Cell {
	seen := make(map[Cell]struct{})
	var order []Cell
	for _, p := range s.pairs {
		for _, c := range p {
			if _, ok := seen[c]; !ok {
				seen[c] = struct{}{}
				order = append(order, c)
			}
		}
	}

	groups := make(map[Cell][]Cell)
	var roots []Cell
	for _, c := range order {
		root := s.find(c)
		if _, ok := groups[root]; !ok {
			roots = append(roots, root)
		}
		groups[root] = append(groups[root], c)
	}

	res := make([][]Cell, 0, len(roots))
	for _, root := range roots {
		res = append(res, groups[root])
	}
	return res
}
