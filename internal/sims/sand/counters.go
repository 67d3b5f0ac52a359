package sand

// CountMat returns how many cells currently hold m.
func (s *Simulation) CountMat(m Material) int {
	if !m.Valid() {
		return 0
	}
	n := 0
	for _, c := range s.grid.raw() {
		if Material(c) == m {
			n++
		}
	}
	return n
}

// Counts tallies every material in one pass, indexed by material id.
func (s *Simulation) Counts() []int {
	counts := make([]int, len(materialTable))
	for _, c := range s.grid.raw() {
		if int(c) < len(counts) {
			counts[c]++
		}
	}
	return counts
}

// Frame returns the number of ticks applied since construction or Reset.
func (s *Simulation) Frame() uint64 { return s.frame }

// Tick is an alias for Frame.
func (s *Simulation) Tick() uint64 { return s.frame }
