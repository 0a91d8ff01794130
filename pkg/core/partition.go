package core

// Matrix holds the four partitions of a collection, keyed by quadrant.
type Matrix map[Quadrant][]Note

// Partition returns the notes tagged q, preserving their relative order.
// The result is never nil.
func Partition(notes []Note, q Quadrant) []Note {
	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if n.Quadrant == q {
			out = append(out, n)
		}
	}
	return out
}

// Split partitions notes into all four quadrants. It is recomputed on every
// call; nothing is cached between calls.
func Split(notes []Note) Matrix {
	m := make(Matrix, 4)
	for _, q := range Quadrants() {
		m[q] = Partition(notes, q)
	}
	return m
}

// Len returns the number of notes across all partitions.
func (m Matrix) Len() int {
	total := 0
	for _, notes := range m {
		total += len(notes)
	}
	return total
}
