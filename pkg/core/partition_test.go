package core_test

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/eisen/pkg/core"
)

func randomCollection(r *rand.Rand, size int) []core.Note {
	quadrants := core.Quadrants()
	notes := make([]core.Note, size)
	for i := range notes {
		notes[i] = core.Note{
			ID:       fmt.Sprintf("n%d", i),
			Quadrant: quadrants[r.IntN(len(quadrants))],
			Title:    fmt.Sprintf("note %d", i),
		}
	}
	return notes
}

func TestPartition_DisjointAndComplete(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))

	for _, size := range []int{0, 1, 4, 17, 100} {
		t.Run(fmt.Sprintf("size=%d", size), func(t *testing.T) {
			notes := randomCollection(r, size)
			m := core.Split(notes)

			assert.Equal(t, len(notes), m.Len())

			owner := map[string]core.Quadrant{}
			for q, part := range m {
				for _, n := range part {
					_, dup := owner[n.ID]
					assert.False(t, dup, "note %s in two partitions", n.ID)
					owner[n.ID] = q
					assert.Equal(t, q, n.Quadrant)
				}
			}

			// Merging the partitions back in collection order rebuilds the input.
			cursor := map[core.Quadrant]int{}
			rebuilt := make([]core.Note, 0, len(notes))
			for _, n := range notes {
				part := m[n.Quadrant]
				rebuilt = append(rebuilt, part[cursor[n.Quadrant]])
				cursor[n.Quadrant]++
			}
			assert.Equal(t, notes, rebuilt)
		})
	}
}

func TestPartition_EmptyIsNotNil(t *testing.T) {
	part := core.Partition(nil, core.Q1)
	assert.NotNil(t, part)
	assert.Empty(t, part)
}

func TestPartition_SampleSet(t *testing.T) {
	m := core.Split(core.SampleNotes())
	for i, q := range core.Quadrants() {
		if assert.Len(t, m[q], 1) {
			assert.Equal(t, fmt.Sprintf("n%d", i+1), m[q][0].ID)
		}
	}
}
