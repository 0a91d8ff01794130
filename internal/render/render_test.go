package render_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/eisen/internal/render"
	"github.com/aretw0/eisen/pkg/core"
)

func TestMatrix_ContainsEveryTitleAndLabel(t *testing.T) {
	out := render.Matrix(core.Split(core.SampleNotes()), render.Options{ShowIDs: true})

	for _, n := range core.SampleNotes() {
		assert.Contains(t, out, n.Title)
		assert.Contains(t, out, n.ID)
	}
	for _, label := range []string{"Urgent", "Not urgent", "Important", "Not important"} {
		assert.Contains(t, out, label)
	}
	for _, q := range core.Quadrants() {
		assert.Contains(t, out, q.Label())
	}
}

func TestMatrix_EmptyQuadrants(t *testing.T) {
	out := render.Matrix(core.Split(nil), render.Options{})
	assert.Equal(t, 4, strings.Count(out, "no notes"))
}

func TestMatrix_Layout(t *testing.T) {
	out := render.Matrix(core.Split(core.SampleNotes()), render.Options{})

	// Q1 and Q2 share the first row, so "Pay bills" and "Plan the week" are
	// on the same line, left to right.
	var found bool
	for _, line := range strings.Split(out, "\n") {
		i, j := strings.Index(line, "Pay bills"), strings.Index(line, "Plan the week")
		if i >= 0 && j >= 0 {
			assert.Less(t, i, j)
			found = true
		}
	}
	assert.True(t, found, "first row should hold Q1 and Q2 side by side")
	assert.Less(t, strings.Index(out, "Pay bills"), strings.Index(out, "Answer emails"))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "n1", render.ShortID("n1"))
	assert.Equal(t, "0f8fad5b", render.ShortID("0f8fad5b-d9cb-469f-a165-70867728950e"))
}
