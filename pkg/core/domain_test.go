package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/eisen/pkg/core"
)

func TestParseQuadrant(t *testing.T) {
	for _, in := range []string{"Q1", "q1", " Q1 "} {
		q, err := core.ParseQuadrant(in)
		require.NoError(t, err, in)
		assert.Equal(t, core.Q1, q)
	}

	_, err := core.ParseQuadrant("Q0")
	assert.ErrorIs(t, err, core.ErrInvalidQuadrant)
}

func TestQuadrant_Axes(t *testing.T) {
	assert.True(t, core.Q1.Urgent() && core.Q1.Important())
	assert.True(t, !core.Q2.Urgent() && core.Q2.Important())
	assert.True(t, core.Q3.Urgent() && !core.Q3.Important())
	assert.True(t, !core.Q4.Urgent() && !core.Q4.Important())
	assert.Equal(t, "Q4 — Eliminate", core.Q4.Label())
}

func TestResolveColor(t *testing.T) {
	assert.Equal(t, "#BFDBFE", core.ResolveColor("Work"))
	assert.Equal(t, "#123456", core.ResolveColor("#123456"))
}

func TestSampleNotesAreFresh(t *testing.T) {
	a := core.SampleNotes()
	a[0].Title = "changed"
	assert.Equal(t, "Pay bills", core.SampleNotes()[0].Title)
}
