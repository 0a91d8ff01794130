package persist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/eisen/pkg/core"
	"github.com/aretw0/eisen/pkg/persist"
)

func TestCodecs_RoundTrip(t *testing.T) {
	notes := append(core.SampleNotes(), core.Note{
		ID:       "x:1",
		Quadrant: core.Q2,
		Title:    "quotes \" and: colons",
		Body:     "line one\nline two",
		Color:    "",
	}, core.Note{
		ID:       "x:2",
		Quadrant: core.Q3,
		Title:    "Zoë \u2014 🎯",
		Body:     "tab\there <b>&amp;</b>",
		Color:    "work",
	})

	for _, codec := range []persist.Codec{persist.JSONCodec{}, persist.YAMLCodec{}} {
		t.Run(codec.Name(), func(t *testing.T) {
			data, err := codec.Encode(notes)
			require.NoError(t, err)

			got, err := codec.Decode(data)
			require.NoError(t, err)
			assert.Equal(t, notes, got)
		})
	}
}

func TestCodecs_EmptyCollection(t *testing.T) {
	for _, codec := range []persist.Codec{persist.JSONCodec{}, persist.YAMLCodec{}} {
		t.Run(codec.Name(), func(t *testing.T) {
			for _, in := range [][]core.Note{nil, {}} {
				data, err := codec.Encode(in)
				require.NoError(t, err)

				got, err := codec.Decode(data)
				require.NoError(t, err)
				assert.NotNil(t, got)
				assert.Empty(t, got)
			}
		})
	}
}

func TestCodecs_RejectMalformed(t *testing.T) {
	tests := []struct {
		name  string
		codec persist.Codec
		data  string
	}{
		{"json garbage", persist.JSONCodec{}, "{not json"},
		{"json object", persist.JSONCodec{}, `{"id":"n1"}`},
		{"json null", persist.JSONCodec{}, "null"},
		{"json empty", persist.JSONCodec{}, ""},
		{"yaml scalar", persist.YAMLCodec{}, "hello"},
		{"yaml empty", persist.YAMLCodec{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.codec.Decode([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestCodecFor(t *testing.T) {
	c, err := persist.CodecFor("")
	require.NoError(t, err)
	assert.Equal(t, "json", c.Name())

	c, err = persist.CodecFor("YML")
	require.NoError(t, err)
	assert.Equal(t, "yaml", c.Name())

	_, err = persist.CodecFor("csv")
	assert.Error(t, err)
}
