package persist

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/eisen/pkg/core"
)

// ErrNotAList is returned when a snapshot decodes to something other than a
// list of notes (for example a JSON null).
var ErrNotAList = errors.New("snapshot is not a list")

// Codec converts a note collection to and from bytes.
type Codec interface {
	// Name is the format name used by flags and configuration.
	Name() string
	// Encode serializes notes. An empty collection encodes as an empty list.
	Encode(notes []core.Note) ([]byte, error)
	// Decode parses data. A successful decode never returns a nil slice.
	Decode(data []byte) ([]core.Note, error)
}

// CodecFor returns the codec registered under name ("json" or "yaml").
func CodecFor(name string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return JSONCodec{}, nil
	case "yaml", "yml":
		return YAMLCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown format %q", name)
	}
}

// --- JSON ---

// JSONCodec writes indented JSON arrays.
type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Encode(notes []core.Note) ([]byte, error) {
	if notes == nil {
		notes = []core.Note{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(notes); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (JSONCodec) Decode(data []byte) ([]core.Note, error) {
	var notes *[]core.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	return deref(notes)
}

// --- YAML ---

// YAMLCodec writes a YAML sequence of notes.
type YAMLCodec struct{}

func (YAMLCodec) Name() string { return "yaml" }

func (YAMLCodec) Encode(notes []core.Note) ([]byte, error) {
	if notes == nil {
		notes = []core.Note{}
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(notes); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (YAMLCodec) Decode(data []byte) ([]core.Note, error) {
	var notes *[]core.Note
	if err := yaml.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("invalid yaml: %w", err)
	}
	return deref(notes)
}

func deref(notes *[]core.Note) ([]core.Note, error) {
	if notes == nil {
		return nil, ErrNotAList
	}
	if *notes == nil {
		return []core.Note{}, nil
	}
	return *notes, nil
}
