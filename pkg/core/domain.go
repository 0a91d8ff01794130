// Package core holds the note model and the rules that govern a matrix:
// how notes are created, mutated, partitioned into quadrants and persisted.
package core

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Quadrant tags one cell of the Eisenhower matrix.
type Quadrant string

const (
	Q1 Quadrant = "Q1" // urgent, important
	Q2 Quadrant = "Q2" // not urgent, important
	Q3 Quadrant = "Q3" // urgent, not important
	Q4 Quadrant = "Q4" // not urgent, not important
)

// Quadrants lists every quadrant in display order.
func Quadrants() []Quadrant {
	return []Quadrant{Q1, Q2, Q3, Q4}
}

// Valid reports whether q is one of the four known tags.
func (q Quadrant) Valid() bool {
	switch q {
	case Q1, Q2, Q3, Q4:
		return true
	}
	return false
}

// Urgent reports whether the quadrant sits in the urgent column.
func (q Quadrant) Urgent() bool {
	return q == Q1 || q == Q3
}

// Important reports whether the quadrant sits in the important row.
func (q Quadrant) Important() bool {
	return q == Q1 || q == Q2
}

// Action is the short advice attached to the quadrant.
func (q Quadrant) Action() string {
	switch q {
	case Q1:
		return "Do now"
	case Q2:
		return "Plan"
	case Q3:
		return "Delegate"
	case Q4:
		return "Eliminate"
	}
	return ""
}

// Label renders the tag together with its action, e.g. "Q1 — Do now".
func (q Quadrant) Label() string {
	return string(q) + " — " + q.Action()
}

func (q Quadrant) String() string {
	return string(q)
}

// ParseQuadrant accepts a tag in any case ("q3", " Q3 ").
func ParseQuadrant(s string) (Quadrant, error) {
	q := Quadrant(strings.ToUpper(strings.TrimSpace(s)))
	if !q.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidQuadrant, s)
	}
	return q, nil
}

// DefaultColor is used when a note is created without a color.
const DefaultColor = "#FDE68A"

// ColorPresets maps the named note colors to their values.
var ColorPresets = map[string]string{
	"home":     "#FDE68A",
	"work":     "#BFDBFE",
	"study":    "#A7F3D0",
	"business": "#FCA5A5",
}

// ResolveColor returns the preset value for a known name, or s unchanged.
func ResolveColor(s string) string {
	if v, ok := ColorPresets[strings.ToLower(strings.TrimSpace(s))]; ok {
		return v
	}
	return s
}

// Note is a task or idea attached to one matrix cell.
type Note struct {
	ID       string   `json:"id" yaml:"id" validate:"required"`
	Quadrant Quadrant `json:"quadrant" yaml:"quadrant" validate:"oneof=Q1 Q2 Q3 Q4"`
	Title    string   `json:"title" yaml:"title"`
	Body     string   `json:"body" yaml:"body"`
	Color    string   `json:"color" yaml:"color"`
}

// Fields returns the mutable part of the note.
func (n Note) Fields() Fields {
	return Fields{
		Title:    n.Title,
		Body:     n.Body,
		Color:    n.Color,
		Quadrant: n.Quadrant,
	}
}

// Fields carries the user-editable values of a note.
type Fields struct {
	Title    string
	Body     string
	Color    string
	Quadrant Quadrant
}

// validate checks the fields and returns them normalized (title trimmed).
func (f Fields) validate() (Fields, error) {
	f.Title = strings.TrimSpace(f.Title)
	if f.Title == "" {
		return f, ErrEmptyTitle
	}
	if !f.Quadrant.Valid() {
		return f, fmt.Errorf("%w: %q", ErrInvalidQuadrant, f.Quadrant)
	}
	if !utf8.ValidString(f.Title) || !utf8.ValidString(f.Body) || !utf8.ValidString(f.Color) {
		return f, ErrInvalidText
	}
	return f, nil
}

// SampleNotes returns the seed collection used when an identity has no data.
// A fresh slice is returned on every call.
func SampleNotes() []Note {
	return []Note{
		{ID: "n1", Quadrant: Q1, Title: "Pay bills", Body: "Due today", Color: "#FDE68A"},
		{ID: "n2", Quadrant: Q2, Title: "Plan the week", Body: "Block out time", Color: "#A7F3D0"},
		{ID: "n3", Quadrant: Q3, Title: "Answer emails", Body: "30 min", Color: "#BFDBFE"},
		{ID: "n4", Quadrant: Q4, Title: "Reel ideas", Body: "3 drafts", Color: "#FCA5A5"},
	}
}

// EventType represents the type of change observed in storage.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents a change to a storage key.
type Event struct {
	Type      EventType
	Key       string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Key)
}
