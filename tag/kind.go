// Package tag maps element names to the semantic kinds stored in a document.
package tag

import (
	"fmt"

	"golang.org/x/net/html/atom"
)

// Kind is the semantic classification of a document node.
type Kind int

const (
	// Undefined is the fallback for element names missing from the vocabulary.
	Undefined Kind = iota

	// Text is reserved for text nodes. Element name lookups never produce it,
	// except for the empty name.
	Text

	Body
	Div
	P

	// NumKinds is the total number of Kinds. Should be placed as last const.
	NumKinds
)

var kindToString = [NumKinds]string{
	Undefined: "Undefined",
	Text:      "Text",
	Body:      "Body",
	Div:       "Div",
	P:         "P",
}

// atomToKind holds the element vocabulary, keyed by the interned HTML name.
var atomToKind = map[atom.Atom]Kind{
	atom.Body: Body,
	atom.Div:  Div,
	atom.P:    P,
}

func (k Kind) String() string {
	if k < 0 || k >= NumKinds {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindToString[k]
}

// MarshalText encodes the Kind by its name, so JSON and storage never depend on the numeric order.
func (k Kind) MarshalText() ([]byte, error) {
	if k < 0 || k >= NumKinds {
		return nil, fmt.Errorf("unknown tag kind %d", int(k))
	}
	return []byte(kindToString[k]), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	parsed, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKind is the inverse of [Kind.String].
func ParseKind(s string) (Kind, error) {
	for k, name := range kindToString {
		if name == s {
			return Kind(k), nil
		}
	}
	return Undefined, fmt.Errorf("unknown tag kind %q", s)
}

// Lookup resolves an element name to its Kind. Implementations must be total:
// every name gets a Kind, unknown names get a fallback.
type Lookup func(name string) Kind

// FromName is the default [Lookup]. Matching is case-sensitive, so "DIV" is Undefined.
func FromName(name string) Kind {
	if name == "" {
		return Text
	}

	if k, ok := atomToKind[atom.Lookup([]byte(name))]; ok {
		return k
	}

	return Undefined
}

// Table is a map-backed [Lookup] with a configurable fallback.
type Table struct {
	names    map[string]Kind
	fallback Kind
}

// NewTable copies names, so later changes to the map do not leak into the Table.
func NewTable(names map[string]Kind, fallback Kind) *Table {
	t := &Table{
		names:    make(map[string]Kind, len(names)),
		fallback: fallback,
	}

	for name, k := range names {
		t.names[name] = k
	}

	return t
}

// Kind returns the Kind registered for the name or the Table's fallback.
func (t *Table) Kind(name string) Kind {
	if k, ok := t.names[name]; ok {
		return k
	}
	return t.fallback
}

// Lookup exposes the Table as a [Lookup] function.
func (t *Table) Lookup() Lookup {
	return t.Kind
}
