package dom

import (
	"strconv"

	"github.com/Drolfothesgnir/minidom/tag"
)

// openElement is an entry of the scope stack.
type openElement struct {
	// idx is the index of the element in the Document.
	idx int

	// name and pos are kept for diagnostics only.
	name string
	pos  int
}

// Builder consumes Tokens in order and appends the nodes to a [Document], linking each node to
// the nearest open element.
//
// The scope stack holds the currently open elements, outermost first. Opening tags push,
// closing tags pop unconditionally, whatever their name is.
type Builder struct {
	doc    *Document
	lookup tag.Lookup
	warns  *Warnings

	scope stack[openElement]

	// maxDepth records the deepest nesting level reached during the building.
	maxDepth int
}

// NewBuilder creates a Builder resolving element names via lookup. A nil lookup falls back to
// [tag.FromName]; nil warns records nothing.
func NewBuilder(lookup tag.Lookup, warns *Warnings) *Builder {
	return newBuilder(lookup, warns, 0)
}

func newBuilder(lookup tag.Lookup, warns *Warnings, capacity int) *Builder {
	if lookup == nil {
		lookup = tag.FromName
	}

	return &Builder{
		doc:    NewDocument(capacity),
		lookup: lookup,
		warns:  warns,
	}
}

// parent returns the index of the innermost open element or NoParent.
func (b *Builder) parent() int {
	if top, ok := b.scope.peek(); ok {
		return top.idx
	}
	return NoParent
}

// Push processes the next Token.
func (b *Builder) Push(tok Token) {
	switch tok.Type {
	case TokenClosingTag:
		b.closeElement(tok)

	case TokenText:
		b.doc.push(tag.Text, tok.Content, b.parent())

	case TokenOpeningTag:
		idx := b.doc.push(b.lookup(tok.Content), "", b.parent())
		b.scope.push(openElement{idx: idx, name: tok.Content, pos: tok.Pos})
		b.maxDepth = max(b.maxDepth, b.scope.len())
	}
}

func (b *Builder) closeElement(tok Token) {
	top, ok := b.scope.pop()

	// 1. Nothing is open: ignore the Tag
	if !ok {
		b.warns.Add(Warning{
			Issue:       IssueUnmatchedClosingTag,
			Pos:         tok.Pos,
			Description: "closing tag " + strconv.Quote(tok.Content) + " has no open element and is ignored.",
		})
		return
	}

	// 2. The innermost element is closed regardless of the name, the mismatch is only reported
	if top.name != tok.Content {
		b.warns.Add(Warning{
			Issue: IssueMismatchedClosingTag,
			Pos:   tok.Pos,
			Description: "closing tag " + strconv.Quote(tok.Content) +
				" closes the element " + strconv.Quote(top.name) +
				" opened at byte " + strconv.Itoa(top.pos) + ".",
		})
	}
}

// Open returns the Document indices of the currently open elements, outermost first.
func (b *Builder) Open() []int {
	out := make([]int, b.scope.len())
	for i, e := range b.scope.v {
		out[i] = e.idx
	}
	return out
}

// MaxDepth returns the deepest nesting of open elements seen so far.
func (b *Builder) MaxDepth() int {
	return b.maxDepth
}

// Finish ends the pass and returns the Document. Elements which are still open stay in the
// Document as they are and get reported as [IssueUnclosedTag], innermost first.
func (b *Builder) Finish() *Document {
	for {
		e, ok := b.scope.pop()
		if !ok {
			break
		}

		b.warns.Add(Warning{
			Issue:       IssueUnclosedTag,
			Pos:         e.pos,
			Description: "element " + strconv.Quote(e.name) + " is never closed.",
		})
	}

	return b.doc
}

// Output is the result of the parsing.
type Output struct {
	// Document holds the parsed nodes.
	Document *Document

	// Tokens is the total count of Tokens emitted by the tokenizer.
	Tokens int
	// OpenTags is the total count of opening Tags.
	OpenTags int
	// CloseTags is the total count of closing Tags.
	CloseTags int
	// TextTokens is the total count of text Tokens.
	TextTokens int
	// MaxDepth is the deepest element nesting reached.
	MaxDepth int
	// Truncated is true if a malformed comment stopped the tokenizer before the end of the input.
	Truncated bool
}

// Parse runs the tokenizer and the tree builder over the input in a single pass.
// Names are resolved via lookup, or [tag.FromName] if it is nil.
// Problems found on the way are recorded in warns, which may be nil.
func Parse(input string, lookup tag.Lookup, warns *Warnings) (out Output) {
	t := NewTokenizer(warns)
	b := newBuilder(lookup, warns, len(input)/ByteToTokenRatio)

	scan(t, input, func(tok Token) bool {
		out.Tokens++

		switch tok.Type {
		case TokenOpeningTag:
			out.OpenTags++
		case TokenClosingTag:
			out.CloseTags++
		case TokenText:
			out.TextTokens++
		}

		b.Push(tok)
		return true
	})

	out.Truncated = t.Done()
	out.MaxDepth = b.MaxDepth()
	out.Document = b.Finish()

	return
}
