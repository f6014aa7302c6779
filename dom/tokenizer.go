package dom

import (
	"strings"
	"unicode/utf8"
)

// Tokenizer is a character-driven finite-state machine turning markup into [Token]s.
//
// The caller feeds one character at a time and must check [Tokenizer.Ready] after every
// character, extracting the Token with [Tokenizer.Token] before feeding the next one.
// A ready Token that is not extracted is overwritten by the next emission.
//
// All the state lives in the struct, so a Tokenizer can be driven across any number of
// input chunks.
type Tokenizer struct {
	state State

	// ready is true when the finalized Token waits in out.
	ready bool
	out   Token

	// slot is the single in-progress Token. Its content is accumulated in buf
	// and is reset on every emission.
	slotType TokenType
	slotPos  int
	buf      strings.Builder

	// markupPos is the byte position of the '<' which started the current
	// tag, comment or doctype.
	markupPos int

	// next is the byte position of the next character fed via Feed.
	next int

	warns *Warnings
}

// NewTokenizer creates a Tokenizer in the [StateSeekOpeningTag] state.
// warns may be nil, in which case no diagnostics are recorded.
func NewTokenizer(warns *Warnings) *Tokenizer {
	return NewTokenizerFrom(StateSeekOpeningTag, warns)
}

// NewTokenizerFrom creates a Tokenizer starting in the provided state.
func NewTokenizerFrom(state State, warns *Warnings) *Tokenizer {
	return &Tokenizer{
		state: state,
		warns: warns,
	}
}

// State returns the live state.
func (t *Tokenizer) State() State {
	return t.state
}

// Done reports whether the Tokenizer reached its terminal state. No Token will be produced after that.
func (t *Tokenizer) Done() bool {
	return t.state == StateDone
}

// Ready reports whether a finalized Token is waiting to be extracted.
func (t *Tokenizer) Ready() bool {
	return t.ready
}

// Token returns the finalized Token and resets the readiness.
// The result is meaningful only when [Tokenizer.Ready] is true.
func (t *Tokenizer) Token() Token {
	tok := t.out
	t.out = Token{}
	t.ready = false
	return tok
}

// Feed processes one character.
func (t *Tokenizer) Feed(r rune) {
	size := utf8.RuneLen(r)
	if size < 0 {
		size = 1
	}
	t.step(t.next, size, r)
}

// step applies the transition for the character r, which occupies size bytes at byte position pos.
func (t *Tokenizer) step(pos, size int, r rune) {
	t.next = pos + size

	switch t.state {
	case StateSeekOpeningTag:
		if r == '<' {
			t.markupPos = pos
			t.state = StateReadTagName
		}

	case StateReadTagName:
		switch r {
		case '!':
			t.state = StateReadOpeningCommentOrDoctype
		case '/':
			t.start(TokenClosingTag, t.markupPos)
			t.state = StateReadClosingTagName
		default:
			t.start(TokenOpeningTag, t.markupPos)
			t.buf.WriteRune(r)
			t.state = StateReadOpeningTagName
		}

	case StateReadOpeningTagName:
		switch r {
		case '>':
			t.emit()
			t.state = StateReadContent
		case ' ':
			t.state = StateReadAttributes
		default:
			t.buf.WriteRune(r)
		}

	case StateReadAttributes:
		// attribute characters are discarded, the name captured before the space is kept
		if r == '>' {
			t.emit()
			t.state = StateReadContent
		}

	case StateReadClosingTagName:
		if r == '>' {
			t.emit()
			t.state = StateReadContent
		} else {
			t.buf.WriteRune(r)
		}

	case StateReadContent:
		if r == '<' {
			t.markupPos = pos
			t.state = StateReadTagName
		} else {
			t.start(TokenText, pos)
			t.buf.WriteRune(r)
			t.state = StateReadText
		}

	case StateReadText:
		if r == '<' {
			t.emit()
			t.markupPos = pos
			t.state = StateReadTagName
		} else {
			t.buf.WriteRune(r)
		}

	case StateReadOpeningCommentOrDoctype:
		switch r {
		case '-':
			t.state = StateReadOpeningCommentDash
		case 'D':
			t.state = StateReadDoctype
		}

	case StateReadOpeningCommentDash:
		if r == '-' {
			t.state = StateReadCommentContent
		} else {
			t.warns.Add(Warning{
				Issue:       IssueMalformedComment,
				Pos:         t.markupPos,
				Description: `comment opener "<!-" is not followed by '-'; the rest of the input is ignored.`,
			})
			t.state = StateDone
		}

	case StateReadCommentContent:
		if r == '-' {
			t.state = StateReadClosingComment
		}

	case StateReadClosingComment:
		if r == '-' {
			t.state = StateReadClosingCommentDash
		} else {
			t.state = StateReadCommentContent
		}

	case StateReadClosingCommentDash:
		if r == '>' {
			t.state = StateReadContent
		} else {
			t.state = StateReadCommentContent
		}

	case StateReadDoctype:
		if r == '>' {
			t.state = StateReadContent
		}

	case StateDone:
		// sink
	}
}

// start resets the slot for a new Token of the type typ, starting at pos.
func (t *Tokenizer) start(typ TokenType, pos int) {
	t.buf.Reset()
	t.slotType = typ
	t.slotPos = pos
}

// emit finalizes the slot into out and marks it ready.
func (t *Tokenizer) emit() {
	t.out = Token{
		Type:    t.slotType,
		Content: t.buf.String(),
		Pos:     t.slotPos,
	}
	t.ready = true
	t.buf.Reset()
}

// Close signals the end of the input. It emits nothing: an unfinished construct is reported
// as an [IssueUnexpectedEOF] Warning and dropped.
func (t *Tokenizer) Close() {
	var desc string
	pos := t.markupPos

	switch t.state {
	case StateReadTagName, StateReadOpeningTagName, StateReadAttributes, StateReadClosingTagName:
		desc = "the input ended inside a tag; the tag is dropped."
	case StateReadText:
		pos = t.slotPos
		desc = "the text run is not followed by '<' and is dropped."
	case StateReadOpeningCommentDash, StateReadCommentContent, StateReadClosingComment, StateReadClosingCommentDash:
		desc = "the input ended inside a comment."
	case StateReadOpeningCommentOrDoctype, StateReadDoctype:
		desc = "the input ended inside a markup declaration."
	default:
		return
	}

	t.warns.Add(Warning{
		Issue:       IssueUnexpectedEOF,
		Pos:         pos,
		Description: desc,
	})
}
