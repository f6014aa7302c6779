package dom

import (
	"iter"
	"unicode/utf8"
)

// TokenizerOutput is the result of the tokenization process.
type TokenizerOutput struct {
	// Tokens is the sequence of Tokens.
	Tokens []Token
	// OpenTags is the total count of opening Tags in the input string.
	OpenTags int
	// CloseTags is the total count of closing Tags in the input string.
	CloseTags int
	// TextTokens is the total count of text Tokens in the input string.
	TextTokens int
	// TextLen is the total byte length of the emitted text runs.
	TextLen int
	// Truncated is true if a malformed comment stopped the tokenization before the end of the input.
	Truncated bool
}

// scan drives t over the whole input, passing every emitted Token to yield.
// It returns false if yield asked to stop. The Tokenizer is closed only when the input is exhausted.
func scan(t *Tokenizer, input string, yield func(Token) bool) bool {
	n := len(input)

	for i := 0; i < n; {
		r, size := utf8.DecodeRuneInString(input[i:])

		t.step(i, size, r)

		if t.Ready() && !yield(t.Token()) {
			return false
		}

		// nothing can come out of the sink, no need to walk the rest of the input
		if t.Done() {
			break
		}

		i += size
	}

	t.Close()

	return true
}

// Tokens returns the lazy sequence of Tokens of the input. Tokenization advances only as far as
// the consumer pulls.
func Tokens(input string, warns *Warnings) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		scan(NewTokenizer(warns), input, yield)
	}
}

// Tokenize transforms the input string into the sequence of Tokens.
// It can emit Warnings during the process.
func Tokenize(input string, warns *Warnings) (out TokenizerOutput) {
	t := NewTokenizer(warns)

	// guessing the token number to minimize the number of the slice resizes
	out.Tokens = make([]Token, 0, len(input)/ByteToTokenRatio)

	scan(t, input, func(tok Token) bool {
		out.Tokens = append(out.Tokens, tok)

		switch tok.Type {
		case TokenOpeningTag:
			out.OpenTags++
		case TokenClosingTag:
			out.CloseTags++
		case TokenText:
			out.TextTokens++
			out.TextLen += len(tok.Content)
		}

		return true
	})

	out.Truncated = t.Done()

	return
}

// ByteToTokenRatio is the estimated ratio of the number of bytes in the input string to the number of Tokens.
// It is used to estimate the initial capacity of the Tokens slice.
const ByteToTokenRatio = 8
