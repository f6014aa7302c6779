package dom

// TokenType defines a kind of the [Token].
type TokenType int

const (
	// TokenOpeningTag means the [Token] contains the name of an opening tag, e.g. "div" for "<div>".
	TokenOpeningTag TokenType = iota

	// TokenClosingTag means the [Token] contains the name of a closing tag, without the '/'.
	TokenClosingTag

	// TokenText means the [Token] contains a raw text run.
	TokenText
)

var tokenTypeToString = map[TokenType]string{
	TokenOpeningTag: "OpeningTag",
	TokenClosingTag: "ClosingTag",
	TokenText:       "Text",
}

func (t TokenType) String() string {
	if s, ok := tokenTypeToString[t]; ok {
		return s
	}
	return "Unknown"
}

// Token is a finalized lexical unit. Tokens are values: once emitted by the [Tokenizer] they never change.
type Token struct {
	// Type defines the type of the Token.
	Type TokenType

	// Content is the tag name for tag Tokens and the raw text for text Tokens.
	Content string

	// Pos defines the starting byte position of the Token in the input string:
	// the '<' for tag Tokens and the first character for text Tokens.
	Pos int
}
