package dom

// State is the live state of the [Tokenizer]. Exactly one State is live at a time.
type State int

const (
	// StateSeekOpeningTag skips everything up to the first '<'.
	StateSeekOpeningTag State = iota

	// StateReadTagName decides what follows a '<': a name, a '/' or a '!'.
	StateReadTagName

	// StateReadOpeningTagName captures the name of an opening tag.
	StateReadOpeningTagName

	// StateReadAttributes skips the attribute region of an opening tag.
	StateReadAttributes

	// StateReadClosingTagName captures the name of a closing tag.
	StateReadClosingTagName

	// StateReadContent sits right after a tag, comment or doctype.
	StateReadContent

	// StateReadText captures a text run.
	StateReadText

	// StateReadOpeningCommentOrDoctype follows "<!".
	StateReadOpeningCommentOrDoctype

	// StateReadOpeningCommentDash follows "<!-".
	StateReadOpeningCommentDash

	// StateReadCommentContent skips the comment body.
	StateReadCommentContent

	// StateReadClosingComment follows a '-' inside a comment.
	StateReadClosingComment

	// StateReadClosingCommentDash follows "--" inside a comment.
	StateReadClosingCommentDash

	// StateReadDoctype skips the doctype declaration.
	StateReadDoctype

	// StateDone is the terminal sink entered on a malformed comment opener.
	StateDone

	// NumStates is the total number of States. Should be placed as last const.
	NumStates
)

var stateToString = [NumStates]string{
	StateSeekOpeningTag:              "SeekOpeningTag",
	StateReadTagName:                 "ReadTagName",
	StateReadOpeningTagName:          "ReadOpeningTagName",
	StateReadAttributes:              "ReadAttributes",
	StateReadClosingTagName:          "ReadClosingTagName",
	StateReadContent:                 "ReadContent",
	StateReadText:                    "ReadText",
	StateReadOpeningCommentOrDoctype: "ReadOpeningCommentOrDoctype",
	StateReadOpeningCommentDash:      "ReadOpeningCommentDash",
	StateReadCommentContent:          "ReadCommentContent",
	StateReadClosingComment:          "ReadClosingComment",
	StateReadClosingCommentDash:      "ReadClosingCommentDash",
	StateReadDoctype:                 "ReadDoctype",
	StateDone:                        "Done",
}

func (s State) String() string {
	if s < 0 || s >= NumStates {
		return "Unknown"
	}
	return stateToString[s]
}
