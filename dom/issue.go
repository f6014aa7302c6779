package dom

// Issue defines types of problems we might encounter during the tokenizing or the tree building.
// None of them aborts the pass: each is recorded as a [Warning] and the pass continues
// with its well-defined fallback behaviour.
type Issue int

const (
	// IssueMalformedComment occurs when "<!-" is not followed by the second '-'.
	// The tokenizer enters its terminal state and the rest of the input produces no Tokens.
	IssueMalformedComment Issue = iota

	// IssueUnmatchedClosingTag occurs when a closing Tag arrives while no element is open.
	// The Tag is ignored.
	IssueUnmatchedClosingTag

	// IssueMismatchedClosingTag occurs when the closing Tag's name differs from the name of the
	// innermost open element. The innermost element is closed anyway.
	IssueMismatchedClosingTag

	// IssueUnclosedTag means the element was still open when the input ended.
	// The element stays in the document with its parent link intact.
	IssueUnclosedTag

	// IssueUnexpectedEOF means the input ended in the middle of a tag, a comment, a doctype
	// declaration or a text run. The unfinished construct produces no Token.
	IssueUnexpectedEOF

	// IssueWarningsTruncated occurs when there are too many Warnings recorded.
	IssueWarningsTruncated

	// IssueNegativeWarningsCap reports an invalid (negative) warnings capacity.
	IssueNegativeWarningsCap

	// IssueUnknownOverflowPolicy reports a policy name that does not match any [WarningOverflowPolicy].
	IssueUnknownOverflowPolicy

	// NumIssues is the total number of Issues. Should be placed as last const.
	NumIssues
)

var mapIssueToName = [NumIssues]string{
	IssueMalformedComment:      "Malformed Comment",
	IssueUnmatchedClosingTag:   "Unmatched Closing Tag",
	IssueMismatchedClosingTag:  "Mismatched Closing Tag",
	IssueUnclosedTag:           "Unclosed Tag",
	IssueUnexpectedEOF:         "Unexpected End of Input",
	IssueWarningsTruncated:     "Warnings Truncated",
	IssueNegativeWarningsCap:   "Negative Warnings Cap",
	IssueUnknownOverflowPolicy: "Unknown Overflow Policy",
}

func (i Issue) String() string {
	if i < 0 || i >= NumIssues {
		return "Unknown Issue"
	}
	return mapIssueToName[i]
}
