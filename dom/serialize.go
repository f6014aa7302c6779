package dom

import "github.com/Drolfothesgnir/minidom/tag"

// TreeNode is the nested rendition of a document node.
type TreeNode struct {
	Tag      tag.Kind   `json:"tag"`
	Text     string     `json:"text,omitempty"`
	Children []TreeNode `json:"children,omitempty"`
}

// Tree returns the top-level nodes with their subtrees nested.
func (d *Document) Tree() []TreeNode {
	children, roots := d.childLists()

	nodes := make([]TreeNode, d.Len())

	// children always have greater indices than their parent, so walking backwards
	// every subtree is complete by the time its root is reached
	for i := d.Len() - 1; i >= 0; i-- {
		n := TreeNode{
			Tag:  d.tags[i],
			Text: d.texts[i],
		}

		if kids := children[i]; len(kids) > 0 {
			n.Children = make([]TreeNode, len(kids))
			for k, c := range kids {
				n.Children[k] = nodes[c]
			}
		}

		nodes[i] = n
	}

	out := make([]TreeNode, len(roots))
	for k, r := range roots {
		out[k] = nodes[r]
	}

	return out
}

// Stats are the counters gathered during the parsing.
type Stats struct {
	Nodes           int  `json:"nodes"`
	Tokens          int  `json:"tokens"`
	OpenTags        int  `json:"open_tags"`
	CloseTags       int  `json:"close_tags"`
	TextTokens      int  `json:"text_tokens"`
	MaxDepth        int  `json:"max_depth"`
	Truncated       bool `json:"truncated"`
	DroppedWarnings int  `json:"dropped_warnings"`
}

// SerializableDocument is the JSON-friendly result of the parsing.
type SerializableDocument struct {
	Nodes    []Node                `json:"nodes"`
	Tree     []TreeNode            `json:"tree"`
	Warnings []SerializableWarning `json:"warnings"`
	Stats    Stats                 `json:"stats"`
}

// Serialize packs the parsing result and its Warnings for the output.
func Serialize(out Output, warns *Warnings) SerializableDocument {
	doc := out.Document
	if doc == nil {
		doc = NewDocument(0)
	}

	return SerializableDocument{
		Nodes:    doc.Nodes(),
		Tree:     doc.Tree(),
		Warnings: warns.Serialize(),
		Stats: Stats{
			Nodes:           doc.Len(),
			Tokens:          out.Tokens,
			OpenTags:        out.OpenTags,
			CloseTags:       out.CloseTags,
			TextTokens:      out.TextTokens,
			MaxDepth:        out.MaxDepth,
			Truncated:       out.Truncated,
			DroppedWarnings: warns.DroppedCount(),
		},
	}
}
