package dom

import (
	"encoding/json"
	"testing"

	"github.com/Drolfothesgnir/minidom/tag"
	"github.com/stretchr/testify/require"
)

func TestDocumentTree(t *testing.T) {
	out := Parse("<div><p>Hello</p>Happy</div><p></p>", nil, nil)

	want := []TreeNode{
		{
			Tag: tag.Div,
			Children: []TreeNode{
				{
					Tag:      tag.P,
					Children: []TreeNode{{Tag: tag.Text, Text: "Hello"}},
				},
				{Tag: tag.Text, Text: "Happy"},
			},
		},
		{Tag: tag.P},
	}

	require.Equal(t, want, out.Document.Tree())
}

func TestSerialize(t *testing.T) {
	w := newWarnings(t)
	out := Parse("<div>Hello Hppy</div></p>", nil, w)

	b, err := json.Marshal(Serialize(out, w))
	require.NoError(t, err)

	expected := `{
		"nodes": [
			{"tag": "Div", "text": "", "parent": -1},
			{"tag": "Text", "text": "Hello Hppy", "parent": 0}
		],
		"tree": [
			{"tag": "Div", "children": [{"tag": "Text", "text": "Hello Hppy"}]}
		],
		"warnings": [
			{
				"byte_idx": 21,
				"issue": "Unmatched Closing Tag",
				"description": "closing tag \"p\" has no open element and is ignored."
			}
		],
		"stats": {
			"nodes": 2,
			"tokens": 4,
			"open_tags": 1,
			"close_tags": 2,
			"text_tokens": 1,
			"max_depth": 1,
			"truncated": false,
			"dropped_warnings": 0
		}
	}`

	require.JSONEq(t, expected, string(b))
}

func TestSerializeEmpty(t *testing.T) {
	b, err := json.Marshal(Serialize(Output{}, nil))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))

	require.Equal(t, []any{}, got["nodes"])
	require.Equal(t, []any{}, got["tree"])
	require.Equal(t, []any{}, got["warnings"])
}
