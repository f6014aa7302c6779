package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Drolfothesgnir/minidom/dom"
	"github.com/Drolfothesgnir/minidom/tag"
	"github.com/stretchr/testify/require"
)

func TestParseMarkup(t *testing.T) {
	doc, err := parseMarkup("<div><p>Hello</p>Happy</div>", "trunc", 8)
	require.NoError(t, err)

	require.Equal(t, []dom.Node{
		{Tag: tag.Div, Parent: dom.NoParent},
		{Tag: tag.P, Parent: 0},
		{Tag: tag.Text, Text: "Hello", Parent: 1},
		{Tag: tag.Text, Text: "Happy", Parent: 0},
	}, doc.Nodes)
	require.Empty(t, doc.Warnings)
}

func TestParseMarkup_BadWarningsConfig(t *testing.T) {
	_, err := parseMarkup("<p></p>", "always", 8)
	require.Error(t, err)

	_, err = parseMarkup("<p></p>", "drop", -1)
	require.Error(t, err)
}

func TestSelectFormat(t *testing.T) {
	doc, err := parseMarkup("<p>x</p>", "nocap", 0)
	require.NoError(t, err)

	out, err := selectFormat(doc, "nodes")
	require.NoError(t, err)
	require.NotEmpty(t, out.Nodes)
	require.Empty(t, out.Tree)

	out, err = selectFormat(doc, "tree")
	require.NoError(t, err)
	require.Empty(t, out.Nodes)
	require.NotEmpty(t, out.Tree)

	out, err = selectFormat(doc, "full")
	require.NoError(t, err)
	require.NotEmpty(t, out.Nodes)
	require.NotEmpty(t, out.Tree)

	_, err = selectFormat(doc, "xml")
	require.Error(t, err)
}

func TestParseCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte("<body><div>x</div>"), 0o600))

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"parse", "--format", "tree", "--indent=false", path})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	var out parseOutput
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))

	require.Empty(t, out.Nodes)
	require.Equal(t, []dom.TreeNode{
		{Tag: tag.Body, Children: []dom.TreeNode{
			{Tag: tag.Div, Children: []dom.TreeNode{{Tag: tag.Text, Text: "x"}}},
		}},
	}, out.Tree)
	require.Len(t, out.Warnings, 1)
	require.Equal(t, dom.IssueUnclosedTag.String(), out.Warnings[0].Issue)
}

func TestParseCommand_Stdin(t *testing.T) {
	var stdout bytes.Buffer
	rootCmd.SetIn(strings.NewReader("<p>a</p><p>b</p>"))
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"parse", "--format", "nodes"})
	t.Cleanup(func() {
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	require.NoError(t, rootCmd.Execute())

	var out parseOutput
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	require.Len(t, out.Nodes, 4)
	require.Equal(t, 4, out.Stats.Nodes)
}
