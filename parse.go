package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/Drolfothesgnir/minidom/dom"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var parseFlags struct {
	format      string
	maxWarnings int
	policy      string
	indent      bool
}

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse markup and print the document as JSON",
	Long: `Parse markup from a file, or from stdin when no file is given, and print the
resulting document as JSON.

Formats:
  nodes  the flat node list, parents given by index
  tree   the nodes nested under their parents
  full   both of the above

Warnings are written to the log and included in the output.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseFlags.format, "format", "f", "nodes", "output format: nodes, tree, full")
	parseCmd.Flags().IntVar(&parseFlags.maxWarnings, "max-warnings", 64, "warnings cap")
	parseCmd.Flags().StringVar(&parseFlags.policy, "warnings-policy", "trunc", "warnings overflow policy: nocap, norec, drop, trunc")
	parseCmd.Flags().BoolVar(&parseFlags.indent, "indent", true, "indent the JSON output")
}

// parseOutput is the printed document. Sections not requested by the format are omitted.
type parseOutput struct {
	Nodes    []dom.Node                `json:"nodes,omitempty"`
	Tree     []dom.TreeNode            `json:"tree,omitempty"`
	Warnings []dom.SerializableWarning `json:"warnings"`
	Stats    dom.Stats                 `json:"stats"`
}

func runParse(cmd *cobra.Command, args []string) error {
	var (
		input []byte
		err   error
	)

	if len(args) == 1 {
		input, err = os.ReadFile(args[0])
	} else {
		input, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return fmt.Errorf("cannot read input: %w", err)
	}

	doc, err := parseMarkup(string(input), parseFlags.policy, parseFlags.maxWarnings)
	if err != nil {
		return err
	}

	for _, w := range doc.Warnings {
		log.Warn().Int("byte_idx", w.ByteIdx).Str("issue", w.Issue).Msg(w.Description)
	}

	out, err := selectFormat(doc, parseFlags.format)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if parseFlags.indent {
		enc.SetIndent("", "  ")
	}

	return enc.Encode(out)
}

func parseMarkup(input, policyName string, maxWarnings int) (dom.SerializableDocument, error) {
	policy, err := dom.ParseOverflowPolicy(policyName)
	if err != nil {
		return dom.SerializableDocument{}, err
	}

	warns, err := dom.NewWarnings(policy, maxWarnings)
	if err != nil {
		return dom.SerializableDocument{}, err
	}

	out := dom.Parse(input, nil, warns)
	log.Debug().
		Int("bytes", len(input)).
		Int("nodes", out.Document.Len()).
		Int("tokens", out.Tokens).
		Bool("truncated", out.Truncated).
		Msg("input parsed")

	return dom.Serialize(out, warns), nil
}

func selectFormat(doc dom.SerializableDocument, format string) (parseOutput, error) {
	out := parseOutput{
		Warnings: doc.Warnings,
		Stats:    doc.Stats,
	}

	switch format {
	case "nodes":
		out.Nodes = doc.Nodes
	case "tree":
		out.Tree = doc.Tree
	case "full":
		out.Nodes = doc.Nodes
		out.Tree = doc.Tree
	default:
		return out, fmt.Errorf("unknown format %q: use nodes, tree or full", format)
	}

	return out, nil
}
