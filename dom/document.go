package dom

import (
	"errors"
	"fmt"

	"github.com/Drolfothesgnir/minidom/tag"
)

// NoParent is the parent index of top-level nodes.
const NoParent = -1

// ErrInvalidParent is returned when a node's parent is neither [NoParent] nor an index of an earlier node.
var ErrInvalidParent = errors.New("parent must precede the node")

// Node is the record view of a single document node.
type Node struct {
	// Tag is the kind of the node. Text nodes have [tag.Text].
	Tag tag.Kind `json:"tag"`

	// Text is the text run of a text node and is empty for elements.
	Text string `json:"text"`

	// Parent is the index of the enclosing element, or [NoParent].
	Parent int `json:"parent"`
}

// Document is the flat, append-only store of the nodes. The nodes are kept column-wise and are
// addressed by their position, which never changes once the node is appended.
//
// Invariant: the parent of every node is either [NoParent] or an index strictly
// less than the node's own index.
type Document struct {
	tags    []tag.Kind
	texts   []string
	parents []int
}

// NewDocument creates an empty Document with room for capacity nodes.
func NewDocument(capacity int) *Document {
	capacity = max(capacity, 0)
	return &Document{
		tags:    make([]tag.Kind, 0, capacity),
		texts:   make([]string, 0, capacity),
		parents: make([]int, 0, capacity),
	}
}

// push appends the node without validation and returns its index.
// The Builder relies on the scope stack to keep the parent invariant.
func (d *Document) push(k tag.Kind, text string, parent int) int {
	idx := len(d.tags)
	d.tags = append(d.tags, k)
	d.texts = append(d.texts, text)
	d.parents = append(d.parents, parent)
	return idx
}

// Add appends the node and returns its index. It fails with [ErrInvalidParent] if
// the node's parent breaks the Document invariant.
func (d *Document) Add(n Node) (int, error) {
	if n.Parent < NoParent || n.Parent >= len(d.tags) {
		return 0, fmt.Errorf("node %d with parent %d: %w", len(d.tags), n.Parent, ErrInvalidParent)
	}
	return d.push(n.Tag, n.Text, n.Parent), nil
}

// Len returns the number of nodes.
func (d *Document) Len() int {
	return len(d.tags)
}

func (d *Document) Tag(i int) tag.Kind {
	return d.tags[i]
}

func (d *Document) Text(i int) string {
	return d.texts[i]
}

func (d *Document) Parent(i int) int {
	return d.parents[i]
}

// Node returns the record view of the node at the index i.
func (d *Document) Node(i int) Node {
	return Node{
		Tag:    d.tags[i],
		Text:   d.texts[i],
		Parent: d.parents[i],
	}
}

// Nodes returns the record view of all the nodes, in storage order.
func (d *Document) Nodes() []Node {
	out := make([]Node, d.Len())
	for i := range out {
		out[i] = d.Node(i)
	}
	return out
}

// Roots returns indices of the top-level nodes.
func (d *Document) Roots() []int {
	return d.Children(NoParent)
}

// Children returns indices of the direct children of the node i, in storage order.
// Passing [NoParent] returns the top-level nodes.
func (d *Document) Children(i int) []int {
	var out []int
	// children always follow their parent
	for j := i + 1; j < len(d.parents); j++ {
		if d.parents[j] == i {
			out = append(out, j)
		}
	}
	return out
}

// Depth returns the number of ancestors of the node i. Top-level nodes have depth 0.
func (d *Document) Depth(i int) int {
	depth := 0
	for p := d.parents[i]; p != NoParent; p = d.parents[p] {
		depth++
	}
	return depth
}

// childLists returns the children of every node plus the top-level nodes, built in one pass.
func (d *Document) childLists() (children [][]int, roots []int) {
	children = make([][]int, d.Len())
	for i, p := range d.parents {
		if p == NoParent {
			roots = append(roots, i)
			continue
		}
		children[p] = append(children[p], i)
	}
	return children, roots
}

type walkTask struct {
	idx   int
	depth int
}

// Walk visits the nodes in pre-order, passing the node index and its depth to fn.
// The walk stops early when fn returns false.
func (d *Document) Walk(fn func(i, depth int) bool) {
	children, roots := d.childLists()

	stack := make([]walkTask, 0, len(roots))
	for k := len(roots) - 1; k >= 0; k-- {
		stack = append(stack, walkTask{roots[k], 0})
	}

	for len(stack) > 0 {
		// pop
		task := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !fn(task.idx, task.depth) {
			return
		}

		// push children in reverse, so the first child is visited first
		kids := children[task.idx]
		for k := len(kids) - 1; k >= 0; k-- {
			stack = append(stack, walkTask{kids[k], task.depth + 1})
		}
	}
}
