package dom

import (
	"fmt"
	"strings"
)

// Warning describes the problem occured during the tokenizing or the tree building.
type Warning struct {

	// Issue defines the type of the problem.
	Issue Issue

	// Pos defines the byte position in the input string at which the problem occured.
	Pos int

	// Description is a human-readable story of what went wrong.
	Description string
}

// WarningOverflowPolicy determines what happends when the maximum Warning capacity is reached.
type WarningOverflowPolicy int

const (
	// WarnOverflowNoCap means no limit for Warning recording.
	WarnOverflowNoCap WarningOverflowPolicy = iota

	// WarnOverflowNoRec means adding new Warning is a no-op.
	WarnOverflowNoRec

	// WarnOverflowDrop means all Warnings, after the overflow reached, will be simply discarded.
	WarnOverflowDrop

	// WarnOverflowTrunc means all Warnings, after the overflow reached, will be discarded, but
	// the number dropped ones will be recorded and additional Warning, signalling the overflow,
	// added.
	WarnOverflowTrunc
)

var policyNames = map[string]WarningOverflowPolicy{
	"nocap": WarnOverflowNoCap,
	"norec": WarnOverflowNoRec,
	"drop":  WarnOverflowDrop,
	"trunc": WarnOverflowTrunc,
}

// ParseOverflowPolicy maps the configuration name of the policy ("nocap", "norec", "drop" or "trunc")
// to its value. Matching is case-insensitive.
func ParseOverflowPolicy(name string) (WarningOverflowPolicy, error) {
	p, ok := policyNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return WarnOverflowNoCap, NewConfigError(
			IssueUnknownOverflowPolicy,
			fmt.Errorf("unknown warnings overflow policy %q", name),
		)
	}
	return p, nil
}

// Warnings maintains the list of issues occured during the tokenization or the tree building.
// The list can have maximum capacity, after which all further Warnings will be discarded,
// with only number of discared ones available.
//
// A nil *Warnings is valid and records nothing.
type Warnings struct {
	policy WarningOverflowPolicy

	// list contains the Warnings
	list []Warning

	// maxWarnings defines how many Warnings the list can contain.
	// It's used to keep the memory bounded on pathological inputs.
	maxWarnings int

	// overflowed is true if the number of recorded Warnings reached the maximum capacity
	overflowed bool

	// droppedCount is the number of the discarded Warnings after the overflow
	droppedCount int

	// firstDropPos is the index of the input from which the Warnings are discarded
	firstDropPos int
}

func (w *Warnings) IsOverflow() bool {
	return w != nil && w.overflowed
}

// DroppedCount is a number of Warnings discarded after the overflow reach.
func (w *Warnings) DroppedCount() int {
	if w == nil {
		return 0
	}
	return w.droppedCount
}

// FirstDropPos is the index of the input from which the Warnings are discarded.
func (w *Warnings) FirstDropPos() int {
	if w == nil {
		return 0
	}
	return w.firstDropPos
}

func (w *Warnings) List() []Warning {
	if w == nil {
		return nil
	}
	return w.list
}

// Add appends new [Warning] item to the inner list.
// If the policy is [WarnOverflowNoRec] or the receiver is nil, this is no-op.
func (w *Warnings) Add(item Warning) {
	if w == nil {
		return
	}

	switch w.policy {
	case WarnOverflowNoRec:
		return
	case WarnOverflowNoCap:
		w.list = append(w.list, item)
		return
	}

	// After overflow: Drop = ignore, Trunc = count + ignore
	if w.overflowed {
		if w.policy == WarnOverflowTrunc {
			w.droppedCount++
		}
		return
	}

	// capacity logic
	limit := w.maxWarnings
	if w.policy == WarnOverflowTrunc {
		limit = max(w.maxWarnings-1, 0) // reserve slot for truncation marker
	}

	if len(w.list) < limit {
		w.list = append(w.list, item)
		return
	}

	// First overflow happens now
	w.overflowed = true
	w.firstDropPos = item.Pos

	if w.policy == WarnOverflowTrunc {
		w.droppedCount = 1
		if w.maxWarnings > 0 {
			w.list = append(w.list, Warning{
				Issue:       IssueWarningsTruncated,
				Pos:         w.firstDropPos,
				Description: "too many warnings; further warnings suppressed",
			})
		}
	}
	// Drop: do nothing else
}

// NewWarnings creates a Warnings collector with the given overflow policy and capacity.
// It returns a ConfigError if cap is negative.
func NewWarnings(policy WarningOverflowPolicy, cap int) (*Warnings, error) {
	if cap < 0 {
		return nil, NewConfigError(
			IssueNegativeWarningsCap,
			fmt.Errorf("warnings cap must be non-negative, got %d", cap),
		)
	}

	// NoCap grows on demand, so cap is only a hint there.
	return &Warnings{
		policy:      policy,
		list:        make([]Warning, 0, cap),
		maxWarnings: cap,
	}, nil
}

// SerializableWarning is a serializable human-readable description of the issue found in the input.
type SerializableWarning struct {
	// ByteIdx is the position of the starting byte of the erroneous sequence in the input.
	ByteIdx int `json:"byte_idx"`
	// Issue is the name of the issue.
	Issue string `json:"issue"`
	// Description is a human-readable description of the issue.
	Description string `json:"description"`
}

// Serialize converts the recorded Warnings to their serializable form.
// The result is never nil, so it encodes as an empty JSON array.
func (w *Warnings) Serialize() []SerializableWarning {
	list := w.List()
	out := make([]SerializableWarning, len(list))
	for i, item := range list {
		out[i] = SerializableWarning{
			ByteIdx:     item.Pos,
			Issue:       item.Issue.String(),
			Description: item.Description,
		}
	}
	return out
}
