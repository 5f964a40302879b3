// Package scenario loads YAML descriptions of an insert sequence together
// with the tree shape it must produce, replays them on an avl.Tree, and
// checks the result.
//
// A scenario document:
//
//	name: left-left cascade
//	head: {id: "60", value: 60}
//	inserts:
//	  - {id: "50", value: 50}
//	  - {id: "40", value: 40}
//	expect:
//	  head: "50"
//	  height: 2
//	  nodes:
//	    "50": {left: "40", right: "60", balance: 0}
//
// An empty left or right means the slot must be empty. Expectations that are
// left out (head, height, balance) are not checked.
package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"slices"

	"golang.org/x/exp/maps"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvtree/avl"
)

var (
	// ErrMissingHead is returned by Parse when the document has no head id.
	ErrMissingHead = errors.New("scenario: missing head")

	// ErrExpectation marks a tree that does not match the expected shape.
	ErrExpectation = errors.New("scenario: expectation not met")
)

// Entry is one (id, value) pair.
type Entry struct {
	ID    string `yaml:"id"`
	Value int    `yaml:"value"`
}

// Shape is the expected neighbourhood of one node.
type Shape struct {
	Left    string `yaml:"left"`
	Right   string `yaml:"right"`
	Balance *int   `yaml:"balance,omitempty"`
}

// Expect lists what the tree must look like after every insert.
type Expect struct {
	Head   string           `yaml:"head"`
	Height int              `yaml:"height"`
	Nodes  map[string]Shape `yaml:"nodes"`
}

// Scenario is a parsed scenario document.
type Scenario struct {
	Name    string  `yaml:"name"`
	Head    *Entry  `yaml:"head"`
	Inserts []Entry `yaml:"inserts"`
	Expect  Expect  `yaml:"expect"`
}

// Parse decodes a single scenario document. Unknown fields are rejected.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	if s.Head == nil || s.Head.ID == "" {
		return nil, fmt.Errorf("%w: %q", ErrMissingHead, s.Name)
	}

	return &s, nil
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}

	return s, nil
}

// Run builds a tree from the head and replays every insert in order.
// The first failing insert stops the run; its error is returned together
// with the tree built so far.
func (s *Scenario) Run(opts ...avl.Option[string]) (*avl.Tree[string, int], error) {
	t := avl.FromHead(s.Head.ID, s.Head.Value, append([]avl.Option[string]{avl.WithCapacity[string](len(s.Inserts) + 1)}, opts...)...)
	for i, e := range s.Inserts {
		if err := t.Insert(e.ID, e.Value); err != nil {
			return t, fmt.Errorf("scenario %q: insert #%d: %w", s.Name, i+1, err)
		}
	}

	return t, nil
}

// Check compares t with the expectations and reports every mismatch. Each
// reported error wraps ErrExpectation. A tree failing its own invariant
// check is reported as well.
func (s *Scenario) Check(t *avl.Tree[string, int]) error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrExpectation, fmt.Sprintf(format, args...)))
	}

	if err := t.Validate(); err != nil {
		errs = append(errs, err)
	}
	if want := s.Expect.Head; want != "" {
		if got := t.Head().ID(); got != want {
			fail("head is %q, want %q", got, want)
		}
	}
	if want := s.Expect.Height; want > 0 {
		if got := t.Height(); got != want {
			fail("height is %d, want %d", got, want)
		}
	}
	ids := maps.Keys(s.Expect.Nodes)
	slices.Sort(ids)
	for _, id := range ids {
		want := s.Expect.Nodes[id]
		n, ok := t.Get(id)
		if !ok {
			fail("node %q not in tree", id)
			continue
		}
		if got := childID(n.Left()); got != want.Left {
			fail("left of %q is %q, want %q", id, got, want.Left)
		}
		if got := childID(n.Right()); got != want.Right {
			fail("right of %q is %q, want %q", id, got, want.Right)
		}
		if want.Balance != nil && n.Balance() != *want.Balance {
			fail("balance of %q is %d, want %d", id, n.Balance(), *want.Balance)
		}
	}

	return errors.Join(errs...)
}

func childID(n avl.Node[string, int]) string {
	if n.IsNil() {
		return ""
	}

	return n.ID()
}
