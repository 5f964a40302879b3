package avl_test

import (
	"math"
	"math/rand"
	"strconv"
	"testing"

	"github.com/emirpasic/gods/trees/avltree"
	"github.com/google/btree"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvtree/avl"
)

// entry is one (value, id) pair in the btree oracle; ids break value ties.
type entry struct {
	value int
	id    string
}

func entryLess(a, b entry) bool {
	if a.value != b.value {
		return a.value < b.value
	}

	return a.id < b.id
}

// InvariantSuite drives random insert sequences and checks the tree against
// its own validator and two independent ordered containers after every step.
type InvariantSuite struct {
	suite.Suite
	rng *rand.Rand
}

func (s *InvariantSuite) SetupTest() {
	s.rng = rand.New(rand.NewSource(20240506))
}

// run inserts vals (ids "n0", "n1", ...) into a fresh tree headed by vals[0]
// and checks every invariant after each insert.
func (s *InvariantSuite) run(vals []int) *avl.Tree[string, int] {
	rotations := 0
	tr := avl.FromHead("n0", vals[0],
		avl.WithCapacity[string](len(vals)),
		avl.WithOnRotate(func(avl.RotationEvent[string]) { rotations++ }))

	oracle := btree.NewG[entry](8, entryLess)
	oracle.ReplaceOrInsert(entry{value: vals[0], id: "n0"})

	for i, v := range vals[1:] {
		id := "n" + strconv.Itoa(i+1)
		before := rotations
		s.Require().NoError(tr.Insert(id, v))
		oracle.ReplaceOrInsert(entry{value: v, id: id})

		s.Require().NoError(tr.Validate(), "after inserting %s=%d", id, v)
		s.Require().LessOrEqual(rotations-before, 1, "one insert, at most one rotation")
		s.Require().Equal(oracle.Len(), tr.Len())
	}

	want := make([]int, 0, oracle.Len())
	oracle.Ascend(func(e entry) bool {
		want = append(want, e.value)
		return true
	})
	s.Equal(want, tr.Values())

	n := tr.Len()
	bound := 1.4405 * math.Log2(float64(n+2))
	s.LessOrEqual(float64(tr.Height()), bound, "height of %d nodes", n)

	st := tr.Stats()
	s.Equal(n-1, st.Inserts)
	s.Equal(rotations, st.SingleRotations+st.DoubleRotations)
	s.LessOrEqual(st.RootChanges, rotations)

	return tr
}

func (s *InvariantSuite) TestAscending() {
	vals := make([]int, 512)
	for i := range vals {
		vals[i] = i
	}
	tr := s.run(vals)
	// 511 sorted keys fill 9 levels exactly; the 512th opens a tenth
	s.Equal(10, tr.Height())
}

func (s *InvariantSuite) TestDescending() {
	vals := make([]int, 512)
	for i := range vals {
		vals[i] = len(vals) - i
	}
	s.run(vals)
}

func (s *InvariantSuite) TestRandomPermutations() {
	for round := 0; round < 20; round++ {
		s.run(s.rng.Perm(200 + round*37))
	}
}

func (s *InvariantSuite) TestRandomWithDuplicates() {
	for round := 0; round < 20; round++ {
		vals := make([]int, 300)
		for i := range vals {
			vals[i] = s.rng.Intn(12)
		}
		s.run(vals)
	}
}

func (s *InvariantSuite) TestZigZag() {
	// alternating extremes force double rotations all the way down
	vals := make([]int, 0, 400)
	for lo, hi := 0, 1000; lo < hi; lo, hi = lo+5, hi-5 {
		vals = append(vals, lo, hi)
	}
	tr := s.run(vals)
	s.Positive(tr.Stats().DoubleRotations)
}

// TestMatchesReferenceAVL compares key order and size with an independent AVL
// implementation fed the same distinct keys.
func (s *InvariantSuite) TestMatchesReferenceAVL() {
	vals := s.rng.Perm(1000)
	tr := s.run(vals)

	ref := avltree.NewWithIntComparator()
	for _, v := range vals {
		ref.Put(v, strconv.Itoa(v))
	}
	s.Equal(ref.Size(), tr.Len())

	keys := ref.Keys()
	got := tr.Values()
	s.Require().Len(got, len(keys))
	for i, k := range keys {
		s.Equal(k.(int), got[i])
	}
}

// TestFingerprintDeterministic replays the same sequence twice.
func (s *InvariantSuite) TestFingerprintDeterministic() {
	vals := s.rng.Perm(128)
	a := s.run(vals)
	b := s.run(vals)
	s.Equal(a.Fingerprint(), b.Fingerprint())

	s.Require().NoError(b.Insert("extra", 64))
	s.NotEqual(a.Fingerprint(), b.Fingerprint())
}

func TestInvariantSuite(t *testing.T) {
	suite.Run(t, new(InvariantSuite))
}
