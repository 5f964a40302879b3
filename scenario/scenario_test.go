package scenario_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtree/avl"
	"github.com/katalvlaran/lvtree/scenario"
)

func TestPassingScenarios(t *testing.T) {
	for _, name := range []string{"cascade.yaml", "double.yaml", "balanced.yaml"} {
		t.Run(name, func(t *testing.T) {
			s, err := scenario.Load(filepath.Join("testdata", name))
			require.NoError(t, err)

			tr, err := s.Run()
			require.NoError(t, err)
			assert.NoError(t, s.Check(tr))
			assert.Equal(t, len(s.Inserts)+1, tr.Len())
		})
	}
}

func TestRun_Options(t *testing.T) {
	s, err := scenario.Load(filepath.Join("testdata", "double.yaml"))
	require.NoError(t, err)

	var doubles int
	_, err = s.Run(avl.WithOnRotate(func(ev avl.RotationEvent[string]) {
		if ev.Kind == avl.DoubleRotation {
			doubles++
		}
	}))
	require.NoError(t, err)
	assert.Equal(t, 1, doubles)
}

func TestCheck_ReportsEveryMismatch(t *testing.T) {
	s, err := scenario.Load(filepath.Join("testdata", "wrong.yaml"))
	require.NoError(t, err)
	tr, err := s.Run()
	require.NoError(t, err)

	err = s.Check(tr)
	require.ErrorIs(t, err, scenario.ErrExpectation)
	assert.ErrorContains(t, err, `head is "2", want "1"`)
	assert.ErrorContains(t, err, `node "4" not in tree`)
	// the shape of "2" itself is right
	assert.NotContains(t, err.Error(), `left of "2"`)
}

func TestRun_DuplicateID(t *testing.T) {
	s, err := scenario.Load(filepath.Join("testdata", "duplicate.yaml"))
	require.NoError(t, err)

	tr, err := s.Run()
	require.ErrorIs(t, err, avl.ErrDuplicateID)
	assert.ErrorContains(t, err, "insert #2")
	require.NotNil(t, tr)
	assert.Equal(t, 2, tr.Len())
}

func TestParse_Errors(t *testing.T) {
	_, err := scenario.Load(filepath.Join("testdata", "nohead.yaml"))
	assert.ErrorIs(t, err, scenario.ErrMissingHead)

	_, err = scenario.Load(filepath.Join("testdata", "does-not-exist.yaml"))
	assert.Error(t, err)

	_, err = scenario.Parse([]byte("head: [unterminated"))
	assert.ErrorContains(t, err, "decode")

	_, err = scenario.Parse([]byte("head: {id: a, value: 1}\ncolour: red\n"))
	assert.ErrorContains(t, err, "colour", "unknown fields are rejected")
	assert.False(t, errors.Is(err, scenario.ErrMissingHead))
}

func TestParse_Inline(t *testing.T) {
	s, err := scenario.Parse([]byte(`
head: {id: "2", value: 2}
inserts:
  - {id: "1", value: 1}
  - {id: "3", value: 3}
expect:
  head: "2"
  nodes:
    "2": {left: "1", right: "3", balance: 0}
`))
	require.NoError(t, err)
	assert.Empty(t, s.Name)
	require.Len(t, s.Inserts, 2)
	require.NotNil(t, s.Expect.Nodes["2"].Balance)
	assert.Equal(t, 0, *s.Expect.Nodes["2"].Balance)

	tr, err := s.Run()
	require.NoError(t, err)
	assert.NoError(t, s.Check(tr))
}
