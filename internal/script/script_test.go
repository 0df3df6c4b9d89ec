package script

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/geofduf/cursor-sequence/sequence"
	"github.com/stretchr/testify/require"
)

const testScript = `
sequences:
  - key: a
    capacity: 1
statements:
  - {key: a, op: insert, value: 5}
  - {key: a, op: attach, value: 7}
  - {key: a, op: start}
  - {key: a, op: remove}
  - {key: a, op: resize, capacity: 8}
  - {key: b, op: attach, value: 1, create: true, capacity: 4}
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(testScript))
	require.NoError(t, err)
	require.Equal(t, []Declaration{{Key: "a", Capacity: 1}}, s.Sequences)
	require.Len(t, s.Ops, 6)

	sts, err := s.Statements()
	require.NoError(t, err)
	require.Equal(t, sequence.Statement[int]{Key: "a", Type: sequence.StatementInsert, Value: 5}, sts[0])
	require.Equal(t, sequence.Statement[int]{Key: "a", Type: sequence.StatementResize, Capacity: 8}, sts[4])
	require.Equal(t, sequence.Statement[int]{
		Key:                "b",
		Type:               sequence.StatementAttach,
		Value:              1,
		CreateIfNotExists:  true,
		CreateWithCapacity: 4,
	}, sts[5])
}

func TestParseEmpty(t *testing.T) {
	s, err := Parse(nil)
	require.NoError(t, err)
	require.Empty(t, s.Ops)

	s, err = Parse([]byte("\n"))
	require.NoError(t, err)
	require.Empty(t, s.Sequences)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("statements: 5"))
	require.Error(t, err)

	_, err = Parse([]byte("unknown: true"))
	require.Error(t, err)
}

func TestStatementsUnknownOp(t *testing.T) {
	s := &Script{Ops: []Op{{Key: "a", Op: "insert"}, {Key: "a", Op: "pop"}}}
	_, err := s.Statements()
	require.True(t, errors.Is(err, ErrUnknownOp))
	require.ErrorContains(t, err, `statement 1`)
}

func TestLoadApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "script.yml")
	require.NoError(t, os.WriteFile(path, []byte(testScript), 0o644))

	s, err := Load(path)
	require.NoError(t, err)

	store := sequence.NewStore[int]()
	s.Apply(store)
	sts, err := s.Statements()
	require.NoError(t, err)
	report, err := store.Batch(sts)
	require.NoError(t, err)
	require.Empty(t, report)

	a, ok := store.Get("a")
	require.True(t, ok)
	require.Equal(t, []int{7}, a.Values())
	require.Equal(t, 8, a.Capacity())

	b, ok := store.Get("b")
	require.True(t, ok)
	require.Equal(t, []int{1}, b.Values())
	require.Equal(t, 4, b.Capacity())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}
