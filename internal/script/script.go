// Package script reads replay scripts describing statements to run against a
// sequence store.
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/geofduf/cursor-sequence/sequence"
	"gopkg.in/yaml.v3"
)

// ErrUnknownOp is returned for statements using an operation name that is not
// supported.
var ErrUnknownOp = errors.New("unknown operation")

var ops = map[string]uint8{
	"insert":  sequence.StatementInsert,
	"attach":  sequence.StatementAttach,
	"remove":  sequence.StatementRemove,
	"start":   sequence.StatementStart,
	"advance": sequence.StatementAdvance,
	"resize":  sequence.StatementResize,
}

// Script is a replay script.
type Script struct {
	Sequences []Declaration `yaml:"sequences"`
	Ops       []Op          `yaml:"statements"`
}

// Declaration declares a sequence created before any statement runs.
type Declaration struct {
	Key      string `yaml:"key"`
	Capacity int    `yaml:"capacity"`
}

// Op is a single statement of a script. Capacity is the target capacity of
// resize operations and the initial capacity of sequences created with Create.
type Op struct {
	Key      string `yaml:"key"`
	Op       string `yaml:"op"`
	Value    int    `yaml:"value"`
	Capacity int    `yaml:"capacity"`
	Create   bool   `yaml:"create"`
}

// Load reads the script stored at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read script: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML script. Unknown fields are rejected, an empty document
// is an empty script.
func Parse(data []byte) (*Script, error) {
	s := new(Script)
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to unmarshal script YAML: %w", err)
	}
	return s, nil
}

// Statements converts script operations into store statements.
func (s *Script) Statements() ([]sequence.Statement[int], error) {
	res := make([]sequence.Statement[int], 0, len(s.Ops))
	for i, op := range s.Ops {
		typ, ok := ops[op.Op]
		if !ok {
			return nil, fmt.Errorf("statement %d: %w: %q", i, ErrUnknownOp, op.Op)
		}
		st := sequence.Statement[int]{
			Key:               op.Key,
			Type:              typ,
			Value:             op.Value,
			CreateIfNotExists: op.Create,
		}
		if typ == sequence.StatementResize {
			st.Capacity = op.Capacity
		} else {
			st.CreateWithCapacity = op.Capacity
		}
		res = append(res, st)
	}
	return res, nil
}

// Apply creates the sequences declared by the script in store, replacing
// existing sequences with the same keys.
func (s *Script) Apply(store *sequence.Store[int]) {
	for _, d := range s.Sequences {
		store.New(d.Key, d.Capacity)
	}
}
