package sequence

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Statement types.
const (
	StatementInsert uint8 = iota
	StatementAttach
	StatementRemove
	StatementStart
	StatementAdvance
	StatementResize
	statementUnknown
)

// Store errors.
var (
	ErrUnknownKey       = errors.New("key does not exist")
	ErrUnknownStatement = errors.New("unknown statement type")
)

// A Statement represents an operation to perform on a store. Value is used by
// insert and attach statements, Capacity by resize statements.
type Statement[T any] struct {
	Key                string
	Type               uint8
	Value              T
	Capacity           int
	CreateIfNotExists  bool
	CreateWithCapacity int
}

// A Store represents a collection of Sequences. A Store can be used simultaneously
// from multiple goroutines.
type Store[T any] struct {
	m  map[string]*Sequence[T]
	mu sync.RWMutex
}

// NewStore creates and intializes a new Store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{m: make(map[string]*Sequence[T])}
}

// New creates and adds a new empty Sequence to the store using key as its identifier.
// If a Sequence already exists for the identifier it is silently replaced with the new
// Sequence.
func (s *Store[T]) New(key string, capacity int) {
	s.mu.Lock()
	s.m[key] = New[T](capacity)
	s.mu.Unlock()
}

// Add adds a copy of x to the store using key as its identifier.
// If a Sequence already exists for the identifier it is silently replaced with the new
// Sequence.
func (s *Store[T]) Add(key string, x *Sequence[T]) {
	s.mu.Lock()
	s.m[key] = x.Clone()
	s.mu.Unlock()
}

// Get returns a copy of the Sequence associated to key. The second return value is
// true if the key exists in the store and false if not.
func (s *Store[T]) Get(key string) (*Sequence[T], bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	x, ok := s.m[key]
	if !ok {
		return nil, false
	}
	return x.Clone(), true
}

// Delete removes the Sequence associated to key, if any.
func (s *Store[T]) Delete(key string) {
	s.mu.Lock()
	delete(s.m, key)
	s.mu.Unlock()
}

// Execute executes a statement against the store, returning an error if the
// statement cannot be executed.
func (s *Store[T]) Execute(statement Statement[T]) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.executeUnsafe(statement)
}

// Batch executes multiple statements against the store. Individual errors are non
// blocking but if one or more statements could not be executed the method will
// return a slice holding information about each individual error and a global error.
func (s *Store[T]) Batch(statements []Statement[T]) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var report []string
	for i, v := range statements {
		if err := s.executeUnsafe(v); err != nil {
			report = append(report, fmt.Sprintf("%s, at index %d", err, i))
		}
	}
	if len(report) > 0 {
		return report, errors.New("some operations could not be completed")
	}
	return report, nil
}

// Keys returns the identifiers known in the store in ascending order.
func (s *Store[T]) Keys() []string {
	s.mu.RLock()
	keys := make([]string, 0, len(s.m))
	for k := range s.m {
		keys = append(keys, k)
	}
	s.mu.RUnlock()
	sort.Strings(keys)
	return keys
}

// executeUnsafe executes a statement against the store. Statements requiring a
// current item are rejected with an error instead of reaching the sequence.
// This method is not goroutine-safe. The caller is responsible for properly
// acquiring / releasing the lock on the store.
func (s *Store[T]) executeUnsafe(statement Statement[T]) error {
	if statement.Type >= statementUnknown {
		return ErrUnknownStatement
	}
	x, ok := s.m[statement.Key]
	if !ok {
		if !statement.CreateIfNotExists {
			return fmt.Errorf("%q: %w", statement.Key, ErrUnknownKey)
		}
		x = New[T](statement.CreateWithCapacity)
		s.m[statement.Key] = x
	}
	switch statement.Type {
	case StatementInsert:
		x.Insert(statement.Value)
	case StatementAttach:
		x.Attach(statement.Value)
	case StatementStart:
		x.Start()
	case StatementResize:
		x.Resize(statement.Capacity)
	case StatementRemove, StatementAdvance:
		if !x.HasCurrent() {
			return fmt.Errorf("%q: %w", statement.Key, ErrNoCurrentItem)
		}
		if statement.Type == StatementRemove {
			x.RemoveCurrent()
		} else {
			x.Advance()
		}
	}
	return nil
}
