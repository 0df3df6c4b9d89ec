package sequence

import "errors"

// Contract violations. Methods that require a current item panic with
// ErrNoCurrentItem when called without one.
var (
	ErrNoCurrentItem    = errors.New("no current item")
	ErrCapacityExceeded = errors.New("capacity exceeded")
)

// A Sequence represents an ordered collection of values of type T with an
// internal cursor designating the current item. A Sequence is not safe for
// concurrent use.
type Sequence[T any] struct {
	items  []T
	used   int
	cursor int
}

// New creates and initializes an empty Sequence using capacity as the size
// of its initial buffer. The capacity will default to 1 if lower than 1.
func New[T any](capacity int) *Sequence[T] {
	if capacity < 1 {
		capacity = 1
	}
	return &Sequence[T]{items: make([]T, capacity)}
}

// NewFromValues creates a new Sequence holding values in order. The first
// value, if any, is the current item. If capacity cannot hold all the values
// the buffer is sized to fit them.
func NewFromValues[T any](capacity int, values ...T) *Sequence[T] {
	if capacity < len(values) {
		capacity = len(values)
	}
	s := New[T](capacity)
	s.used = copy(s.items, values)
	return s
}

// Clone returns a deep copy of s. The copy has the same capacity, items and
// cursor position but shares no storage with s.
func (s *Sequence[T]) Clone() *Sequence[T] {
	clone := Sequence[T]{
		items:  make([]T, len(s.items)),
		used:   s.used,
		cursor: s.cursor,
	}
	copy(clone.items, s.items[:s.used])
	return &clone
}

// Assign replaces the content of s with a deep copy of src. Assigning a
// sequence to itself leaves it unchanged.
func (s *Sequence[T]) Assign(src *Sequence[T]) {
	if s == src {
		return
	}
	items := make([]T, len(src.items))
	copy(items, src.items[:src.used])
	s.items = items
	s.used = src.used
	s.cursor = src.cursor
}

// Resize reallocates the buffer of s to hold n items. The new capacity never
// drops below the number of items in the sequence, nor below 1.
func (s *Sequence[T]) Resize(n int) {
	if n < s.used {
		n = s.used
	}
	if n < 1 {
		n = 1
	}
	items := make([]T, n)
	copy(items, s.items[:s.used])
	s.items = items
}

// Start makes the first item the current item. On an empty sequence there is
// no current item afterwards.
func (s *Sequence[T]) Start() {
	s.cursor = 0
}

// Advance makes the item following the current item the new current item.
// If the current item was the last one there is no current item afterwards.
func (s *Sequence[T]) Advance() {
	s.mustHaveCurrent()
	s.cursor++
}

// HasCurrent reports whether s has a current item.
func (s *Sequence[T]) HasCurrent() bool {
	return s.cursor != s.used
}

// Current returns the current item.
func (s *Sequence[T]) Current() T {
	s.mustHaveCurrent()
	return s.items[s.cursor]
}

// Insert adds v before the current item and makes it the current item. If
// there is no current item v is added at the front of the sequence.
func (s *Sequence[T]) Insert(v T) {
	s.reserve()
	if !s.HasCurrent() {
		s.cursor = 0
	}
	s.insertAt(s.cursor, v)
}

// Attach adds v after the current item and makes it the current item. If
// there is no current item v is added at the front of the sequence.
func (s *Sequence[T]) Attach(v T) {
	s.reserve()
	if s.HasCurrent() {
		s.cursor++
	} else {
		s.cursor = 0
	}
	s.insertAt(s.cursor, v)
}

// RemoveCurrent removes the current item. The item that followed it, if any,
// becomes the current item.
func (s *Sequence[T]) RemoveCurrent() {
	s.mustHaveCurrent()
	copy(s.items[s.cursor:], s.items[s.cursor+1:s.used])
	s.used--
	var zero T
	s.items[s.used] = zero
}

// Size returns the number of items in the sequence.
func (s *Sequence[T]) Size() int {
	return s.used
}

// Capacity returns the number of items s can hold before growing.
func (s *Sequence[T]) Capacity() int {
	return len(s.items)
}

// Values returns a copy of the items in the sequence.
func (s *Sequence[T]) Values() []T {
	values := make([]T, s.used)
	copy(values, s.items[:s.used])
	return values
}

// reserve grows the buffer when it is full, using 1.5 times the current
// capacity plus one as the new capacity.
func (s *Sequence[T]) reserve() {
	if c := len(s.items); s.used == c {
		s.Resize(c + c/2 + 1)
	}
}

// insertAt shifts items [i, used) one slot up and stores v at index i.
func (s *Sequence[T]) insertAt(i int, v T) {
	if s.used >= len(s.items) || i > s.used {
		panic(ErrCapacityExceeded)
	}
	copy(s.items[i+1:s.used+1], s.items[i:s.used])
	s.items[i] = v
	s.used++
}

func (s *Sequence[T]) mustHaveCurrent() {
	if !s.HasCurrent() {
		panic(ErrNoCurrentItem)
	}
}
