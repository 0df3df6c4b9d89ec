/*
Package sequence implements an ordered, resizable collection of values with an
internal cursor. It defines the type Sequence, with methods for navigating and
editing the collection around its current item, and the type Store, with methods
for interacting with a keyed collection of sequences.

A Sequence keeps its items in a contiguous buffer that grows by a factor of 1.5
(plus one slot) whenever an insertion finds it full. Its cursor either designates
the current item or sits one past the last item, meaning there is no current item:

	s := sequence.New[int](1)
	s.Insert(5) // [5], current 5
	s.Attach(7) // [5 7], current 7
	s.Start()   // current 5
	s.RemoveCurrent()
	// [7], current 7

Calling Advance, Current or RemoveCurrent without a current item is a programming
error and panics with ErrNoCurrentItem.

A Sequence is not safe for concurrent use. A Store is essentially a wrapper around
a map of sequences that provides convenience methods safe to use from multiple
goroutines.
*/
package sequence
