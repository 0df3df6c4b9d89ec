package sequence_test

import (
	"fmt"

	"github.com/geofduf/cursor-sequence/sequence"
)

func ExampleSequence() {
	s := sequence.New[int](1)
	s.Insert(5)
	s.Attach(7)
	s.Start()
	s.RemoveCurrent()
	s.Attach(9)

	for s.Start(); s.HasCurrent(); s.Advance() {
		fmt.Println(s.Current())
	}
	// Output:
	// 7
	// 9
}

func ExampleSequence_Serialize() {
	s := sequence.NewFromValues(4, "a", "b", "c")
	s.Advance()

	b, err := s.Serialize(sequence.SerializeItems | sequence.SerializeCursor)
	if err != nil {
		fmt.Println("Serialize failed:", err)
	}

	fmt.Printf("%s", b)
	// Output: {"size":3,"current":1,"items":["a","b","c"]}
}

func ExampleStore_Batch() {
	store := sequence.NewStore[int]()
	report, err := store.Batch([]sequence.Statement[int]{
		{Key: "a", Type: sequence.StatementInsert, Value: 1, CreateIfNotExists: true},
		{Key: "a", Type: sequence.StatementAttach, Value: 2},
		{Key: "b", Type: sequence.StatementRemove},
	})
	fmt.Println(err)
	fmt.Println(report)

	x, _ := store.Get("a")
	fmt.Println(x.Values())
	// Output:
	// some operations could not be completed
	// ["b": key does not exist, at index 2]
	// [1 2]
}
