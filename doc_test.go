package tst

import (
	"errors"
	"fmt"
)

func Example() {
	t := New()
	t.InsertAll("dog", "Cat", "cats", "car")

	fmt.Println(t.AllStrings())

	found, _ := t.Search("CAT")
	fmt.Println(found)

	words, _ := t.PrefixSearch("ca")
	fmt.Println(words, t.Size())

	// Output:
	// [car cat cats dog]
	// true
	// [car cat cats] 4
}

func Example_delete() {
	t := New()
	t.InsertAll("cat", "cats")

	removed, _ := t.Delete("cat")
	fmt.Println(removed, t.Contains("cat"), t.Contains("cats"))

	removed, _ = t.Delete("cat")
	fmt.Println(removed)

	// Output:
	// true false true
	// false
}

func Example_invalidInput() {
	t := New()

	err := t.Insert("")
	fmt.Println(errors.Is(err, ErrInvalidInput))
	fmt.Println(err)
	fmt.Println(t.Insert("two words"))
	fmt.Println(t.Size())

	// Output:
	// true
	// tst: invalid key "": empty key
	// tst: invalid key "two words": unsupported character ' '
	// 0
}

func ExampleTree_All() {
	t := New()
	t.InsertAll("up", "bug", "at", "cat")
	for word := range t.All() {
		fmt.Println(word)
		if word == "bug" {
			break
		}
	}
	// Output:
	// at
	// bug
}

func ExampleTree_String() {
	t := New()
	t.InsertAll("cat", "at")
	fmt.Print(t.String())
	fmt.Println(t.Summary())
	// Output:
	// root 'c' end=false
	//   lo 'a' end=false
	//     eq 't' end=true
	//   eq 'a' end=false
	//     eq 't' end=true
	// TernarySearchTree(words=2, height=3)
}
