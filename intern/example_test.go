package intern_test

import (
	"fmt"
	"unsafe"

	"github.com/pavanmanishd/slotarena/intern"
)

func Example() {
	t := intern.NewTable(intern.NewShared())

	a := t.AddSubstring("abcd1", 0, 4)
	b := t.AddSubstring("abcd2", 0, 4)
	c := t.AddASCII([]byte("abcd"))

	fmt.Println(a, unsafe.StringData(a) == unsafe.StringData(b), unsafe.StringData(a) == unsafe.StringData(c))

	// Non-ASCII bytes are decoded but never cached.
	d := t.AddASCII([]byte("größe"))
	e := t.AddASCII([]byte("größe"))
	fmt.Println(d, unsafe.StringData(d) == unsafe.StringData(e))

	s := t.Stats()
	fmt.Printf("hits=%d misses=%d bypassed=%d\n", s.LocalHits+s.SharedHits, s.Misses, s.Bypassed)

	// Output:
	// abcd true true
	// größe false
	// hits=2 misses=1 bypassed=2
}

func ExampleTable_Add_sessions() {
	shared := intern.NewShared()
	parser1 := intern.NewTable(shared)
	parser2 := intern.NewTable(shared)

	x := parser1.Add(string([]byte("identifier")))
	y := parser2.AddRunes([]rune("identifier"), 0, 10)

	fmt.Println(unsafe.StringData(x) == unsafe.StringData(y))
	fmt.Println(parser2.Stats().SharedHits)

	// Output:
	// true
	// 1
}
