package main

import (
	"github.com/mgnsk/dlist"
)

func main() {
	l := dlist.New(dlist.WithCapacity[int](8))
	defer l.Close()

	for i := range 10 {
		l.PushBack(i)
	}

	// Prints the values from the back to the front.
	println(l.String())

	if v, ok := l.PopFront(); ok {
		println(v)
	}
}
