package ecs_test

import (
	"fmt"

	"github.com/plus3/topdown/ecs"
)

type TickCounter struct {
	Ticks int
}

// ExampleNewSingleton demonstrates creating and accessing singleton components.
// Every accessor for the same type shares one value.
func ExampleNewSingleton() {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())

	counter := ecs.NewSingleton[TickCounter](storage, TickCounter{Ticks: 1})
	counter.Get().Ticks++

	same := ecs.NewSingleton[TickCounter](storage)
	fmt.Println(same.Get().Ticks)

	// Output:
	// 2
}
