package channel_test

import (
	"fmt"
	"math/rand"

	"github.com/jake-scott/go-enumeration/iter/channel"
)

func ExampleIterator() {
	// will always return the same output
	rand := rand.New(rand.NewSource(123))

	ch := make(chan int)
	go func() {
		for i := 0; i < 5; i++ {
			r := rand.Int() % 100

			ch <- r
		}

		close(ch)
	}()

	iter := channel.New[int](ch)
	iter.Next()
	iter.Next()

	replay := iter.Clone()
	for v, ok := iter.Next(); ok; v, ok = iter.Next() {
		fmt.Printf("item: %d\n", v)
	}
	fmt.Println("replay:", replay.Count())

	// output:
	// item: 43
	// item: 83
	// item: 87
	// replay: 3
}
