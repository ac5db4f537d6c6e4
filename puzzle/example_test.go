package puzzle_test

import (
	"fmt"

	"github.com/andy327/flow-solver/puzzle"
)

// ExampleParse reads an ASCII board and reports its shape.
func ExampleParse() {
	p, err := puzzle.Parse("0....\n.....\n..1..\n213.0\n3...2\n")
	if err != nil {
		fmt.Println("parse:", err)
		return
	}

	fmt.Printf("%dx%d board, %d colors\n", p.Rows(), p.Cols(), len(p.Colors()))
	eps, _ := p.EndpointsOf('1')
	fmt.Println("color 1 endpoints:", eps[0], eps[1])

	// Output:
	// 5x5 board, 4 colors
	// color 1 endpoints: (2,2) (3,1)
}
