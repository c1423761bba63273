package rect_test

import (
	"fmt"

	"github.com/katalvlaran/praxis/rect"
)

// ExampleRect_Area demonstrates that the area tracks field mutation.
func ExampleRect_Area() {
	r := rect.New(4, 5)
	fmt.Println(r.Area())

	r.Width = 10
	fmt.Println(r.Area())
	// Output:
	// 20
	// 50
}
