package svg_test

import (
	"fmt"

	"github.com/matzehuels/wordmark/pkg/svg"
)

func ExampleNode_String() {
	g := svg.Group(svg.Translate(10, 20, 0.5))
	g.Append(
		svg.Rect(0, 0, 40, 8, svg.A("fill", "#e30613")),
		svg.Text("R&D <Labs>", svg.A("class", "w")),
	)
	fmt.Println(g)
	// Output:
	// <g transform="translate(10 20) scale(0.5)">
	//   <rect x="0" y="0" width="40" height="8" fill="#e30613"/>
	//   <text class="w">R&amp;D &lt;Labs&gt;</text>
	// </g>
}

func ExampleNum() {
	fmt.Println(svg.Num(1), svg.Num(0.7), svg.Num(12.25))
	// Output: 1 0.7 12.25
}
