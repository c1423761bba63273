package selector_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/praxis/selector"
)

// ExampleBuilder demonstrates the canonical fluent chain: id plus two
// classes, rendered with the literal "#" and "." separators.
func ExampleBuilder() {
	s, err := selector.New().
		ID("main").
		Class("container").
		Class("editable").
		Stringify()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(s)
	// Output:
	// #main.container.editable
}

// ExampleBuilder_attr demonstrates an element with a raw attribute selector
// and a pseudo-class.
func ExampleBuilder_attr() {
	s, _ := selector.New().
		Element("a").
		Attr(`href$=".png"`).
		PseudoClass("focus").
		Stringify()
	fmt.Println(s)
	// Output:
	// a[href$=".png"]:focus
}

// ExampleBuilder_branching demonstrates that a partially built selector can
// branch into several independent complete selectors.
func ExampleBuilder_branching() {
	base := selector.New().Element("a").Class("nav")

	hover, _ := base.PseudoClass("hover").Stringify()
	muted, _ := base.Class("muted").Stringify()
	root, _ := base.Stringify()

	fmt.Println(hover)
	fmt.Println(muted)
	fmt.Println(root)
	// Output:
	// a.nav:hover
	// a.nav.muted
	// a.nav
}

// ExampleBuilder_orderViolation demonstrates how a violation sticks to the
// chain and is matched with errors.Is.
func ExampleBuilder_orderViolation() {
	_, err := selector.New().Class("container").Element("div").Stringify()
	fmt.Println(errors.Is(err, selector.ErrOrderViolation))
	// Output:
	// true
}

// ExampleCombine demonstrates joining two selectors with the child
// combinator; the result is itself combinable.
func ExampleCombine() {
	item := selector.New().Element("li")
	list := selector.New().Element("ul").Class("menu")

	c, _ := selector.Combine(list, selector.Child, item)
	s, _ := c.Stringify()
	fmt.Println(s)
	// Output:
	// ul.menu > li
}

// ExampleParse demonstrates rebuilding a Builder from selector text and
// deriving from it.
func ExampleParse() {
	b, _ := selector.Parse("a.nav")
	s, _ := b.PseudoClass("hover").Stringify()
	fmt.Println(s)
	// Output:
	// a.nav:hover
}
