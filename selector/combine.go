// SPDX-License-Identifier: MIT
// Package: praxis/selector
//
// combine.go — binary combination of two rendered selectors.
//
// Contract:
//   • Combine renders both sides independently via their own Stringify and
//     joins them as "<left> <combinator> <right>" (single spaces).
//   • The combinator token is passed through VERBATIM — it is not validated
//     against the CSS combinator set (" ", ">", "+", "~"); this is a
//     documented contract, not an oversight.
//   • A side carrying a violation propagates its error from Combine.
//   • Combined implements Renderable, so combinations nest.

package selector

import "fmt"

// Renderable is any value that can render itself to a CSS selector string.
// Builder and Combined both implement it.
type Renderable interface {
	// Stringify returns the rendered selector, or the violation recorded on
	// the underlying derivation chain.
	Stringify() (string, error)
}

// Conventional CSS combinator tokens, for readability at call sites.
// Combine accepts ANY token; these are merely the usual ones.
const (
	Descendant = " "
	Child      = ">"
	Adjacent   = "+"
	Sibling    = "~"
)

// Combined is an immutable, already-rendered combination of two selectors.
type Combined struct {
	left       string
	combinator string
	right      string
}

// Combine renders left and right and returns their combination with the
// given combinator token. Errors:
//   - ErrNilSelector when either side is nil;
//   - the side's own recorded violation when its Stringify fails.
func Combine(left Renderable, combinator string, right Renderable) (Combined, error) {
	if left == nil || right == nil {
		return Combined{}, fmt.Errorf("Combine(%q): %w", combinator, ErrNilSelector)
	}
	l, err := left.Stringify()
	if err != nil {
		return Combined{}, fmt.Errorf("Combine(%q): left: %w", combinator, err)
	}
	r, err := right.Stringify()
	if err != nil {
		return Combined{}, fmt.Errorf("Combine(%q): right: %w", combinator, err)
	}
	return Combined{left: l, combinator: combinator, right: r}, nil
}

// Stringify renders "<left> <combinator> <right>". It never fails: both
// sides were rendered when the Combined was built.
func (c Combined) Stringify() (string, error) {
	return c.left + " " + c.combinator + " " + c.right, nil
}
