// SPDX-License-Identifier: MIT
// Package: praxis/selector
//
// errors.go — sentinel errors for the selector package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using `%w`.
//   • No panics at runtime: a violating derivation carries its error forward
//     and surfaces it from Err() / Stringify().

package selector

import "errors"

// ErrDuplicateFragment indicates that a singleton fragment kind (element, id
// or pseudo-element) was set a second time on the same derivation chain.
// The chain cannot proceed; restart from a valid prefix.
// Usage: if errors.Is(err, ErrDuplicateFragment) { /* drop the second call */ }.
var ErrDuplicateFragment = errors.New("selector: duplicate singleton fragment")

// ErrOrderViolation indicates that a fragment kind was added while a fragment
// of a later kind is already present. Kinds must appear in the fixed order
// element, id, class, attribute, pseudo-class, pseudo-element.
// Usage: if errors.Is(err, ErrOrderViolation) { /* reorder the calls */ }.
var ErrOrderViolation = errors.New("selector: fragment out of order")

// ErrParse indicates that Parse received text that is not a single CSS
// compound selector (empty input, combinators, selector groups, or tokens the
// lexer rejects).
// Usage: if errors.Is(err, ErrParse) { /* input is not a compound selector */ }.
var ErrParse = errors.New("selector: not a compound selector")

// ErrNilSelector indicates that Combine received a nil renderable side.
// Usage: if errors.Is(err, ErrNilSelector) { /* pass two built selectors */ }.
var ErrNilSelector = errors.New("selector: nil selector side")
