// SPDX-License-Identifier: MIT
// Package: praxis/selector
//
// Package selector builds CSS compound selectors through a fluent, immutable
// Builder that enforces the fixed fragment order of a compound selector.
//
// 🚀 What is selector?
//
//	A copy-on-derive builder for the six fragment kinds of a CSS compound
//	selector, rendered with their literal separators:
//		• element        — "a", "div", ...         (at most one)
//		• id             — "#main"                 (at most one)
//		• class          — ".container.editable"   (any number, in call order)
//		• attribute      — `[href$=".png"]`        (at most one, overwritten)
//		• pseudo-class   — ":hover:focus"          (any number, in call order)
//		• pseudo-element — "::before"              (at most one)
//
// ✨ Key guarantees:
//
//   - Fixed order — fragment kinds must be added in the order above; adding a
//     kind while a later kind is present derives a value carrying
//     ErrOrderViolation.
//   - Uniqueness — element, id and pseudo-element are singletons; a second
//     value derives a value carrying ErrDuplicateFragment.
//   - Immutability — every call returns a new Builder; the receiver is never
//     mutated, so a partially built selector is a safe branch point for many
//     independent derivations.
//   - No panics — violations stick to the derived chain and surface from
//     Err() / Stringify(); branch on them with errors.Is.
//
// ⚙️ Usage:
//
//	sel, err := selector.New().
//		ID("main").
//		Class("container").
//		Class("editable").
//		Stringify()
//	// sel == "#main.container.editable"
//
// Two finished selectors combine with a verbatim combinator token:
//
//	c, _ := selector.Combine(left, "+", right)
//	s, _ := c.Stringify() // "<left> + <right>"
//
// Parse is the inverse of Stringify for a single compound selector: it
// tokenizes the input with the tdewolff CSS lexer and replays the fragments
// through the Builder, inheriting the same ordering and uniqueness checks.
//
// Fully synchronous, no shared state, no I/O. Complexity of every operation
// is O(f) in the number of fragments already present.
package selector
