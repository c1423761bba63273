// SPDX-License-Identifier: MIT
// Package: praxis/selector
//
// builder.go — the six fragment operations and Stringify rendering.
//
// Contract (strict):
//   • Each operation derives a NEW Builder; the receiver is never mutated.
//   • Singleton kinds (element, id, pseudo-element) reject a second value
//     with ErrDuplicateFragment.
//   • Any kind rejects insertion while a LATER kind is present with
//     ErrOrderViolation (fixed order: element < id < class < attribute <
//     pseudo-class < pseudo-element).
//   • attribute is singleton-by-overwrite: a repeated Attr call replaces the
//     previous value and is NOT a violation (documented contract).
//   • A violating derivation records the first violation; all later
//     derivations propagate it untouched. Surface via Err() or Stringify().
//   • Never panics; sentinel errors only, wrapped with method context.
//
// Complexity: every operation and Stringify is O(f) in fragments present.

package selector

import (
	"fmt"
	"strings"
)

// Method tags for deterministic error context (no magic strings inline).
const (
	methodElement       = "Element"
	methodID            = "ID"
	methodClass         = "Class"
	methodAttr          = "Attr"
	methodPseudoClass   = "PseudoClass"
	methodPseudoElement = "PseudoElement"
)

// Literal separators of the rendered compound selector.
const (
	sepID            = "#"
	sepClass         = "."
	sepAttrOpen      = "["
	sepAttrClose     = "]"
	sepPseudoClass   = ":"
	sepPseudoElement = "::"
)

// ordered rejects the derivation when a fragment kind later than k is already
// present. Returns (b, false) untouched when the order holds.
func (b Builder) ordered(method string, k kind, token string) (Builder, bool) {
	if later, blocked := b.firstAfter(k); blocked {
		return b.fail(fmt.Errorf("%s(%q): %s present, cannot add %s: %w",
			method, token, later, k, ErrOrderViolation)), true
	}
	return b, false
}

// Element derives a Builder with the element fragment set to token.
// Fails with ErrDuplicateFragment when an element is already set, and with
// ErrOrderViolation when any later fragment kind is present.
func (b Builder) Element(token string) Builder {
	if b.err != nil {
		return b
	}
	if b.hasElement {
		return b.fail(fmt.Errorf("%s(%q): element already set: %w",
			methodElement, token, ErrDuplicateFragment))
	}
	if nb, failed := b.ordered(methodElement, kindElement, token); failed {
		return nb
	}
	nb := b.clone()
	nb.element = token
	nb.hasElement = true
	return nb
}

// ID derives a Builder with the id fragment set to token (rendered "#token").
// Fails with ErrDuplicateFragment when an id is already set, and with
// ErrOrderViolation when any later fragment kind is present.
func (b Builder) ID(token string) Builder {
	if b.err != nil {
		return b
	}
	if b.hasID {
		return b.fail(fmt.Errorf("%s(%q): id already set: %w",
			methodID, token, ErrDuplicateFragment))
	}
	if nb, failed := b.ordered(methodID, kindID, token); failed {
		return nb
	}
	nb := b.clone()
	nb.id = token
	nb.hasID = true
	return nb
}

// Class derives a Builder with token appended to the class list (rendered
// ".token"). Classes are an ordered multiset: repeated calls append, and
// duplicates are allowed. Fails with ErrOrderViolation when an attribute,
// pseudo-class or pseudo-element is present.
func (b Builder) Class(token string) Builder {
	if b.err != nil {
		return b
	}
	if nb, failed := b.ordered(methodClass, kindClass, token); failed {
		return nb
	}
	nb := b.clone()
	nb.classes = append(nb.classes, token)
	return nb
}

// Attr derives a Builder with the attribute selector set to token (rendered
// "[token]"; token is passed through raw). A repeated call OVERWRITES the
// previous attribute rather than appending — only one attribute selector is
// supported per compound selector. Fails with ErrOrderViolation when a
// pseudo-class or pseudo-element is present.
func (b Builder) Attr(token string) Builder {
	if b.err != nil {
		return b
	}
	if nb, failed := b.ordered(methodAttr, kindAttribute, token); failed {
		return nb
	}
	nb := b.clone()
	nb.attribute = token
	nb.hasAttribute = true
	return nb
}

// PseudoClass derives a Builder with token appended to the pseudo-class list
// (rendered ":token"). Pseudo-classes are an ordered multiset: repeated calls
// append. Fails with ErrOrderViolation when a pseudo-element is present.
func (b Builder) PseudoClass(token string) Builder {
	if b.err != nil {
		return b
	}
	if nb, failed := b.ordered(methodPseudoClass, kindPseudoClass, token); failed {
		return nb
	}
	nb := b.clone()
	nb.pseudoClasses = append(nb.pseudoClasses, token)
	return nb
}

// PseudoElement derives a Builder with the pseudo-element fragment set to
// token (rendered "::token"). Fails with ErrDuplicateFragment when a
// pseudo-element is already set. Pseudo-element is the last kind, so no
// ordering check applies.
func (b Builder) PseudoElement(token string) Builder {
	if b.err != nil {
		return b
	}
	if b.hasPseudoElem {
		return b.fail(fmt.Errorf("%s(%q): pseudo-element already set: %w",
			methodPseudoElement, token, ErrDuplicateFragment))
	}
	nb := b.clone()
	nb.pseudoElement = token
	nb.hasPseudoElem = true
	return nb
}

// Stringify renders the selector deterministically: element, "#id", each
// ".class" in insertion order, "[attribute]", each ":pseudo-class" in
// insertion order, "::pseudo-element" — adjacent, with no inserted
// whitespace. A chain carrying a violation renders nothing and returns the
// recorded error.
func (b Builder) Stringify() (string, error) {
	if b.err != nil {
		return "", b.err
	}

	var sb strings.Builder
	if b.hasElement {
		sb.WriteString(b.element)
	}
	if b.hasID {
		sb.WriteString(sepID)
		sb.WriteString(b.id)
	}
	for _, c := range b.classes {
		sb.WriteString(sepClass)
		sb.WriteString(c)
	}
	if b.hasAttribute {
		sb.WriteString(sepAttrOpen)
		sb.WriteString(b.attribute)
		sb.WriteString(sepAttrClose)
	}
	for _, pc := range b.pseudoClasses {
		sb.WriteString(sepPseudoClass)
		sb.WriteString(pc)
	}
	if b.hasPseudoElem {
		sb.WriteString(sepPseudoElement)
		sb.WriteString(b.pseudoElement)
	}
	return sb.String(), nil
}
