// SPDX-License-Identifier: MIT
// Package: praxis/selector
//
// types.go — fragment kinds and the immutable Builder value.
//
// Design:
//   • kind is the closed enumeration of the six compound-selector fragment
//     kinds; its numeric order IS the required appearance order.
//   • Builder is a plain value: deriving copies the struct and deep-copies
//     the multi-valued slices, so two derivations of one base never alias.
//   • The first violation is recorded in the derived value and propagated by
//     every later derivation (see bfs-style option error carrying).

package selector

// kind enumerates the fragment kinds of a CSS compound selector.
// The declaration order is the fixed order in which kinds must appear.
type kind uint8

const (
	kindElement kind = iota
	kindID
	kindClass
	kindAttribute
	kindPseudoClass
	kindPseudoElement
)

// String returns the human-readable name of the fragment kind, used only in
// wrapped error context.
func (k kind) String() string {
	switch k {
	case kindElement:
		return "element"
	case kindID:
		return "id"
	case kindClass:
		return "class"
	case kindAttribute:
		return "attribute"
	case kindPseudoClass:
		return "pseudo-class"
	case kindPseudoElement:
		return "pseudo-element"
	default:
		return "unknown"
	}
}

// Builder is an immutable compound-selector value under construction.
//
// The zero value is a valid empty selector; New returns it for readability.
// Every method derives a NEW Builder from the receiver — the receiver itself
// is never mutated, which makes any Builder a safe branch point:
//
//	base := selector.New().Element("a")
//	b1 := base.Class("nav")     // independent of b2
//	b2 := base.ID("logo")       // independent of b1
type Builder struct {
	element       string
	hasElement    bool
	id            string
	hasID         bool
	classes       []string
	attribute     string
	hasAttribute  bool
	pseudoClasses []string
	pseudoElement string
	hasPseudoElem bool

	// First violation on this derivation chain; sticky once set.
	err error
}

// New returns an empty Builder. Equivalent to the zero value.
func New() Builder {
	return Builder{}
}

// Err reports the first violation recorded on this derivation chain, or nil.
func (b Builder) Err() error {
	return b.err
}

// clone returns a structural copy of b with the multi-valued slices copied,
// so appends on the derived value cannot leak into the receiver's backing
// arrays (branch safety).
func (b Builder) clone() Builder {
	nb := b
	if len(b.classes) > 0 {
		nb.classes = append(make([]string, 0, len(b.classes)+1), b.classes...)
	}
	if len(b.pseudoClasses) > 0 {
		nb.pseudoClasses = append(make([]string, 0, len(b.pseudoClasses)+1), b.pseudoClasses...)
	}
	return nb
}

// fail derives a copy of b carrying err as its sticky violation.
func (b Builder) fail(err error) Builder {
	nb := b.clone()
	nb.err = err
	return nb
}

// has reports whether at least one fragment of kind k is present.
func (b Builder) has(k kind) bool {
	switch k {
	case kindElement:
		return b.hasElement
	case kindID:
		return b.hasID
	case kindClass:
		return len(b.classes) > 0
	case kindAttribute:
		return b.hasAttribute
	case kindPseudoClass:
		return len(b.pseudoClasses) > 0
	case kindPseudoElement:
		return b.hasPseudoElem
	default:
		return false
	}
}

// firstAfter returns the lowest kind strictly after k that is present.
// The boolean is false when no later kind is present.
func (b Builder) firstAfter(k kind) (kind, bool) {
	for later := k + 1; later <= kindPseudoElement; later++ {
		if b.has(later) {
			return later, true
		}
	}
	return 0, false
}
