// SPDX-License-Identifier: MIT
// Package: praxis/selector
//
// parse.go — inverse of Stringify for a single compound selector.
//
// Contract:
//   • Parse tokenizes the input with the tdewolff CSS lexer and replays the
//     fragments through the Builder, so parsed input is validated by exactly
//     the same ordering and uniqueness rules as fluent construction.
//   • Scope is ONE compound selector: whitespace, combinators (">", "+", "~")
//     and selector groups (",") are rejected with ErrParse.
//   • Round-trip: for any valid Builder b, Parse(render(b)) rebuilds an
//     equivalent value, and ordering violations present in the input surface
//     as ErrOrderViolation / ErrDuplicateFragment, not ErrParse.
//
// Complexity: O(len(s)) time, O(f) space in fragments produced.

package selector

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Parse builds a Builder from the text of a single CSS compound selector.
// Errors:
//   - ErrParse for empty input, combinators, groups, or unlexable text;
//   - ErrOrderViolation / ErrDuplicateFragment when the input's fragments
//     violate the builder rules (e.g. "#a.b#c" or ".a[x].b").
func Parse(s string) (Builder, error) {
	l := css.NewLexer(parse.NewInputString(s))
	b := New()
	seen := false

	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			// End of input (io.EOF) or a lexer failure.
			if !errors.Is(l.Err(), io.EOF) {
				return Builder{}, parseErrf(s, "lex: %v", l.Err())
			}
			if !seen {
				return Builder{}, parseErrf(s, "empty input")
			}
			if err := b.Err(); err != nil {
				return Builder{}, err
			}
			return b, nil

		case css.WhitespaceToken:
			return Builder{}, parseErrf(s, "descendant combinator (whitespace) not supported")

		case css.CommaToken:
			return Builder{}, parseErrf(s, "selector group not supported")

		case css.IdentToken:
			b = b.Element(string(data))

		case css.HashToken:
			// HashToken data carries the leading '#'.
			b = b.ID(string(data[1:]))

		case css.DelimToken:
			switch data[0] {
			case '.':
				name, err := lexClassName(s, l)
				if err != nil {
					return Builder{}, err
				}
				b = b.Class(name)
			case '*':
				b = b.Element("*")
			case '>', '+', '~':
				return Builder{}, parseErrf(s, "combinator %q not supported", data)
			default:
				return Builder{}, parseErrf(s, "unexpected delimiter %q", data)
			}

		case css.ColonToken:
			token, isElement, err := lexPseudo(s, l)
			if err != nil {
				return Builder{}, err
			}
			if isElement {
				b = b.PseudoElement(token)
			} else {
				b = b.PseudoClass(token)
			}

		case css.LeftBracketToken:
			raw, err := lexAttr(s, l)
			if err != nil {
				return Builder{}, err
			}
			b = b.Attr(raw)

		default:
			return Builder{}, parseErrf(s, "unexpected %s token %q", tt, data)
		}
		seen = true
	}
}

// lexClassName consumes the identifier that must follow a '.' delimiter.
func lexClassName(s string, l *css.Lexer) (string, error) {
	tt, data := l.Next()
	if tt != css.IdentToken {
		return "", parseErrf(s, "expected class name after '.', got %s %q", tt, data)
	}
	return string(data), nil
}

// lexPseudo consumes a pseudo-class or pseudo-element after a ':' token.
// A second ':' marks a pseudo-element. Functional pseudo-classes such as
// nth-child(2n) are accumulated raw through the matching ')'.
func lexPseudo(s string, l *css.Lexer) (token string, isElement bool, err error) {
	tt, data := l.Next()
	if tt == css.ColonToken {
		isElement = true
		tt, data = l.Next()
	}

	switch tt {
	case css.IdentToken:
		return string(data), isElement, nil
	case css.FunctionToken:
		// FunctionToken data carries the name and the opening '('.
		var sb strings.Builder
		sb.Write(data)
		depth := 1
		for depth > 0 {
			tt, data = l.Next()
			switch tt {
			case css.ErrorToken:
				return "", false, parseErrf(s, "unterminated functional pseudo")
			case css.FunctionToken, css.LeftParenthesisToken:
				depth++
			case css.RightParenthesisToken:
				depth--
			}
			sb.Write(data)
		}
		return sb.String(), isElement, nil
	default:
		return "", false, parseErrf(s, "expected pseudo name after ':', got %s %q", tt, data)
	}
}

// lexAttr accumulates the raw attribute-selector text between '[' and ']'.
// The contents are kept verbatim, matching Attr's raw-token contract.
func lexAttr(s string, l *css.Lexer) (string, error) {
	var sb strings.Builder
	for {
		tt, data := l.Next()
		switch tt {
		case css.ErrorToken:
			return "", parseErrf(s, "unterminated attribute selector")
		case css.RightBracketToken:
			return sb.String(), nil
		default:
			sb.Write(data)
		}
	}
}

// parseErrf wraps a Parse failure with input context while preserving the
// ErrParse sentinel for errors.Is.
func parseErrf(input, format string, args ...any) error {
	return fmt.Errorf("Parse(%q): %s: %w", input, fmt.Sprintf(format, args...), ErrParse)
}
