// Package praxis is a collection of small, isolated correctness exercises —
// each one a self-contained package with a single, fully specified behavior.
//
// 🚀 What is praxis?
//
//	A pure-Go playground of single-call, synchronous transformations:
//		• selector/  — fluent CSS compound-selector builder with ordering rules
//		• rect/      — rectangle factory with a live, recomputed area accessor
//		• jsoncodec/ — JSON serialize + positional, key-ordered deserialize
//		• dates/     — RFC 2822 / ISO 8601 parsing, leap years, timespans,
//		               clock-hand angles
//
// ✨ Why choose praxis?
//
//   - Beginner-friendly – minimal APIs, clear, intuitive naming
//   - Correctness-only – no I/O, no persistence, no concurrency, no globals
//   - Pure values – builders derive new values; nothing is mutated in place
//   - Strict errors – sentinel errors everywhere, matched with errors.Is
//
// The packages never interact with each other: every exercise stands alone
// and can be read, tested and reused in isolation. The structurally richest
// piece is selector/, whose builder enforces the fixed fragment order of a
// CSS compound selector; everything else is a leaf utility.
//
// Dive into each package's doc.go and example_test.go for walkthroughs.
//
//	go get github.com/katalvlaran/praxis
package praxis
