// Package lang provides the scanner, parser and tree-walking evaluator for
// MiniLang, a tiny language of let-bindings, print statements and integer
// addition.
//
// Pipeline: source → Scan → Parse → Run → output lines
package lang
