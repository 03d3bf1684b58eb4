// Package lexer turns source text into the token slices consumed by descent parsers.
//
// The only implementation is based on text/scanner and produces Go-like tokens.
package lexer
