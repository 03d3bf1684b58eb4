// Package descent is a minimal kit of combinators for writing backtracking recursive-descent
// parsers over any token slice.
//
// A Parser receives the full token slice and a position, and returns the fragment it produced
// along with the position after the tokens it consumed. Position is threaded explicitly, so a
// failed attempt never moves the caller's cursor and the next alternative can be tried from the
// same point.
//
// The combinators are:
//
//   - Combine / CombineSyntax: ordered alternation, first match wins.
//   - Many: zero or more repetitions.
//   - ManyDelimited: zero or more repetitions separated by a delimiter token.
//   - Maybe: zero or one.
//
// Each has a constructor form (OneOf, ManyOf, DelimitedBy, Opt) returning a Parser, so that
// combinators nest. Lift and As adapt functions returning concrete values into Parsers of a
// shared fragment type.
//
// Here's a grammar for comma-separated integers:
//
//	type Tok struct {
//	    Kind  string
//	    Value string
//	}
//
//	comma := Tok{Kind: "Punct", Value: ","}
//
//	number := descent.Lift(func(tokens []Tok, pos int) (string, int, error) {
//	    if pos < len(tokens) && tokens[pos].Kind == "Int" {
//	        return tokens[pos].Value, pos + 1, nil
//	    }
//	    return "", pos, descent.Errorf(pos, "expected integer")
//	}, func(s string) int { n, _ := strconv.Atoi(s); return n })
//
//	values, next := descent.ManyDelimited(tokens, 0, number, comma)
//
// Grammars that need to share mutable state between rules, such as a symbol table, should use
// the parallel combinators in the stateful package.
package descent
