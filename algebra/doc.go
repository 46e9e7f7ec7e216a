// Package algebra implements a symbolic algebra of nested bracket containers.
//
// A [Form] is either a [*Container] of some [Kind] holding an ordered
// sequence of child forms, or a [*Variable] named by one uppercase letter.
// Forms are immutable once built.
//
// # Notation
//
// Informal grammar of the textual notation:
//
//	Forms     → Form*
//	Form      → Container | Unit | J | Count | Variable
//	Container → '(' Forms ')' | '[' Forms ']' | '<' Forms '>'
//	Unit      → 'o'                   shorthand for ()
//	J         → 'J'                   shorthand for [<()>]
//	Count     → '2' … '9'             that many units
//	Variable  → 'A' … 'Z' except 'J'
//
// Whitespace between tokens is ignored. [ParseString] always returns an
// implicit container (no brackets) holding the top-level sequence, even for
// a single form; [Unwrap] removes it.
//
// # Canonical shapes
//
//	void          (nothing)     Void
//	unit          ()            Unit
//	square        []            SquareUnit
//	diamond       <>            Diamond
//	J             [<()>]        J
//	div-by-zero   (<[]>)        DivByZero
//	n             ()()…()       CountingNumber
//	a × b         ([a][b])      Product
//
// The numeric readings of these shapes are a naming convention only; nothing
// in this package evaluates a form.
//
// # Rendering
//
// [Render] is the structural inverse of parsing. An empty container renders
// a single space between its brackets, so "()" renders as "( )" and void
// renders as " ".
//
//	f, _ := algebra.ParseString(ctx, "(<[oo]>)")
//	fmt.Println(algebra.Render(algebra.Unwrap(f))) // (<[( )( )]>)
//
// Parsing, rendering, and comparison walk forms with explicit stacks, so
// nesting depth is limited by memory rather than by the call stack.
package algebra
