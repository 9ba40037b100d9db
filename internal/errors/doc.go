// Package errors provides structured, actionable error messages for domgen.
//
// Every failure the lowering can report carries a registered code, a
// category, the source location of the offending literal (as reported by the
// markup parser) and, where possible, a hint:
//
//	err := errors.New("E102").
//	    WithLocation("views/card.gsx", 12, 5).
//	    WithDetailf("address [0 3] has no node at index 3").
//	    WithSuggestion("Regenerate the document with the markup parser")
//
//	fmt.Println(err.Format())
//
// Lowering reports every failing literal, so most callers receive errors
// joined with Join. Codes, Compact and Reports flatten them into codes,
// one-line messages and JSON reports respectively.
//
// # Error Categories
//
//   - compile: malformed input (unknown literal kinds, unresolvable addresses)
//   - config: invalid settings or unsupported setting combinations
//   - cli: command-line usage
//   - io: output sinks
package errors
