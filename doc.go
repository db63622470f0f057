// Package toolman is a schema compiler front end for the Toolman interface
// description language.
//
// Toolman source files declare user types (structs, enums, tagged unions),
// HTTP API groups, compile-time options, and cross-file imports. This module
// implements the front end: lexing is assumed to be handled by an external
// parser generator (modelled by the cst package), but the semantic layer on
// top of it — the type model, the two-phase declare/resolve walker, the
// module/import subsystem, the builder state machines, and the diagnostic
// model — lives here.
//
// # Overview
//
// The front end is organized as a pipeline of small packages:
//
//   - location: source ranges attached to every declared entity
//   - diagnostic: the multi-error accumulation model (fatal/warning/note)
//   - tmerrors: operational failures (file-not-found, invariant violations)
//   - tmtype: the Type sum (Primitive/List/Map/Struct/Enum/Oneof)
//   - tmoption: typed build options
//   - scope: name-indexed declare/lookup tables, parameterized over entity kind
//   - cst: the minimal listener-dispatch contract the external parser satisfies
//   - builder: the streaming CST-to-struct assembly state machines
//   - imports: the import-statement resolver
//   - walker: the declare-phase and ref-phase listeners
//   - compiler: the module cache and the (Document, diagnostics) driver
//   - document: the resolved, ordered output of a successful compile
//   - generator: the dispatch contract consumed by out-of-tree code generators
//
// # Quick start
//
//	c := compiler.New(parse) // parse is the host's compiler.Parser
//	doc, diags, err := c.Compile("api.tm")
//	if err != nil {
//	    log.Fatal(err) // operational failure: bad path, corrupt CST, etc.
//	}
//	for _, d := range diags {
//	    fmt.Println(d.String())
//	}
//	if diagnostic.HasFatal(diags) {
//	    os.Exit(1)
//	}
//	// doc is a best-effort Document even when diags has fatal entries.
//
// # Two-phase compilation
//
// A driver receives a root file path, invokes the external parser to obtain
// a CST, then runs the declare-phase walker (which may recursively compile
// imported files through the module cache), then runs the ref-phase walker
// on the same CST with the scopes the first phase produced, merges
// diagnostics from both phases, and returns the Document.
//
// # Non-goals
//
// This module does not evaluate the DSL at runtime, does not emit any
// binary format, performs no optimisation passes, and does not support
// concurrent compilation of a single Compiler — one compile call completes
// before another should begin on the same instance.
package toolman
