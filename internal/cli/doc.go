// Package cli wires the solver's library packages (parse, search,
// render) into a runnable command, shared by the cmd/infiniloop and
// cmd/infiniloopc binaries. It owns process-level concerns only:
// flag parsing (cobra/pflag), structured logging (zerolog, colorized
// when stderr is a terminal per golang.org/x/term), stdin/stdout
// plumbing, and exit-code selection. The puzzle semantics live entirely
// in the sibling packages; this package never reimplements them.
package cli
