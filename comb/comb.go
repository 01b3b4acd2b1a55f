// Package comb implements combinators for push parser callbacks.
//
// Combinators read no bytes themselves: they own child callbacks and
// route byte chunks, results, and outcomes between them. Each
// combinator keeps its progress in its own state, so a composed graph
// suspends and resumes across chunk boundaries like any primitive.
//
// All constructors return nil when given a nil child, so only the
// outermost constructor result needs checking.
package comb
