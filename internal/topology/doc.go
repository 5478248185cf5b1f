// Package topology performs the optional strict lint over a validated fleet
// definition: every replicated publisher topic must have a matching
// subscriber, every subscriber must name a topic some node actually
// publishes, and a node that is neither root nor terminal must do both.
//
// None of this is required for expansion: subscriber source references are
// opaque labels as far as the descriptor contract goes, which is why the
// lint sits behind its own entry point instead of inside validate.
package topology
