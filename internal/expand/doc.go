// Package expand turns a validated fleet definition into the ordered list
// of launch-ready node descriptors for one environment. Expansion is a pure
// function of its inputs: no I/O, no retained state, deterministic output.
package expand
