// Package launch defines the boundary between the expansion engine and the
// external node runtime: the per-instance NodeDescriptor shape and the
// Emitter that hands an ordered descriptor list downstream. The JSON field
// names are a wire contract with the launcher and must not change.
package launch
