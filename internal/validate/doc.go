// Package validate checks a loaded fleet definition against the structural
// rules a launchable config must satisfy. Validation is the gate between
// loading and expansion: a successful check yields a Validated value, which
// is the only currency the expander accepts, so an unvalidated config can
// never reach expansion by construction.
package validate
