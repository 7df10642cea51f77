// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - The round limit replaces the historical package-global tolerance: it is
//     threaded explicitly through every reduction entry point so that
//     concurrent computations with different tolerances cannot interfere.
//   - Negligibility: any magnitude below 10^-limit is treated as zero.
//   - Snapping: any value within 10^-limit of its nearest integer is replaced
//     by that integer. Applied after elimination passes, products, quotients,
//     and inside determinant/inverse to subdue floating-point noise.
package matrix

// ---------- Defaults (single source of truth) ----------

// Numeric policy.
const (
	// DefaultRoundLimit is the number of decimal places after which figures
	// are considered insignificant. Any magnitude below 10^-DefaultRoundLimit
	// is treated as zero; anything that close to an integer is snapped to it.
	DefaultRoundLimit = 12

	// maxRoundLimit bounds the limit so 10^-limit stays representable with
	// headroom in the decimal scalar.
	maxRoundLimit = 100
)

// ---------- Internal panic messages (no magic strings) ----------

const panicRoundLimitInvalid = "matrix: WithRoundLimit: limit must be in [0, 100]"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are intentionally unexported to prevent external mutation; public
// entry points accept `...Option` and internally resolve them via
// gatherOptions.
type Options struct {
	roundLimit int // decimal places of significance; DefaultRoundLimit
}

// WithRoundLimit sets the tolerance, in decimal places, used by the reduction
// engine and the arithmetic kernels.
//
// Implementation:
//   - Stage 1: validate limit is within [0, maxRoundLimit].
//   - Stage 2: return a setter that writes limit into Options.
//
// Errors:
//   - Panics with a stable message when the limit is out of range.
//
// Complexity: O(1).
//
// Notes:
//   - Larger limits demand more significance before a value is considered
//     non-zero; smaller limits snap more aggressively. Use judiciously.
func WithRoundLimit(limit int) Option {
	if limit < 0 || limit > maxRoundLimit {
		panic(panicRoundLimitInvalid)
	}

	// Assign validated limit
	return func(o *Options) { o.roundLimit = limit }
}

// defaultOptions returns the canonical zero-value configuration.
// MUST reflect the documented Default* constants above.
func defaultOptions() Options {
	return Options{roundLimit: DefaultRoundLimit}
}

// gatherOptions applies opts over the defaults and returns the effective
// configuration. Internal single entry point for option resolution.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions() // start from documented defaults
	var opt Option
	for _, opt = range opts {
		opt(&o) // apply each setter in order
	}

	return o
}
