// SPDX-License-Identifier: MIT
package pmfg

// Option adjusts how Build scans the candidate sequence.
// The acceptance criterion itself is never configurable.
type Option func(*options)

type options struct {
	spanningFirst bool
	verifyFinal   bool
}

// WithSpanningFirst moves the edges of a maximum-weight spanning forest to
// the front of the scan, so connectivity is established before the bound
// starts filling with dense-cluster edges. Relative order within each group
// is preserved, and every candidate is still tested under the same rule, so
// the result remains planar and deterministic; only the commit order (and,
// on ties of acceptance, the committed set) may differ from the plain scan.
func WithSpanningFirst() Option {
	return func(o *options) { o.spanningFirst = true }
}

// WithVerifyFinal re-checks the finished graph with the static planarity
// test after the scan completes. The check is redundant when the oracle is
// correct; it exists as a cheap cross-validation for tests and the CLI.
func WithVerifyFinal() Option {
	return func(o *options) { o.verifyFinal = true }
}

func gatherOptions(opts ...Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
