// Package tablefunc exposes the TPC-H relations as table functions:
// callable with literal arguments, returning a fully materialized,
// scan-only table provider suitable for registration in a host query
// engine's catalog.
package tablefunc

import "github.com/pingcap/errors"

// Error classes. Collaborator failures (generator, catalog, writer)
// are propagated traced but unclassified.
var (
	// ErrInvalidArgument covers wrong arity, wrong literal type, and
	// part/num_parts coupling or sign violations.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInternal marks consistency violations that should be
	// unreachable, like an adapter batch disagreeing with its own
	// declared schema.
	ErrInternal = errors.New("internal error")
)

func invalidArgf(format string, args ...any) error {
	return errors.Annotatef(ErrInvalidArgument, format, args...)
}

func internalErrf(format string, args ...any) error {
	return errors.Annotatef(ErrInternal, format, args...)
}
