// SPDX-License-Identifier: MIT

package closure

import (
	"context"
	"errors"

	"go.uber.org/zap"
)

// DefaultMaxFragments bounds the working list when no WithMaxFragments
// option is given.
const DefaultMaxFragments = 1 << 20

// ErrCapacityExceeded indicates the closure grew past the configured
// MaxFragments. The run is aborted; nothing is returned.
var ErrCapacityExceeded = errors.New("closure: fragment capacity exceeded")

// Option configures a closure run.
type Option func(*Options)

// Options holds the parameters of a closure run.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// MaxFragments caps the length of the working list, base included.
	MaxFragments int

	// Logger receives the merge trace at debug level; defaults to a no-op.
	Logger *zap.Logger

	// OnMerge, if non-nil, is called after each merge with the positions of
	// the two operands and the length of the list before the append.
	// Returning an error aborts the run with that error.
	OnMerge func(i, j, merged int) error
}

// DefaultOptions returns Options with:
//   - Background context
//   - MaxFragments = DefaultMaxFragments
//   - no-op logger
//   - no merge hook
func DefaultOptions() Options {
	return Options{
		Ctx:          context.Background(),
		MaxFragments: DefaultMaxFragments,
		Logger:       zap.NewNop(),
		OnMerge:      nil,
	}
}

// WithContext sets the context checked between outer iterations.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxFragments sets the working-list capacity. Panics if n < 1.
func WithMaxFragments(n int) Option {
	if n < 1 {
		panic("closure: WithMaxFragments(n<1)")
	}
	return func(o *Options) {
		o.MaxFragments = n
	}
}

// WithLogger installs a logger for the merge trace. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnMerge installs fn as the per-merge hook.
func WithOnMerge(fn func(i, j, merged int) error) Option {
	return func(o *Options) {
		o.OnMerge = fn
	}
}
