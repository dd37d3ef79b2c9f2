// SPDX-License-Identifier: MIT

package compat

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors for graph construction.
var (
	// ErrNodeNotFound indicates an operation referenced a node that is not live.
	ErrNodeNotFound = errors.New("compat: node not found")

	// ErrSelfLoop indicates an attempt to mark a node compatible with itself.
	ErrSelfLoop = errors.New("compat: self-loop not allowed")
)

// NodeID identifies a node of a Graph. IDs are assigned in increasing
// order and never reused.
type NodeID int

// Stats counts the steps taken by a Merger.
type Stats struct {
	// Merges is the number of A+B collapses; at most n-1 for n base nodes.
	Merges int

	// Emitted is the number of maximal fragments produced so far.
	Emitted int

	// Pruned is the number of stale partner references dropped.
	Pruned int
}

// Option configures a Merger.
type Option func(*Options)

// Options holds the Merger settings.
type Options struct {
	// RepairAdjacency rewires third nodes to the merged node.
	// false reproduces the stale-adjacency behavior.
	RepairAdjacency bool

	// Logger receives the merge trace at debug level; defaults to a no-op.
	Logger *zap.Logger
}

// DefaultOptions returns Options with stale adjacency and a no-op logger.
func DefaultOptions() Options {
	return Options{
		RepairAdjacency: false,
		Logger:          zap.NewNop(),
	}
}

// WithRepairAdjacency keeps third-node adjacency exact across merges.
func WithRepairAdjacency() Option {
	return func(o *Options) {
		o.RepairAdjacency = true
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
