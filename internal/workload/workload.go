// SPDX-License-Identifier: MIT

// Package workload reads and writes the YAML files that describe a list of
// base fragments and an optional coverage requirement:
//
//	fragments:
//	  - sources: [a1]
//	    labels: [a1]
//	  - sources: [a1, a2]
//	    labels: [a12]
//	mustcover: [a1, a2]
package workload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fragmerge/fragment"
)

// ErrNoFragments indicates a workload without any fragment.
var ErrNoFragments = errors.New("workload: no fragments")

// FragmentSpec is one base fragment as written in the file.
type FragmentSpec struct {
	Sources []string `yaml:"sources"`
	Labels  []string `yaml:"labels,omitempty"`
}

// Workload is the decoded file.
type Workload struct {
	Fragments []FragmentSpec `yaml:"fragments"`
	// MustCover, when non-empty, replaces the default requirement (the
	// union of all sources).
	MustCover []string `yaml:"mustcover,omitempty"`
}

// Load reads and parses the workload at path.
func Load(path string) (*Workload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workload: %w", err)
	}

	return Parse(data)
}

// Parse decodes a workload document.
func Parse(data []byte) (*Workload, error) {
	var w Workload
	if err := yaml.Unmarshal(data, &w); err != nil {
		return nil, fmt.Errorf("failed to parse workload: %w", err)
	}
	if len(w.Fragments) == 0 {
		return nil, ErrNoFragments
	}

	return &w, nil
}

// FromFragments converts frags into a workload. Sources and labels are
// sorted so the written file is stable.
func FromFragments(frags []fragment.Fragment[string]) *Workload {
	w := &Workload{Fragments: make([]FragmentSpec, 0, len(frags))}
	for _, f := range frags {
		src, lbl := f.Sources(), f.Labels()
		sort.Strings(src)
		sort.Strings(lbl)
		w.Fragments = append(w.Fragments, FragmentSpec{Sources: src, Labels: lbl})
	}

	return w
}

// Base returns the fragments in file order.
func (w *Workload) Base() []fragment.Fragment[string] {
	out := make([]fragment.Fragment[string], 0, len(w.Fragments))
	for _, spec := range w.Fragments {
		out = append(out, fragment.New(spec.Sources, spec.Labels))
	}

	return out
}

// HasMustCover reports whether the file overrides the default requirement.
func (w *Workload) HasMustCover() bool {
	return len(w.MustCover) > 0
}

// Write encodes w as YAML to out.
func (w *Workload) Write(out io.Writer) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(w); err != nil {
		return fmt.Errorf("failed to encode workload: %w", err)
	}

	return enc.Close()
}
