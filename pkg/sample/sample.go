// SPDX-License-Identifier: Apache-2.0

// Package sample computes descriptive statistics (mean, trimmed mean, median,
// percentile, variance, standard deviation, coefficient of variation, range)
// over an immutable numeric sample. A Sample is frozen at construction and
// every statistic is a pure read, so results are reproducible and samples can
// be shared across goroutines without locking.
package sample

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Sample is an immutable, ascending-sorted numeric dataset. It always owns
// its backing storage and is never empty.
type Sample struct {
	values []float64
}

// New builds a Sample from an ordered sequence of values. The input is
// copied, never aliased, and sorted ascending once here; later mutations of
// the argument do not affect the sample.
func New(values []float64) (*Sample, error) {
	if values == nil {
		return nil, fmt.Errorf("sample: nil value slice: %w", ErrInvalidInput)
	}
	return newSample(slices.Clone(values))
}

// NewFromPointers builds a Sample from a sequence of boxed values. A nil
// element fails construction.
func NewFromPointers(values []*float64) (*Sample, error) {
	if values == nil {
		return nil, fmt.Errorf("sample: nil pointer slice: %w", ErrInvalidInput)
	}
	owned := make([]float64, 0, len(values))
	for i, v := range values {
		if v == nil {
			return nil, fmt.Errorf("sample: nil element at index %d: %w", i, ErrInvalidInput)
		}
		owned = append(owned, *v)
	}
	return newSample(owned)
}

// NewFromSeq builds a Sample from any ordered, duplicate-preserving sequence
// of values.
func NewFromSeq(values iter.Seq[float64]) (*Sample, error) {
	if values == nil {
		return nil, fmt.Errorf("sample: nil sequence: %w", ErrInvalidInput)
	}
	var owned []float64
	for v := range values {
		owned = append(owned, v)
	}
	return newSample(owned)
}

// NewFromSet builds a Sample from a duplicate-free unordered collection. The
// arbitrary map iteration order never leaks, since construction sorts.
func NewFromSet(values map[float64]struct{}) (*Sample, error) {
	if values == nil {
		return nil, fmt.Errorf("sample: nil set: %w", ErrInvalidInput)
	}
	owned := make([]float64, 0, len(values))
	for v := range values {
		owned = append(owned, v)
	}
	return newSample(owned)
}

// newSample takes ownership of owned; callers must not retain it.
func newSample(owned []float64) (*Sample, error) {
	if len(owned) == 0 {
		return nil, fmt.Errorf("sample: empty input: %w", ErrInvalidInput)
	}
	slices.Sort(owned)
	return &Sample{values: owned}, nil
}

// Len returns the number of values in the sample.
func (s *Sample) Len() int {
	return len(s.values)
}

// Values returns a copy of the sorted values. Mutating the returned slice
// does not affect the sample.
func (s *Sample) Values() []float64 {
	return slices.Clone(s.values)
}

// String renders the sorted values as "[v0,v1,...,vn-1]". The form is meant
// for diagnostics and logging, not as a machine-parsed wire format.
func (s *Sample) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range s.values {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	sb.WriteByte(']')
	return sb.String()
}
