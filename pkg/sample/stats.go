// SPDX-License-Identifier: Apache-2.0

package sample

import (
	"fmt"
	"math"
)

// maxTrimFraction caps TrimmedMeanByFraction so trimming always leaves data.
const maxTrimFraction = 0.49

// Mean returns the arithmetic mean.
func (s *Sample) Mean() float64 {
	var sum float64
	for _, v := range s.values {
		sum += v
	}
	return sum / float64(len(s.values))
}

// TrimmedMeanByCount returns the mean with the k smallest and k largest
// values excluded. It fails when 2k >= n, since no data would remain.
func (s *Sample) TrimmedMeanByCount(k int) (float64, error) {
	n := len(s.values)
	if k < 0 {
		return 0, fmt.Errorf("sample: negative trim count %d: %w", k, ErrInvalidInput)
	}
	if 2*k >= n {
		return 0, fmt.Errorf("sample: trimming %d values from each end of %d leaves no data: %w", k, n, ErrInvalidInput)
	}
	return s.trimmedMean(k), nil
}

// TrimmedMeanByFraction returns the mean with floor(n*p) values excluded
// from each end. p is clamped to at most 0.49, which guarantees data
// remains, and p <= 0 means no trimming, so out-of-range fractions never
// fail.
func (s *Sample) TrimmedMeanByFraction(p float64) float64 {
	if p <= 0 {
		return s.trimmedMean(0)
	}
	p = math.Min(p, maxTrimFraction)
	k := int(math.Floor(float64(len(s.values)) * p))
	return s.trimmedMean(k)
}

// trimmedMean averages the sorted values over [k, n-k). Callers guarantee
// 2k < n.
func (s *Sample) trimmedMean(k int) float64 {
	n := len(s.values)
	var sum float64
	for _, v := range s.values[k : n-k] {
		sum += v
	}
	return sum / float64(n-2*k)
}

// Median returns the 50th percentile by the direct order-statistic rule: the
// middle element for odd n, the average of the two elements surrounding the
// middle for even n.
func (s *Sample) Median() float64 {
	n := len(s.values)
	if n == 1 {
		return s.values[0]
	}
	mid := n / 2
	if n%2 > 0 {
		return s.values[mid]
	}
	return (s.values[mid] + s.values[mid-1]) / 2
}

// Percentile returns the p-th order statistic. p >= 1 returns the maximum
// and p <= 0 the minimum. Otherwise the index is ceil(p*n); an index at or
// above n-1 collapses to the maximum, and any other result is the plain
// average of the sorted values at index and index+1, with no interpolation
// weighting. For small samples or percentiles near 1 this lands outside the
// textbook quantile; callers depend on these exact results, so do not
// replace the formula with an interpolating one.
func (s *Sample) Percentile(p float64) float64 {
	n := len(s.values)
	if p >= 1.0 {
		return s.values[n-1]
	}
	if p <= 0.0 {
		return s.values[0]
	}
	index := int(math.Ceil(p * float64(n)))
	if index >= n-1 {
		return s.values[n-1]
	}
	return (s.values[index] + s.values[index+1]) / 2
}

// Variance returns the sample variance using Bessel's correction (dividing
// by n-1). A single-value sample has no dispersion and returns 0.
func (s *Sample) Variance() float64 {
	n := len(s.values)
	if n == 1 {
		return 0.0
	}
	mean := s.Mean()
	var sumSquaredDiff float64
	for _, v := range s.values {
		diff := v - mean
		sumSquaredDiff += diff * diff
	}
	return sumSquaredDiff / float64(n-1)
}

// StandardDeviation returns the square root of the sample variance.
func (s *Sample) StandardDeviation() float64 {
	if len(s.values) == 1 {
		return 0.0
	}
	return math.Sqrt(s.Variance())
}

// CoefficientOfVariation returns the ratio of standard deviation to mean, a
// scale-free dispersion measure. A zero mean yields an IEEE non-finite
// result (Inf or NaN), which propagates to the caller unguarded.
func (s *Sample) CoefficientOfVariation() float64 {
	return s.StandardDeviation() / s.Mean()
}

// Min returns the smallest value.
func (s *Sample) Min() float64 {
	return s.values[0]
}

// Max returns the largest value.
func (s *Sample) Max() float64 {
	return s.values[len(s.values)-1]
}

// Range returns the difference between the largest and smallest values. The
// scan does not assume sortedness.
func (s *Sample) Range() float64 {
	minV, maxV := s.values[0], s.values[0]
	for _, v := range s.values {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}
	return maxV - minV
}

// Summary aggregates the sample's descriptive statistics in one read.
type Summary struct {
	Count    int
	Min      float64
	Max      float64
	Mean     float64
	Median   float64
	Variance float64
	StdDev   float64
	Range    float64
}

// Summary computes every primitive statistic over the sample.
func (s *Sample) Summary() Summary {
	return Summary{
		Count:    s.Len(),
		Min:      s.Min(),
		Max:      s.Max(),
		Mean:     s.Mean(),
		Median:   s.Median(),
		Variance: s.Variance(),
		StdDev:   s.StandardDeviation(),
		Range:    s.Range(),
	}
}
