// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import (
	"errors"
	"fmt"

	"github.com/aclements/go-moremath/stats"
)

// DefaultThreshold is the significance level used when
// CompareOptions.Threshold is zero.
const DefaultThreshold = 0.05

// ErrZeroVariance is returned by Compare when both samples have zero
// variance, which leaves the t statistic undefined.
var ErrZeroVariance = errors.New("both samples have zero variance")

// CompareOptions configures Compare.
type CompareOptions struct {
	// Threshold is the p value below which two samples are
	// considered different. If zero, DefaultThreshold is used.
	Threshold float64
}

func (o CompareOptions) threshold() float64 {
	if o.Threshold == 0 {
		return DefaultThreshold
	}
	return o.Threshold
}

// Comparison is the result of Welch's two-sample t-test.
type Comparison struct {
	// T is the t statistic. It is positive if the first sample
	// has the larger mean.
	T float64

	// DoF is the Welch–Satterthwaite degrees of freedom.
	DoF float64

	// P is the two-tailed p value.
	P float64

	// Significant reports whether P is below the threshold.
	Significant bool

	N1, N2 int
}

// Compare performs Welch's t-test on two independent samples that may
// have unequal variances. Swapping a and b negates T and leaves P
// unchanged.
func Compare(a, b []float64, opts CompareOptions) (Comparison, error) {
	if len(a) == 0 || len(b) == 0 {
		return Comparison{}, fmt.Errorf("compare: empty sample: %w", ErrInvalidInput)
	}
	if len(a) < 2 || len(b) < 2 {
		return Comparison{}, fmt.Errorf("compare: need at least 2 samples each, have %d and %d: %w", len(a), len(b), ErrInsufficientSamples)
	}

	res, err := stats.TwoSampleWelchTTest(&stats.Sample{Xs: a}, &stats.Sample{Xs: b}, stats.LocationDiffers)
	switch err {
	case nil:
	case stats.ErrZeroVariance:
		return Comparison{}, fmt.Errorf("compare: %w", ErrZeroVariance)
	case stats.ErrSampleSize:
		return Comparison{}, fmt.Errorf("compare: %w", ErrInsufficientSamples)
	default:
		return Comparison{}, fmt.Errorf("compare: %w", err)
	}

	return Comparison{
		T:           res.T,
		DoF:         res.DoF,
		P:           res.P,
		Significant: res.P < opts.threshold(),
		N1:          res.N1,
		N2:          res.N2,
	}, nil
}
