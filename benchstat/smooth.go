// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchstat

import "fmt"

// MovingAverage returns the centered moving average of xs over a
// window of width values. The result has the same length as xs.
//
// Near the ends, the window is filled by repeating the first or last
// value: width/2 copies of xs[0] before and width-1-width/2 copies of
// xs[len(xs)-1] after.
func MovingAverage(xs []float64, width int) ([]float64, error) {
	if width < 1 {
		return nil, fmt.Errorf("moving average width must be positive, got %d: %w", width, ErrInvalidInput)
	}
	if len(xs) == 0 {
		return nil, nil
	}

	before := width / 2
	at := func(i int) float64 {
		// Index into the edge-padded sequence.
		i -= before
		if i < 0 {
			return xs[0]
		} else if i >= len(xs) {
			return xs[len(xs)-1]
		}
		return xs[i]
	}

	out := make([]float64, len(xs))
	var sum float64
	for i := 0; i < width; i++ {
		sum += at(i)
	}
	out[0] = sum / float64(width)
	for i := 1; i < len(xs); i++ {
		sum += at(i+width-1) - at(i-1)
		out[i] = sum / float64(width)
	}
	return out, nil
}
