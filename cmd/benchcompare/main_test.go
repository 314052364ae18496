// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupName(t *testing.T) {
	check := func(path, want string) {
		t.Helper()
		assert.Equal(t, want, groupName(path))
	}
	check("results.json", "results")
	check("out/linux-6.1.json", "linux-6.1")
	check("archive.tar.json", "archive.tar")
	check("noext", "noext")
	check(".hidden", ".hidden")
}

func TestRoundMeans(t *testing.T) {
	means := [][]float64{{0.1234, 1.005}, {2.999, 0}}
	roundMeans(means)
	assert.InDeltaSlice(t, []float64{0.12, 1.0}, means[0], 1e-9)
	assert.InDeltaSlice(t, []float64{3, 0}, means[1], 1e-9)
}
