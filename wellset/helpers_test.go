// SPDX-License-Identifier: MIT
// Package wellset_test contains shared fixtures for the WellSet tests.

package wellset_test

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/platestat/well"
	"github.com/katalvlaran/platestat/wellset"
)

// quiet discards batch rejection logs so test output stays readable.
var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

// mustWell builds a well from plate notation or fails the test.
func mustWell(t testing.TB, id string, values ...float64) *well.Well[float64] {
	t.Helper()
	w, err := well.Parse(id, values...)
	require.NoError(t, err)

	return w
}

// mustSet builds a quiet set from a delimited ID list or fails the test.
func mustSet(t testing.TB, list string, opts ...wellset.Option) *wellset.WellSet[float64] {
	t.Helper()
	opts = append([]wellset.Option{wellset.WithLogger(quiet)}, opts...)
	s, err := wellset.FromIDs[float64](list, opts...)
	require.NoError(t, err)

	return s
}

// ids renders the members of s, or "<nil>" for a nil set.
func ids(s *wellset.WellSet[float64]) string {
	if s == nil {
		return "<nil>"
	}

	return s.IDs()
}

// capture returns a logger writing JSON into the returned buffer.
func capture() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewJSONHandler(&buf, nil)), &buf
}
