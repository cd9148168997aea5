// SPDX-License-Identifier: MIT

package platefile_test

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/platestat/internal/platefile"
	"github.com/katalvlaran/platestat/plate"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

const sample = `
label: assay-1
descriptor: barcode 0042
rows: 8
columns: 12
wells:
  B1: [4, 5, 6]
  A1: [1, 2, 3.25]
`

func TestRead_Valid(t *testing.T) {
	t.Parallel()
	f, err := platefile.Read(strings.NewReader(sample))
	require.NoError(t, err)
	assert.Equal(t, "assay-1", f.Label)
	assert.Equal(t, []string{"A1", "B1"}, f.WellIDs())
	assert.Equal(t, platefile.Number("3.25"), f.Wells["A1"][2])

	p, err := platefile.Float(f, plate.WithLogger(quiet))
	require.NoError(t, err)
	assert.Equal(t, "assay-1[8x12]{A1,B1}", p.String())
	assert.Equal(t, "barcode 0042", p.Descriptor())

	d, err := platefile.Decimal(f, plate.WithLogger(quiet))
	require.NoError(t, err)
	assert.Equal(t, "3.25", d.Set().Wells()[0].Values()[2].String())
}

func TestRead_Invalid(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"missing rows":  "columns: 3\n",
		"zero columns":  "rows: 2\ncolumns: 0\n",
		"bad well id":   "rows: 2\ncolumns: 2\nwells:\n  1A: [1]\n",
		"unknown field": "rows: 2\ncolumns: 2\ncolour: red\n",
		"nested value":  "rows: 2\ncolumns: 2\nwells:\n  A1: [[1]]\n",
		"not yaml":      "rows: [\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := platefile.Read(strings.NewReader(doc))
			require.ErrorIs(t, err, platefile.ErrInvalid)
		})
	}
}

func TestBuild_ReportsEveryBadWell(t *testing.T) {
	t.Parallel()
	f, err := platefile.Read(strings.NewReader("rows: 2\ncolumns: 2\nwells:\n  A1: [x]\n  C1: [1]\n  B2: [2]\n"))
	require.NoError(t, err)

	_, err = platefile.Float(f, plate.WithLogger(quiet))
	require.ErrorIs(t, err, platefile.ErrInvalid)
	require.ErrorIs(t, err, plate.ErrOutOfBounds)
	assert.Contains(t, err.Error(), "well A1")
	assert.Contains(t, err.Error(), "C1")
}

func TestLoad(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "plate.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	f, err := platefile.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, f.Rows)

	_, err = platefile.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
