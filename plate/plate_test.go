// SPDX-License-Identifier: MIT

package plate_test

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/platestat/plate"
	"github.com/katalvlaran/platestat/well"
	"github.com/katalvlaran/platestat/wellset"
)

var quiet = slog.New(slog.NewTextHandler(io.Discard, nil))

func mustWell(t testing.TB, id string, values ...float64) *well.Well[float64] {
	t.Helper()
	w, err := well.Parse(id, values...)
	require.NoError(t, err)

	return w
}

func TestNew_Dimensions(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name       string
		rows, cols int
		wantErr    error
	}{
		{"ok", 8, 12, nil},
		{"single", 1, 1, nil},
		{"zero rows", 0, 12, plate.ErrBadDimensions},
		{"negative cols", 8, -1, plate.ErrBadDimensions},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p, err := plate.New[float64](tc.rows, tc.cols)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.rows, p.Rows())
			assert.Equal(t, tc.cols, p.Columns())
			assert.Equal(t, tc.rows*tc.cols, p.Capacity())
			assert.Equal(t, plate.DefaultLabel, p.Label())
			assert.Zero(t, p.Len())
		})
	}
}

func TestNewFormat(t *testing.T) {
	t.Parallel()
	p, err := plate.NewFormat[float64](plate.Format384, plate.WithLabel("screen"), plate.WithDescriptor("BC-0042"))
	require.NoError(t, err)
	assert.Equal(t, 16, p.Rows())
	assert.Equal(t, 24, p.Columns())
	assert.Equal(t, "screen", p.Label())
	assert.Equal(t, "BC-0042", p.Descriptor())

	_, err = plate.NewFormat[float64](plate.Format(100))
	require.ErrorIs(t, err, plate.ErrUnknownFormat)
}

func TestFormat_Dimensions(t *testing.T) {
	t.Parallel()
	for f, want := range map[plate.Format][2]int{
		plate.Format6:    {2, 3},
		plate.Format96:   {8, 12},
		plate.Format1536: {32, 48},
	} {
		r, c, err := f.Dimensions()
		require.NoError(t, err)
		assert.Equal(t, want[0]*want[1], int(f))
		assert.Equal(t, want, [2]int{r, c})
	}
}

func TestWithLogger_PanicsOnNil(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { plate.WithLogger(nil) })
}

func TestGridHelpers(t *testing.T) {
	t.Parallel()
	p, err := plate.New[float64](8, 12)
	require.NoError(t, err)

	assert.True(t, p.InBounds(0, 0))
	assert.True(t, p.InBounds(7, 11))
	assert.False(t, p.InBounds(8, 0))
	assert.False(t, p.InBounds(0, 12))
	assert.False(t, p.InBounds(-1, 3))

	for idx := 0; idx < p.Capacity(); idx++ {
		r, c := p.Coordinate(idx)
		require.True(t, p.InBounds(r, c))
		require.Equal(t, idx, p.Index(r, c))
	}
	assert.Equal(t, 13, p.Index(1, 1))
}

func TestAddWell_Bounds(t *testing.T) {
	t.Parallel()
	p, err := plate.New[float64](2, 3, plate.WithLogger(quiet))
	require.NoError(t, err)

	require.NoError(t, p.AddWell(mustWell(t, "B3", 1)))
	require.ErrorIs(t, p.AddWell(mustWell(t, "C1")), plate.ErrOutOfBounds)
	require.ErrorIs(t, p.AddWell(mustWell(t, "A4")), plate.ErrOutOfBounds)
	require.ErrorIs(t, p.AddWell(nil), wellset.ErrNilWell)
	require.ErrorIs(t, p.AddWell(mustWell(t, "B3", 2)), wellset.ErrDuplicateWell)
	assert.Equal(t, 1, p.Len())
}

func TestAdd_PartialFailureLogged(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	p, err := plate.New[float64](2, 2, plate.WithLogger(logger), plate.WithLabel("mini"))
	require.NoError(t, err)

	ok := p.Add(mustWell(t, "A1"), mustWell(t, "C3"), mustWell(t, "B2"))
	assert.False(t, ok)
	assert.Equal(t, "A1,B2", p.Set().IDs())
	assert.Contains(t, buf.String(), `"plate":"mini"`)
	assert.Contains(t, buf.String(), `"well":"C3"`)

	assert.True(t, p.Add(mustWell(t, "A2")))
	assert.False(t, p.Add(mustWell(t, "A2")))
}

func TestReplaceAndRemove(t *testing.T) {
	t.Parallel()
	p, err := plate.New[float64](2, 2, plate.WithLogger(quiet))
	require.NoError(t, err)
	require.True(t, p.Add(mustWell(t, "A1", 1), mustWell(t, "B1", 2)))

	assert.True(t, p.Replace(mustWell(t, "A1", 10)))
	assert.Equal(t, []float64{10}, p.Get(well.ID{Row: 0, Column: 0}).Data())
	assert.False(t, p.Replace(mustWell(t, "Z9", 1)))

	assert.True(t, p.Remove(mustWell(t, "B1")))
	assert.Nil(t, p.Get(well.ID{Row: 1, Column: 0}))
	assert.Equal(t, 1, p.Len())
}

func TestFilled_RowsAndColumns(t *testing.T) {
	t.Parallel()
	p, err := plate.Filled(3, 4, func(id well.ID) []float64 {
		return []float64{float64(id.Row*10 + id.Column)}
	}, plate.WithLogger(quiet))
	require.NoError(t, err)
	assert.Equal(t, 12, p.Len())

	assert.Equal(t, "B1,B2,B3,B4", p.Row(1).IDs())
	assert.Equal(t, "A3,B3,C3", p.Column(2).IDs())
	assert.Nil(t, p.Row(5))

	var order []float64
	for w := range p.All() {
		order = append(order, w.Values()[0])
	}
	assert.Equal(t, []float64{0, 1, 2, 3, 10, 11, 12, 13, 20, 21, 22, 23}, order)
}

func TestClone_IsDeep(t *testing.T) {
	t.Parallel()
	p, err := plate.Filled(2, 2, func(well.ID) []float64 { return []float64{1} }, plate.WithLogger(quiet))
	require.NoError(t, err)

	c := p.Clone()
	require.True(t, p.Equal(c))
	assert.Zero(t, p.Compare(c))

	c.Get(well.ID{}).SetData(42)
	assert.Equal(t, []float64{1}, p.Get(well.ID{}).Data())

	require.NoError(t, c.Set().RemoveAt(0))
	assert.Equal(t, 4, p.Len())
	assert.False(t, p.Equal(c))

	var nilPlate *plate.Plate[float64]
	assert.Nil(t, nilPlate.Clone())
}

func TestCompare(t *testing.T) {
	t.Parallel()
	a, _ := plate.New[float64](8, 12, plate.WithLabel("a"))
	b, _ := plate.New[float64](8, 12, plate.WithLabel("b"))
	small, _ := plate.New[float64](2, 3, plate.WithLabel("a"))
	wide, _ := plate.New[float64](2, 4, plate.WithLabel("a"))
	var none *plate.Plate[float64]

	assert.Negative(t, a.Compare(b))
	assert.Positive(t, b.Compare(a))
	assert.Negative(t, small.Compare(a))
	assert.Negative(t, small.Compare(wide))
	assert.Negative(t, none.Compare(a))
	assert.Positive(t, a.Compare(none))
	assert.Zero(t, none.Compare(none))

	filled, _ := plate.New[float64](8, 12, plate.WithLabel("a"), plate.WithLogger(quiet))
	require.NoError(t, filled.AddWell(mustWell(t, "A1")))
	assert.Negative(t, a.Compare(filled))
}

func TestString(t *testing.T) {
	t.Parallel()
	p, _ := plate.New[float64](8, 12, plate.WithLabel("P1"), plate.WithLogger(quiet))
	p.Add(mustWell(t, "B2"), mustWell(t, "A1"))
	assert.Equal(t, "P1[8x12]{A1,B2}", p.String())

	p.SetLabel("P2")
	assert.Equal(t, "P2", p.Set().Label())

	var none *plate.Plate[float64]
	assert.Equal(t, "<nil>", none.String())
	assert.True(t, none.IsNil())
}
