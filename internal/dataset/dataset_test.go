package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsBadColumns(t *testing.T) {
	_, err := New([]Column{{Name: "a", Type: Text}, {Name: "a", Type: Integer}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")

	_, err = New([]Column{{Name: "   ", Type: Text}})
	require.Error(t, err)
}

func TestAppendRowPadsAndDropsExtras(t *testing.T) {
	ds, err := New([]Column{{Name: "a", Type: Text}, {Name: "b", Type: Text}})
	require.NoError(t, err)

	ds.AppendRow([]string{"x"})                // short: padded with null
	ds.AppendRow([]string{"y", "z", "extra"}) // long: extras dropped

	require.Equal(t, 2, ds.NumRows())
	assert.True(t, ds.IsNull(0, 1))
	assert.Equal(t, "z", ds.Raw(1, 1))
}

func TestFloat(t *testing.T) {
	ds, err := New([]Column{{Name: "n", Type: Float}})
	require.NoError(t, err)
	ds.AppendRow([]string{" 3.5 "})
	ds.AppendRow([]string{"oops"})

	v, err := ds.Float(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 3.5, v)

	_, err = ds.Float(1, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"n"`)
}

func TestRowKeyDistinguishesNullFromValue(t *testing.T) {
	ds, err := New([]Column{{Name: "a", Type: Text}, {Name: "b", Type: Text}})
	require.NoError(t, err)
	ds.AppendRow([]string{"", "x"})
	ds.AppendRow([]string{"", "x"})
	ds.AppendRow([]string{"\x00", "x"})

	assert.Equal(t, ds.RowKey(0), ds.RowKey(1))
	assert.NotEqual(t, ds.RowKey(0), ds.RowKey(2))
}

func TestRowKeyKeepsCellBoundaries(t *testing.T) {
	ds, err := New([]Column{{Name: "a", Type: Text}, {Name: "b", Type: Text}})
	require.NoError(t, err)
	ds.AppendRow([]string{"n;", "x"})      // value spelling the null tag
	ds.AppendRow([]string{"", "n;x"})      // actual null followed by a value
	ds.AppendRow([]string{"a\x1f", "b"})   // control bytes inside a value
	ds.AppendRow([]string{"a", "\x1fb"})
	ds.AppendRow([]string{"ab", "c"})
	ds.AppendRow([]string{"a", "bc"})

	keys := make(map[string]int)
	for row := 0; row < ds.NumRows(); row++ {
		key := ds.RowKey(row)
		if prev, dup := keys[key]; dup {
			t.Fatalf("rows %d and %d collide on key %q", prev, row, key)
		}
		keys[key] = row
	}
}

func TestEstimateBytesGrowsWithData(t *testing.T) {
	ds, err := New([]Column{{Name: "a", Type: Text}})
	require.NoError(t, err)
	empty := ds.EstimateBytes()
	ds.AppendRow([]string{"hello"})
	assert.Greater(t, ds.EstimateBytes(), empty)
}
