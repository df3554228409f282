package tablefunc

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/pingcap/errors"
	"github.com/stretchr/testify/require"
)

func TestLookupKnowsAllFunctions(t *testing.T) {
	require.Len(t, All, 8)
	for _, f := range All {
		got, ok := Lookup(f.Name)
		require.True(t, ok)
		require.Same(t, f, got)
	}
	_, ok := Lookup("tpch_unknown")
	require.False(t, ok)
}

func TestNationCall(t *testing.T) {
	table, err := Nation.Call(float64(1))
	require.NoError(t, err)
	defer table.Release()

	require.Equal(t, int64(25), table.NumRows())
	require.True(t, table.Schema().Equal(Nation.Schema))
	require.Equal(t, 4, table.Schema().NumFields())

	batches := table.Scan()
	require.Len(t, batches, 1)
	require.Equal(t, int64(25), batches[0].NumRows())
}

func TestCallRejectsBadArgs(t *testing.T) {
	_, err := Region.Call()
	require.Equal(t, ErrInvalidArgument, errors.Cause(err))

	_, err = Region.Call(float64(1), int64(2))
	require.Equal(t, ErrInvalidArgument, errors.Cause(err))

	_, err = Region.Call("1")
	require.Equal(t, ErrInvalidArgument, errors.Cause(err))
}

func TestCallRowCountsSmallScale(t *testing.T) {
	cases := []struct {
		f    *TableFunc
		rows int64
	}{
		{Nation, 25},
		{Region, 5},
		{Supplier, 100},
		{Customer, 1500},
		{Part, 2000},
		{PartSupp, 8000},
		{Orders, 15000},
	}
	for _, tc := range cases {
		table, err := tc.f.Call(float64(0.01))
		require.NoError(t, err, tc.f.Name)
		require.Equal(t, tc.rows, table.NumRows(), tc.f.Name)
		table.Release()
	}
}

func TestCallRowCountsSF1(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full scale factor 1 generation in short mode")
	}

	cases := []struct {
		f    *TableFunc
		rows int64
	}{
		{Supplier, 10_000},
		{Customer, 150_000},
		{Part, 200_000},
		{PartSupp, 800_000},
		{Orders, 1_500_000},
		{LineItem, 6_001_215},
	}
	for _, tc := range cases {
		table, err := tc.f.Call(float64(1))
		require.NoError(t, err, tc.f.Name)
		require.Equal(t, tc.rows, table.NumRows(), tc.f.Name)
		table.Release()
	}
}

func TestCallEmptyPartition(t *testing.T) {
	// Part beyond the table still materializes: zero rows, full schema.
	table, err := Region.Call(float64(1), int64(9), int64(8))
	require.NoError(t, err)
	defer table.Release()

	require.Equal(t, int64(0), table.NumRows())
	require.True(t, table.Schema().Equal(Region.Schema))
}

func TestCallPartitionUnionMatchesWhole(t *testing.T) {
	whole, err := Orders.Call(float64(0.01))
	require.NoError(t, err)
	defer whole.Release()

	var unionRows int64
	for part := int64(1); part <= 4; part++ {
		slice, err := Orders.Call(float64(0.01), part, int64(4))
		require.NoError(t, err)
		unionRows += slice.NumRows()
		slice.Release()
	}
	require.Equal(t, whole.NumRows(), unionRows)
}

func TestCallDeterministic(t *testing.T) {
	a, err := Supplier.Call(float64(0.01))
	require.NoError(t, err)
	defer a.Release()
	b, err := Supplier.Call(float64(0.01))
	require.NoError(t, err)
	defer b.Release()

	ra, rb := a.Scan()[0], b.Scan()[0]
	require.Equal(t, ra.NumRows(), rb.NumRows())
	for i := 0; i < int(ra.NumCols()); i++ {
		require.True(t, arrow.TypeEqual(ra.Column(i).DataType(), rb.Column(i).DataType()))
		require.Equal(t, ra.Column(i).String(), rb.Column(i).String(), "column %d", i)
	}
}
