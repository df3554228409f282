package tpcharrow

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/stretchr/testify/require"

	"tpchtable/tpchgen"
)

func drain(t *testing.T, it RecordIterator) (batches int, rows int64) {
	t.Helper()
	for {
		rec, err := it.Next()
		require.NoError(t, err)
		if rec == nil {
			return batches, rows
		}
		require.True(t, rec.Schema().Equal(it.Schema()))
		require.LessOrEqual(t, rec.NumRows(), int64(BatchSize))
		batches++
		rows += rec.NumRows()
		rec.Release()
	}
}

func TestNationBatches(t *testing.T) {
	it := NewNationArrow(tpchgen.NewNationGenerator(1, 1, 1))
	batches, rows := drain(t, it)
	require.Equal(t, 1, batches)
	require.Equal(t, int64(25), rows)
}

func TestCustomerBatchSplitting(t *testing.T) {
	// 15000 customers at this scale: one full batch of 8000 and a
	// remainder of 7000.
	it := NewCustomerArrow(tpchgen.NewCustomerGenerator(0.1, 1, 1))

	rec, err := it.Next()
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.Equal(t, int64(BatchSize), rec.NumRows())
	rec.Release()

	rec, err = it.Next()
	require.NoError(t, err)
	require.NotNil(t, rec)
	require.Equal(t, int64(7000), rec.NumRows())
	rec.Release()

	rec, err = it.Next()
	require.NoError(t, err)
	require.Nil(t, rec)
}

func TestExhaustedIteratorStaysExhausted(t *testing.T) {
	it := NewRegionArrow(tpchgen.NewRegionGenerator(1, 1, 1))
	_, rows := drain(t, it)
	require.Equal(t, int64(5), rows)

	rec, err := it.Next()
	require.NoError(t, err)
	require.Nil(t, rec)
}

func TestEmptyPartitionYieldsNoBatches(t *testing.T) {
	// Part 9 of 8 on a 5-row table is past the end.
	it := NewRegionArrow(tpchgen.NewRegionGenerator(1, 9, 8))
	batches, rows := drain(t, it)
	require.Equal(t, 0, batches)
	require.Equal(t, int64(0), rows)
}

func TestSchemasMatchColumnCounts(t *testing.T) {
	require.Equal(t, 4, NationSchema.NumFields())
	require.Equal(t, 3, RegionSchema.NumFields())
	require.Equal(t, 7, SupplierSchema.NumFields())
	require.Equal(t, 8, CustomerSchema.NumFields())
	require.Equal(t, 9, PartSchema.NumFields())
	require.Equal(t, 5, PartSuppSchema.NumFields())
	require.Equal(t, 9, OrdersSchema.NumFields())
	require.Equal(t, 16, LineItemSchema.NumFields())
}

func TestOrdersAdapterValues(t *testing.T) {
	gen := tpchgen.NewOrdersGenerator(0.01, 1, 1)
	first, ok := gen.Next()
	require.True(t, ok)

	gen.Reset()
	it := NewOrdersArrow(gen)
	rec, err := it.Next()
	require.NoError(t, err)
	require.NotNil(t, rec)
	defer rec.Release()

	keys := rec.Column(0).(*array.Int64)
	require.Equal(t, first.OrderKey, keys.Value(0))
}
