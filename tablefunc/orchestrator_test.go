package tablefunc

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/pingcap/errors"
	"github.com/stretchr/testify/require"
)

var wantNames = []string{
	"tpch_nation",
	"tpch_customer",
	"tpch_orders",
	"tpch_lineitem",
	"tpch_part",
	"tpch_partsupp",
	"tpch_supplier",
	"tpch_region",
}

func TestRegistrationOrder(t *testing.T) {
	names := make([]string, len(All))
	for i, f := range All {
		names[i] = f.Name
	}
	require.Equal(t, wantNames, names)
}

func TestTablesRegistersEverything(t *testing.T) {
	catalog := NewMemoryCatalog()
	o := &Orchestrator{Catalog: catalog}

	meta, err := o.Tables(float64(0.01))
	require.NoError(t, err)
	defer meta.Release()

	require.ElementsMatch(t, wantNames, catalog.Names())

	orders, ok := catalog.Lookup("tpch_orders")
	require.True(t, ok)
	require.Equal(t, int64(15000), orders.NumRows())
}

func TestTablesMetaTable(t *testing.T) {
	o := &Orchestrator{Catalog: NewMemoryCatalog()}

	meta, err := o.Tables(float64(0.01))
	require.NoError(t, err)
	defer meta.Release()

	require.Equal(t, int64(8), meta.NumRows())
	require.True(t, meta.Schema().Equal(MetaSchema))

	col := meta.Scan()[0].Column(0).(*array.String)
	for i, want := range All {
		require.Equal(t, want.Name, col.Value(i))
	}
}

func TestTablesRequiresScaleFactor(t *testing.T) {
	o := &Orchestrator{Catalog: NewMemoryCatalog()}

	_, err := o.Tables()
	require.Equal(t, ErrInvalidArgument, errors.Cause(err))

	_, err = o.Tables(int64(1))
	require.Equal(t, ErrInvalidArgument, errors.Cause(err))
}

func TestTablesLenientOptionalArgs(t *testing.T) {
	catalog := NewMemoryCatalog()
	o := &Orchestrator{Catalog: catalog}

	// A wrongly typed to-disk flag coerces to false: in-memory path.
	meta, err := o.Tables(float64(0.01), "yes", int64(3))
	require.NoError(t, err)
	defer meta.Release()
	require.Len(t, catalog.Names(), 8)
}

type failingCatalog struct {
	failAt string
	seen   []string
}

func (c *failingCatalog) Register(name string, t *Table) error {
	if name == c.failAt {
		return errors.Errorf("catalog full")
	}
	c.seen = append(c.seen, name)
	t.Release()
	return nil
}

func TestTablesStopsOnRegisterFailure(t *testing.T) {
	catalog := &failingCatalog{failAt: "tpch_orders"}
	o := &Orchestrator{Catalog: catalog}

	_, err := o.Tables(float64(0.01))
	require.Error(t, err)
	// Tables registered before the failure stay registered.
	require.Equal(t, []string{"tpch_nation", "tpch_customer"}, catalog.seen)
}

type recordingWriter struct {
	written map[string]int64
}

func (w *recordingWriter) WriteTable(name string, rec arrow.Record) error {
	if w.written == nil {
		w.written = make(map[string]int64)
	}
	w.written[name] = rec.NumRows()
	return nil
}

func TestTablesToDisk(t *testing.T) {
	catalog := NewMemoryCatalog()
	w := &recordingWriter{}
	o := &Orchestrator{Catalog: catalog, Writer: w}

	meta, err := o.Tables(float64(0.01), true)
	require.NoError(t, err)
	defer meta.Release()

	// Disk output bypasses the catalog entirely.
	require.Empty(t, catalog.Names())
	require.Len(t, w.written, 8)
	require.Equal(t, int64(15000), w.written["tpch_orders"])
	require.Equal(t, int64(25), w.written["tpch_nation"])
}

func TestTablesToDiskWithoutWriter(t *testing.T) {
	o := &Orchestrator{Catalog: NewMemoryCatalog()}

	_, err := o.Tables(float64(0.01), true)
	require.Equal(t, ErrInvalidArgument, errors.Cause(err))
}
