package tablefunc

import (
	"github.com/apache/arrow-go/v18/arrow"
)

// Table is a scan-only provider over a fully materialized record.
// It supports reading its schema and batches; there is no mutation
// surface.
type Table struct {
	schema *arrow.Schema
	rec    arrow.Record
}

// NewTable wraps rec in a scan-only provider. The provider takes its
// own reference; the caller keeps ownership of rec.
func NewTable(rec arrow.Record) *Table {
	rec.Retain()
	return &Table{schema: rec.Schema(), rec: rec}
}

// Schema returns the table's schema.
func (t *Table) Schema() *arrow.Schema { return t.schema }

// NumRows returns the materialized row count.
func (t *Table) NumRows() int64 { return t.rec.NumRows() }

// NumCols returns the number of columns.
func (t *Table) NumCols() int64 { return t.rec.NumCols() }

// Scan returns the table's batches. The materializer produced a
// single record, so the scan is a single batch. Callers must not
// release the returned records.
func (t *Table) Scan() []arrow.Record {
	return []arrow.Record{t.rec}
}

// Release drops the provider's reference on its backing record.
func (t *Table) Release() { t.rec.Release() }
