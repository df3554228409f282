package tablefunc

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/pingcap/errors"

	"tpchtable/tpcharrow"
)

// Materialize drains it and concatenates every batch into a single
// record sharing the iterator's schema. An iterator that yields no
// batches produces a zero-row record. Batches whose schema disagrees
// with the iterator's are a consistency violation and fail with
// ErrInternal.
func Materialize(it tpcharrow.RecordIterator) (arrow.Record, error) {
	schema := it.Schema()

	var batches []arrow.Record
	defer func() {
		for _, b := range batches {
			b.Release()
		}
	}()

	for {
		rec, err := it.Next()
		if err != nil {
			return nil, errors.Trace(err)
		}
		if rec == nil {
			break
		}
		if !rec.Schema().Equal(schema) {
			rec.Release()
			return nil, internalErrf("batch schema diverged from iterator schema")
		}
		batches = append(batches, rec)
	}

	return concatBatches(schema, batches)
}

func concatBatches(schema *arrow.Schema, batches []arrow.Record) (arrow.Record, error) {
	mem := memory.DefaultAllocator

	if len(batches) == 0 {
		return emptyRecord(schema, mem), nil
	}
	if len(batches) == 1 {
		batches[0].Retain()
		return batches[0], nil
	}

	var rows int64
	cols := make([]arrow.Array, 0, schema.NumFields())
	defer func() {
		for _, c := range cols {
			c.Release()
		}
	}()
	for i := 0; i < schema.NumFields(); i++ {
		chunks := make([]arrow.Array, len(batches))
		for j, b := range batches {
			chunks[j] = b.Column(i)
		}
		merged, err := array.Concatenate(chunks, mem)
		if err != nil {
			return nil, errors.Trace(err)
		}
		cols = append(cols, merged)
	}
	for _, b := range batches {
		rows += b.NumRows()
	}

	rec := array.NewRecord(schema, cols, rows)
	return rec, nil
}

func emptyRecord(schema *arrow.Schema, mem memory.Allocator) arrow.Record {
	b := array.NewRecordBuilder(mem, schema)
	defer b.Release()
	return b.NewRecord()
}
