// Package tpcharrow adapts the tpchgen row generators into lazy
// sequences of Arrow record batches, one adapter per TPC-H relation.
package tpcharrow

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"tpchtable/tpchgen"
)

// BatchSize bounds the rows per produced record. Fixed by the adapter,
// not configurable by callers.
const BatchSize = 8000

// RecordIterator is a finite, lazy sequence of record batches under
// one schema. Next returns a nil record once the sequence is
// exhausted. The caller owns each returned record and must Release it.
type RecordIterator interface {
	Schema() *arrow.Schema
	Next() (arrow.Record, error)
}

// rowAdapter batches rows from a generator's Next func into records.
// One instantiation per relation keeps the eight adapters to a
// declarative appender each.
type rowAdapter[T any] struct {
	schema    *arrow.Schema
	nextRow   func() (T, bool)
	appendRow func(*array.RecordBuilder, T)
	mem       memory.Allocator
}

func (a *rowAdapter[T]) Schema() *arrow.Schema { return a.schema }

func (a *rowAdapter[T]) Next() (arrow.Record, error) {
	bldr := array.NewRecordBuilder(a.mem, a.schema)
	defer bldr.Release()

	n := 0
	for n < BatchSize {
		row, ok := a.nextRow()
		if !ok {
			break
		}
		a.appendRow(bldr, row)
		n++
	}
	if n == 0 {
		return nil, nil
	}
	return bldr.NewRecord(), nil
}

func newAdapter[T any](
	schema *arrow.Schema,
	nextRow func() (T, bool),
	appendRow func(*array.RecordBuilder, T),
) RecordIterator {
	return &rowAdapter[T]{
		schema:    schema,
		nextRow:   nextRow,
		appendRow: appendRow,
		mem:       memory.DefaultAllocator,
	}
}

func NewNationArrow(g *tpchgen.NationGenerator) RecordIterator {
	return newAdapter(NationSchema, g.Next, func(b *array.RecordBuilder, r tpchgen.Nation) {
		b.Field(0).(*array.Int64Builder).Append(r.NationKey)
		b.Field(1).(*array.StringBuilder).Append(r.Name)
		b.Field(2).(*array.Int64Builder).Append(r.RegionKey)
		b.Field(3).(*array.StringBuilder).Append(r.Comment)
	})
}

func NewRegionArrow(g *tpchgen.RegionGenerator) RecordIterator {
	return newAdapter(RegionSchema, g.Next, func(b *array.RecordBuilder, r tpchgen.Region) {
		b.Field(0).(*array.Int64Builder).Append(r.RegionKey)
		b.Field(1).(*array.StringBuilder).Append(r.Name)
		b.Field(2).(*array.StringBuilder).Append(r.Comment)
	})
}

func NewSupplierArrow(g *tpchgen.SupplierGenerator) RecordIterator {
	return newAdapter(SupplierSchema, g.Next, func(b *array.RecordBuilder, r tpchgen.Supplier) {
		b.Field(0).(*array.Int64Builder).Append(r.SuppKey)
		b.Field(1).(*array.StringBuilder).Append(r.Name)
		b.Field(2).(*array.StringBuilder).Append(r.Address)
		b.Field(3).(*array.Int64Builder).Append(r.NationKey)
		b.Field(4).(*array.StringBuilder).Append(r.Phone)
		b.Field(5).(*array.Float64Builder).Append(r.AcctBal)
		b.Field(6).(*array.StringBuilder).Append(r.Comment)
	})
}

func NewCustomerArrow(g *tpchgen.CustomerGenerator) RecordIterator {
	return newAdapter(CustomerSchema, g.Next, func(b *array.RecordBuilder, r tpchgen.Customer) {
		b.Field(0).(*array.Int64Builder).Append(r.CustKey)
		b.Field(1).(*array.StringBuilder).Append(r.Name)
		b.Field(2).(*array.StringBuilder).Append(r.Address)
		b.Field(3).(*array.Int64Builder).Append(r.NationKey)
		b.Field(4).(*array.StringBuilder).Append(r.Phone)
		b.Field(5).(*array.Float64Builder).Append(r.AcctBal)
		b.Field(6).(*array.StringBuilder).Append(r.MktSegment)
		b.Field(7).(*array.StringBuilder).Append(r.Comment)
	})
}

func NewPartArrow(g *tpchgen.PartGenerator) RecordIterator {
	return newAdapter(PartSchema, g.Next, func(b *array.RecordBuilder, r tpchgen.Part) {
		b.Field(0).(*array.Int64Builder).Append(r.PartKey)
		b.Field(1).(*array.StringBuilder).Append(r.Name)
		b.Field(2).(*array.StringBuilder).Append(r.Mfgr)
		b.Field(3).(*array.StringBuilder).Append(r.Brand)
		b.Field(4).(*array.StringBuilder).Append(r.Type)
		b.Field(5).(*array.Int32Builder).Append(r.Size)
		b.Field(6).(*array.StringBuilder).Append(r.Container)
		b.Field(7).(*array.Float64Builder).Append(r.RetailPrice)
		b.Field(8).(*array.StringBuilder).Append(r.Comment)
	})
}

func NewPartSuppArrow(g *tpchgen.PartSuppGenerator) RecordIterator {
	return newAdapter(PartSuppSchema, g.Next, func(b *array.RecordBuilder, r tpchgen.PartSupp) {
		b.Field(0).(*array.Int64Builder).Append(r.PartKey)
		b.Field(1).(*array.Int64Builder).Append(r.SuppKey)
		b.Field(2).(*array.Int32Builder).Append(r.AvailQty)
		b.Field(3).(*array.Float64Builder).Append(r.SupplyCost)
		b.Field(4).(*array.StringBuilder).Append(r.Comment)
	})
}

func NewOrdersArrow(g *tpchgen.OrdersGenerator) RecordIterator {
	return newAdapter(OrdersSchema, g.Next, func(b *array.RecordBuilder, r tpchgen.Order) {
		b.Field(0).(*array.Int64Builder).Append(r.OrderKey)
		b.Field(1).(*array.Int64Builder).Append(r.CustKey)
		b.Field(2).(*array.StringBuilder).Append(r.OrderStatus)
		b.Field(3).(*array.Float64Builder).Append(r.TotalPrice)
		b.Field(4).(*array.Date32Builder).Append(arrow.Date32(r.OrderDate))
		b.Field(5).(*array.StringBuilder).Append(r.OrderPriority)
		b.Field(6).(*array.StringBuilder).Append(r.Clerk)
		b.Field(7).(*array.Int32Builder).Append(r.ShipPriority)
		b.Field(8).(*array.StringBuilder).Append(r.Comment)
	})
}

func NewLineItemArrow(g *tpchgen.LineItemGenerator) RecordIterator {
	return newAdapter(LineItemSchema, g.Next, func(b *array.RecordBuilder, r tpchgen.LineItem) {
		b.Field(0).(*array.Int64Builder).Append(r.OrderKey)
		b.Field(1).(*array.Int64Builder).Append(r.PartKey)
		b.Field(2).(*array.Int64Builder).Append(r.SuppKey)
		b.Field(3).(*array.Int32Builder).Append(r.LineNumber)
		b.Field(4).(*array.Float64Builder).Append(r.Quantity)
		b.Field(5).(*array.Float64Builder).Append(r.ExtendedPrice)
		b.Field(6).(*array.Float64Builder).Append(r.Discount)
		b.Field(7).(*array.Float64Builder).Append(r.Tax)
		b.Field(8).(*array.StringBuilder).Append(r.ReturnFlag)
		b.Field(9).(*array.StringBuilder).Append(r.LineStatus)
		b.Field(10).(*array.Date32Builder).Append(arrow.Date32(r.ShipDate))
		b.Field(11).(*array.Date32Builder).Append(arrow.Date32(r.CommitDate))
		b.Field(12).(*array.Date32Builder).Append(arrow.Date32(r.ReceiptDate))
		b.Field(13).(*array.StringBuilder).Append(r.ShipInstruct)
		b.Field(14).(*array.StringBuilder).Append(r.ShipMode)
		b.Field(15).(*array.StringBuilder).Append(r.Comment)
	})
}
