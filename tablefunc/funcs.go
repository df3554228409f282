package tablefunc

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/pingcap/errors"

	"tpchtable/tpcharrow"
	"tpchtable/tpchgen"
)

// TableFunc is one of the eight single-table functions. Calling it
// with positional literals yields a scan-only provider over the
// requested slice of the relation.
type TableFunc struct {
	// Name is the function's registration name, e.g. "tpch_nation".
	Name string

	// Schema is the relation's schema, available without a call.
	Schema *arrow.Schema

	iterator func(inv Invocation) tpcharrow.RecordIterator
}

// Call validates args, generates the requested table slice, and
// materializes it into a provider.
func (f *TableFunc) Call(args ...any) (*Table, error) {
	inv, err := ParseArgs(args)
	if err != nil {
		return nil, errors.Trace(err)
	}
	rec, err := Materialize(f.iterator(inv))
	if err != nil {
		return nil, errors.Trace(err)
	}
	defer rec.Release()
	return NewTable(rec), nil
}

// The eight single-table functions.
var (
	Nation = &TableFunc{
		Name:   "tpch_nation",
		Schema: tpcharrow.NationSchema,
		iterator: func(inv Invocation) tpcharrow.RecordIterator {
			return tpcharrow.NewNationArrow(tpchgen.NewNationGenerator(inv.ScaleFactor, inv.Part, inv.NumParts))
		},
	}
	Customer = &TableFunc{
		Name:   "tpch_customer",
		Schema: tpcharrow.CustomerSchema,
		iterator: func(inv Invocation) tpcharrow.RecordIterator {
			return tpcharrow.NewCustomerArrow(tpchgen.NewCustomerGenerator(inv.ScaleFactor, inv.Part, inv.NumParts))
		},
	}
	Orders = &TableFunc{
		Name:   "tpch_orders",
		Schema: tpcharrow.OrdersSchema,
		iterator: func(inv Invocation) tpcharrow.RecordIterator {
			return tpcharrow.NewOrdersArrow(tpchgen.NewOrdersGenerator(inv.ScaleFactor, inv.Part, inv.NumParts))
		},
	}
	LineItem = &TableFunc{
		Name:   "tpch_lineitem",
		Schema: tpcharrow.LineItemSchema,
		iterator: func(inv Invocation) tpcharrow.RecordIterator {
			return tpcharrow.NewLineItemArrow(tpchgen.NewLineItemGenerator(inv.ScaleFactor, inv.Part, inv.NumParts))
		},
	}
	Part = &TableFunc{
		Name:   "tpch_part",
		Schema: tpcharrow.PartSchema,
		iterator: func(inv Invocation) tpcharrow.RecordIterator {
			return tpcharrow.NewPartArrow(tpchgen.NewPartGenerator(inv.ScaleFactor, inv.Part, inv.NumParts))
		},
	}
	PartSupp = &TableFunc{
		Name:   "tpch_partsupp",
		Schema: tpcharrow.PartSuppSchema,
		iterator: func(inv Invocation) tpcharrow.RecordIterator {
			return tpcharrow.NewPartSuppArrow(tpchgen.NewPartSuppGenerator(inv.ScaleFactor, inv.Part, inv.NumParts))
		},
	}
	Supplier = &TableFunc{
		Name:   "tpch_supplier",
		Schema: tpcharrow.SupplierSchema,
		iterator: func(inv Invocation) tpcharrow.RecordIterator {
			return tpcharrow.NewSupplierArrow(tpchgen.NewSupplierGenerator(inv.ScaleFactor, inv.Part, inv.NumParts))
		},
	}
	Region = &TableFunc{
		Name:   "tpch_region",
		Schema: tpcharrow.RegionSchema,
		iterator: func(inv Invocation) tpcharrow.RecordIterator {
			return tpcharrow.NewRegionArrow(tpchgen.NewRegionGenerator(inv.ScaleFactor, inv.Part, inv.NumParts))
		},
	}
)

// All lists the table functions in registration order.
var All = []*TableFunc{
	Nation,
	Customer,
	Orders,
	LineItem,
	Part,
	PartSupp,
	Supplier,
	Region,
}

// Lookup finds a table function by its registration name.
func Lookup(name string) (*TableFunc, bool) {
	for _, f := range All {
		if f.Name == name {
			return f, true
		}
	}
	return nil, false
}
