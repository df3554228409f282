package tablefunc

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/pingcap/errors"
)

// TableWriter persists one materialized relation. The writer package
// provides parquet and csv implementations over local and cloud
// storage.
type TableWriter interface {
	WriteTable(name string, rec arrow.Record) error
}

// MetaSchema is the schema of the summary table returned by
// Orchestrator.Tables: a single utf8 column naming each generated
// relation.
var MetaSchema = arrow.NewSchema(
	[]arrow.Field{{Name: "table_name", Type: arrow.BinaryTypes.String}},
	nil,
)

// Orchestrator generates all eight relations in one call. Depending on
// the to-disk flag it either registers them as providers in Catalog or
// hands them to Writer.
type Orchestrator struct {
	Catalog Catalog
	// Writer is consulted only when a call asks for disk output. Nil
	// without such calls is fine.
	Writer TableWriter
}

// Tables generates every relation at the given scale factor and
// returns a summary table listing the generated relation names.
//
// Accepted positional literals:
//
//	(scale_factor FLOAT64 [, to_disk BOOL [, ignored STRING]])
//
// A wrongly typed optional literal falls back to its default (false,
// resp. ""), matching the lenient coercion of the optional tail. When
// to_disk is false each relation is registered in the catalog; when
// true each relation is written through Writer instead. The flag alone
// selects disk output: an empty or absent path literal does not fall
// back to catalog registration, since output placement lives in the
// writer's configuration. A mid-run failure aborts immediately without
// undoing relations already registered or written.
func (o *Orchestrator) Tables(args ...any) (*Table, error) {
	if len(args) == 0 {
		return nil, invalidArgf("scale_factor is required")
	}
	sf, ok := args[0].(float64)
	if !ok {
		return nil, invalidArgf("scale_factor must be a float64 literal, got %T", args[0])
	}

	toDisk := false
	if len(args) > 1 {
		toDisk, _ = args[1].(bool)
	}
	// The third literal is accepted for call-site compatibility; output
	// placement lives in the writer's own configuration.
	if len(args) > 3 {
		return nil, invalidArgf("at most 3 arguments accepted, got %d", len(args))
	}

	if toDisk && o.Writer == nil {
		return nil, invalidArgf("disk output requested but no writer configured")
	}

	for _, f := range All {
		if err := o.runOne(f, sf, toDisk); err != nil {
			return nil, errors.Annotatef(err, "generate %s", f.Name)
		}
	}

	return metaTable()
}

func (o *Orchestrator) runOne(f *TableFunc, sf float64, toDisk bool) error {
	if toDisk {
		rec, err := Materialize(f.iterator(Invocation{ScaleFactor: sf, Part: 1, NumParts: 1}))
		if err != nil {
			return errors.Trace(err)
		}
		defer rec.Release()
		return errors.Trace(o.Writer.WriteTable(f.Name, rec))
	}

	t, err := f.Call(sf)
	if err != nil {
		return errors.Trace(err)
	}
	if err := o.Catalog.Register(f.Name, t); err != nil {
		t.Release()
		return errors.Trace(err)
	}
	return nil
}

func metaTable() (*Table, error) {
	b := array.NewRecordBuilder(memory.DefaultAllocator, MetaSchema)
	defer b.Release()
	names := b.Field(0).(*array.StringBuilder)
	for _, f := range All {
		names.Append(f.Name)
	}
	rec := b.NewRecord()
	defer rec.Release()
	return NewTable(rec), nil
}
