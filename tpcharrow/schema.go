package tpcharrow

import "github.com/apache/arrow-go/v18/arrow"

// Fixed Arrow schemas for the eight TPC-H relations. Schemas are
// shared by reference: every batch of one adapter points at the same
// schema value.

func field(name string, typ arrow.DataType) arrow.Field {
	return arrow.Field{Name: name, Type: typ}
}

var (
	int64Type   = arrow.PrimitiveTypes.Int64
	int32Type   = arrow.PrimitiveTypes.Int32
	float64Type = arrow.PrimitiveTypes.Float64
	stringType  = arrow.BinaryTypes.String
	date32Type  = arrow.FixedWidthTypes.Date32
)

var NationSchema = arrow.NewSchema([]arrow.Field{
	field("n_nationkey", int64Type),
	field("n_name", stringType),
	field("n_regionkey", int64Type),
	field("n_comment", stringType),
}, nil)

var RegionSchema = arrow.NewSchema([]arrow.Field{
	field("r_regionkey", int64Type),
	field("r_name", stringType),
	field("r_comment", stringType),
}, nil)

var SupplierSchema = arrow.NewSchema([]arrow.Field{
	field("s_suppkey", int64Type),
	field("s_name", stringType),
	field("s_address", stringType),
	field("s_nationkey", int64Type),
	field("s_phone", stringType),
	field("s_acctbal", float64Type),
	field("s_comment", stringType),
}, nil)

var CustomerSchema = arrow.NewSchema([]arrow.Field{
	field("c_custkey", int64Type),
	field("c_name", stringType),
	field("c_address", stringType),
	field("c_nationkey", int64Type),
	field("c_phone", stringType),
	field("c_acctbal", float64Type),
	field("c_mktsegment", stringType),
	field("c_comment", stringType),
}, nil)

var PartSchema = arrow.NewSchema([]arrow.Field{
	field("p_partkey", int64Type),
	field("p_name", stringType),
	field("p_mfgr", stringType),
	field("p_brand", stringType),
	field("p_type", stringType),
	field("p_size", int32Type),
	field("p_container", stringType),
	field("p_retailprice", float64Type),
	field("p_comment", stringType),
}, nil)

var PartSuppSchema = arrow.NewSchema([]arrow.Field{
	field("ps_partkey", int64Type),
	field("ps_suppkey", int64Type),
	field("ps_availqty", int32Type),
	field("ps_supplycost", float64Type),
	field("ps_comment", stringType),
}, nil)

var OrdersSchema = arrow.NewSchema([]arrow.Field{
	field("o_orderkey", int64Type),
	field("o_custkey", int64Type),
	field("o_orderstatus", stringType),
	field("o_totalprice", float64Type),
	field("o_orderdate", date32Type),
	field("o_orderpriority", stringType),
	field("o_clerk", stringType),
	field("o_shippriority", int32Type),
	field("o_comment", stringType),
}, nil)

var LineItemSchema = arrow.NewSchema([]arrow.Field{
	field("l_orderkey", int64Type),
	field("l_partkey", int64Type),
	field("l_suppkey", int64Type),
	field("l_linenumber", int32Type),
	field("l_quantity", float64Type),
	field("l_extendedprice", float64Type),
	field("l_discount", float64Type),
	field("l_tax", float64Type),
	field("l_returnflag", stringType),
	field("l_linestatus", stringType),
	field("l_shipdate", date32Type),
	field("l_commitdate", date32Type),
	field("l_receiptdate", date32Type),
	field("l_shipinstruct", stringType),
	field("l_shipmode", stringType),
	field("l_comment", stringType),
}, nil)
