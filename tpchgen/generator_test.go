package tpchgen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func countNations(g *NationGenerator) int64 {
	var n int64
	for _, ok := g.Next(); ok; _, ok = g.Next() {
		n++
	}
	return n
}

func TestFixedTableRowCounts(t *testing.T) {
	require.Equal(t, int64(25), countNations(NewNationGenerator(1, 1, 1)))
	// Scale factor is irrelevant for nation and region.
	require.Equal(t, int64(25), countNations(NewNationGenerator(100, 1, 1)))

	var regions int64
	g := NewRegionGenerator(0.01, 1, 1)
	for _, ok := g.Next(); ok; _, ok = g.Next() {
		regions++
	}
	require.Equal(t, int64(5), regions)
}

func TestScaledTableRowCounts(t *testing.T) {
	const sf = 0.01

	var suppliers int64
	sg := NewSupplierGenerator(sf, 1, 1)
	for _, ok := sg.Next(); ok; _, ok = sg.Next() {
		suppliers++
	}
	require.Equal(t, int64(100), suppliers)

	var customers int64
	cg := NewCustomerGenerator(sf, 1, 1)
	for _, ok := cg.Next(); ok; _, ok = cg.Next() {
		customers++
	}
	require.Equal(t, int64(1500), customers)

	var parts int64
	pg := NewPartGenerator(sf, 1, 1)
	for _, ok := pg.Next(); ok; _, ok = pg.Next() {
		parts++
	}
	require.Equal(t, int64(2000), parts)

	var partsupps int64
	psg := NewPartSuppGenerator(sf, 1, 1)
	for _, ok := psg.Next(); ok; _, ok = psg.Next() {
		partsupps++
	}
	require.Equal(t, int64(8000), partsupps)

	var orders int64
	og := NewOrdersGenerator(sf, 1, 1)
	for _, ok := og.Next(); ok; _, ok = og.Next() {
		orders++
	}
	require.Equal(t, int64(15000), orders)
}

func TestLineItemRowCountSF1(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full scale factor 1 generation in short mode")
	}

	var lines int64
	g := NewLineItemGenerator(1, 1, 1)
	for _, ok := g.Next(); ok; _, ok = g.Next() {
		lines++
	}
	require.Equal(t, int64(6_001_215), lines)
}

func TestOrdersDeterministic(t *testing.T) {
	a := NewOrdersGenerator(0.01, 1, 1)
	b := NewOrdersGenerator(0.01, 1, 1)
	for {
		ra, oka := a.Next()
		rb, okb := b.Next()
		require.Equal(t, oka, okb)
		if !oka {
			break
		}
		require.Equal(t, ra, rb)
	}
}

func TestResetReplaysIdentically(t *testing.T) {
	g := NewCustomerGenerator(0.01, 2, 4)
	var first []Customer
	for row, ok := g.Next(); ok; row, ok = g.Next() {
		first = append(first, row)
	}
	require.NotEmpty(t, first)

	g.Reset()
	var second []Customer
	for row, ok := g.Next(); ok; row, ok = g.Next() {
		second = append(second, row)
	}
	require.Equal(t, first, second)
}

// Concatenating every partition must reproduce the whole table, row
// for row.
func TestPartitionUnionEqualsWholeTable(t *testing.T) {
	const (
		sf       = 0.01
		numParts = 4
	)

	var whole []Order
	wg := NewOrdersGenerator(sf, 1, 1)
	for row, ok := wg.Next(); ok; row, ok = wg.Next() {
		whole = append(whole, row)
	}

	var union []Order
	for part := int64(1); part <= numParts; part++ {
		pg := NewOrdersGenerator(sf, part, numParts)
		for row, ok := pg.Next(); ok; row, ok = pg.Next() {
			union = append(union, row)
		}
	}
	require.Equal(t, whole, union)
}

func TestLineItemPartitionUnionEqualsWholeTable(t *testing.T) {
	const (
		sf       = 0.01
		numParts = 3
	)

	var whole []LineItem
	wg := NewLineItemGenerator(sf, 1, 1)
	for row, ok := wg.Next(); ok; row, ok = wg.Next() {
		whole = append(whole, row)
	}

	var union []LineItem
	for part := int64(1); part <= numParts; part++ {
		pg := NewLineItemGenerator(sf, part, numParts)
		for row, ok := pg.Next(); ok; row, ok = pg.Next() {
			union = append(union, row)
		}
	}
	require.Equal(t, whole, union)
}

func TestLineItemsBelongToGeneratedOrders(t *testing.T) {
	const sf = 0.01

	orderKeys := map[int64]int{}
	og := NewOrdersGenerator(sf, 1, 1)
	for row, ok := og.Next(); ok; row, ok = og.Next() {
		orderKeys[row.OrderKey] = 0
	}

	lg := NewLineItemGenerator(sf, 1, 1)
	for row, ok := lg.Next(); ok; row, ok = lg.Next() {
		_, exists := orderKeys[row.OrderKey]
		require.True(t, exists, "line item references unknown order %d", row.OrderKey)
		orderKeys[row.OrderKey]++
		require.GreaterOrEqual(t, row.Quantity, float64(1))
		require.LessOrEqual(t, row.Quantity, float64(50))
	}

	for key, lines := range orderKeys {
		require.GreaterOrEqual(t, lines, 1, "order %d has no line items", key)
		require.LessOrEqual(t, lines, 7, "order %d has too many line items", key)
	}
}

func TestSupplierRowShape(t *testing.T) {
	g := NewSupplierGenerator(0.01, 1, 1)
	row, ok := g.Next()
	require.True(t, ok)
	require.Equal(t, int64(1), row.SuppKey)
	require.Equal(t, "Supplier#000000001", row.Name)
	require.GreaterOrEqual(t, row.NationKey, int64(0))
	require.Less(t, row.NationKey, int64(25))
	require.Len(t, row.Phone, 15)
}

func TestCustomerRowShape(t *testing.T) {
	g := NewCustomerGenerator(0.01, 1, 1)
	row, ok := g.Next()
	require.True(t, ok)
	require.Equal(t, int64(1), row.CustKey)
	require.Equal(t, "Customer#000000001", row.Name)
	require.Contains(t, []string{"AUTOMOBILE", "BUILDING", "FURNITURE", "MACHINERY", "HOUSEHOLD"}, row.MktSegment)
}

func TestPartSuppReferencesValidSuppliers(t *testing.T) {
	const sf = 0.01
	supplierCount := scaledRowCount(SupplierBase, sf)

	g := NewPartSuppGenerator(sf, 1, 1)
	var prevPart int64
	n := 0
	for row, ok := g.Next(); ok; row, ok = g.Next() {
		require.GreaterOrEqual(t, row.SuppKey, int64(1))
		require.LessOrEqual(t, row.SuppKey, supplierCount)
		require.GreaterOrEqual(t, row.PartKey, prevPart)
		prevPart = row.PartKey
		n++
	}
	require.Equal(t, 8000, n)
}

func TestOrderDatesInWindow(t *testing.T) {
	g := NewOrdersGenerator(0.01, 1, 1)
	for row, ok := g.Next(); ok; row, ok = g.Next() {
		require.GreaterOrEqual(t, row.OrderDate, minOrderDate)
		require.Less(t, row.OrderDate, minOrderDate+orderDateSpan+1)
	}
}
