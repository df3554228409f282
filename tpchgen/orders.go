package tpchgen

import "fmt"

// Order is one row of the orders table.
type Order struct {
	OrderKey      int64
	CustKey       int64
	OrderStatus   string
	TotalPrice    float64
	OrderDate     int32 // days since the unix epoch
	OrderPriority string
	Clerk         string
	ShipPriority  int32
	Comment       string
}

const (
	orderCommentAverage = 49

	lineCountSeed = 1434868289
	minLineCount  = 1
	maxLineCount  = 7
)

// orderLineStreams are the line-level streams shared between the
// orders and lineitem generators. Orders replays them to price its
// lines; lineitem replays them to emit the lines themselves. Both
// advance by exactly one order row per order.
type orderLineStreams struct {
	lineCountRand randStream
	quantityRand  randStream
	discountRand  randStream
	taxRand       randStream
	partKeyRand   randStream64
	shipDateRand  randStream
}

func newOrderLineStreams() orderLineStreams {
	return orderLineStreams{
		lineCountRand: newRandStream(lineCountSeed, 1),
		quantityRand:  newRandStream(209208115, maxLineCount),
		discountRand:  newRandStream(554590007, maxLineCount),
		taxRand:       newRandStream(721958466, maxLineCount),
		partKeyRand:   newRandStream64(2095021727, maxLineCount),
		shipDateRand:  newRandStream(904914315, maxLineCount),
	}
}

func (ls *orderLineStreams) advanceRows(rows int64) {
	ls.lineCountRand.advanceRows(rows)
	ls.quantityRand.advanceRows(rows)
	ls.discountRand.advanceRows(rows)
	ls.taxRand.advanceRows(rows)
	ls.partKeyRand.advanceRows(rows)
	ls.shipDateRand.advanceRows(rows)
}

func (ls *orderLineStreams) rowFinished() {
	ls.lineCountRand.rowFinished()
	ls.quantityRand.rowFinished()
	ls.discountRand.rowFinished()
	ls.taxRand.rowFinished()
	ls.partKeyRand.rowFinished()
	ls.shipDateRand.rowFinished()
}

// OrdersGenerator produces scaleFactor * 1500000 orders, or a
// partition of them.
type OrdersGenerator struct {
	startIndex int64
	rowCount   int64
	index      int64

	customerCount int64
	partCount     int64
	clerkCount    int64

	lines         orderLineStreams
	custKeyRand   randStream64
	orderDateRand randStream
	priorityRand  randStream
	clerkRand     randStream
	commentRand   randStream
}

func NewOrdersGenerator(scaleFactor float64, part, numParts int64) *OrdersGenerator {
	g := &OrdersGenerator{}
	total := scaledRowCount(OrderBase, scaleFactor)
	g.startIndex, g.rowCount = partitionBounds(total, part, numParts)
	g.customerCount = max(scaledRowCount(CustomerBase, scaleFactor), customerMortality)
	g.partCount = max(scaledRowCount(PartBase, scaleFactor), 1)
	g.clerkCount = max(scaledRowCount(ClerksPerScale, scaleFactor), 1)
	g.Reset()
	return g
}

func (g *OrdersGenerator) Reset() {
	g.index = 0
	g.lines = newOrderLineStreams()
	g.custKeyRand = newRandStream64(851767375, 1)
	g.orderDateRand = newRandStream(1066728069, 1)
	g.priorityRand = newRandStream(1227283347, 1)
	g.clerkRand = newRandStream(1171034773, 1)
	g.commentRand = newRandStream(276090261, textUses)
	g.lines.advanceRows(g.startIndex)
	g.custKeyRand.advanceRows(g.startIndex)
	g.orderDateRand.advanceRows(g.startIndex)
	g.priorityRand.advanceRows(g.startIndex)
	g.clerkRand.advanceRows(g.startIndex)
	g.commentRand.advanceRows(g.startIndex)
}

// randomCustKey draws an ordering customer, skipping the third of
// customers that never order.
func randomCustKey(r *randStream64, customerCount int64) int64 {
	custKey := r.boundedInt(1, customerCount)
	delta := int64(1)
	for custKey%customerMortality == 0 {
		custKey += delta
		custKey = min(custKey, customerCount)
		delta = -delta
	}
	return custKey
}

func (g *OrdersGenerator) Next() (Order, bool) {
	if g.index >= g.rowCount {
		return Order{}, false
	}
	orderKey := makeSparseKey(g.startIndex + g.index + 1)
	orderDate := minOrderDate + int32(g.orderDateRand.boundedInt(0, orderDateSpan))

	// Price and classify the order from the same line streams the
	// lineitem generator will replay for this order.
	lineCount := g.lines.lineCountRand.boundedInt(minLineCount, maxLineCount)
	var totalPriceCents int64
	shippedCount := 0
	for i := int64(0); i < lineCount; i++ {
		quantity := g.lines.quantityRand.boundedInt(1, 50)
		discount := g.lines.discountRand.boundedInt(0, 10)
		tax := g.lines.taxRand.boundedInt(0, 8)
		partKey := g.lines.partKeyRand.boundedInt(1, g.partCount)
		extendedPrice := quantity * partRetailPrice(partKey)
		totalPriceCents += extendedPrice * (100 - discount) / 100 * (100 + tax) / 100
		shipDate := orderDate + int32(g.lines.shipDateRand.boundedInt(1, 121))
		if shipDate <= currentDate {
			shippedCount++
		}
	}
	status := "P"
	switch shippedCount {
	case 0:
		status = "O"
	case int(lineCount):
		status = "F"
	}

	row := Order{
		OrderKey:      orderKey,
		CustKey:       randomCustKey(&g.custKeyRand, g.customerCount),
		OrderStatus:   status,
		TotalPrice:    centsToDollars(totalPriceCents),
		OrderDate:     orderDate,
		OrderPriority: orderPriorities.pick(&g.priorityRand),
		Clerk:         fmt.Sprintf("Clerk#%09d", g.clerkRand.boundedInt(1, g.clerkCount)),
		ShipPriority:  0,
		Comment:       randomText(&g.commentRand, orderCommentAverage),
	}

	g.lines.rowFinished()
	g.custKeyRand.rowFinished()
	g.orderDateRand.rowFinished()
	g.priorityRand.rowFinished()
	g.clerkRand.rowFinished()
	g.commentRand.rowFinished()
	g.index++
	return row, true
}
