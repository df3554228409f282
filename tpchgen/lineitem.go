package tpchgen

// LineItem is one row of the lineitem table.
type LineItem struct {
	OrderKey      int64
	PartKey       int64
	SuppKey       int64
	LineNumber    int32
	Quantity      float64
	ExtendedPrice float64
	Discount      float64
	Tax           float64
	ReturnFlag    string
	LineStatus    string
	ShipDate      int32
	CommitDate    int32
	ReceiptDate   int32
	ShipInstruct  string
	ShipMode      string
	Comment       string
}

const lineCommentAverage = 27

// LineItemGenerator produces the line items of a partition of orders.
// Partitioning follows the orders table, so the union of all
// partitions is exactly the whole lineitem table even though per-part
// row counts vary with the per-order line counts.
type LineItemGenerator struct {
	startIndex int64
	orderCount int64
	index      int64

	partCount     int64
	supplierCount int64

	lines orderLineStreams

	orderDateRand    randStream
	supplierNoRand   randStream
	commitDateRand   randStream
	receiptDateRand  randStream
	returnedRand     randStream
	shipInstructRand randStream
	shipModeRand     randStream
	commentRand      randStream

	// state for the order currently being expanded
	orderKey   int64
	orderDate  int32
	lineCount  int64
	lineNumber int64
}

func NewLineItemGenerator(scaleFactor float64, part, numParts int64) *LineItemGenerator {
	g := &LineItemGenerator{}
	total := scaledRowCount(OrderBase, scaleFactor)
	g.startIndex, g.orderCount = partitionBounds(total, part, numParts)
	g.partCount = max(scaledRowCount(PartBase, scaleFactor), 1)
	g.supplierCount = max(scaledRowCount(SupplierBase, scaleFactor), 1)
	g.Reset()
	return g
}

func (g *LineItemGenerator) Reset() {
	g.index = 0
	g.lineNumber = 0
	g.lineCount = 0
	g.lines = newOrderLineStreams()
	g.orderDateRand = newRandStream(1066728069, 1)
	g.supplierNoRand = newRandStream(1769349045, maxLineCount)
	g.commitDateRand = newRandStream(373135028, maxLineCount)
	g.receiptDateRand = newRandStream(717419739, maxLineCount)
	g.returnedRand = newRandStream(1095462486, maxLineCount)
	g.shipInstructRand = newRandStream(1371272478, maxLineCount)
	g.shipModeRand = newRandStream(675466456, maxLineCount)
	g.commentRand = newRandStream(1808217256, maxLineCount*textUses)
	g.lines.advanceRows(g.startIndex)
	g.forEachStream(func(s *randStream) { s.advanceRows(g.startIndex) })
}

func (g *LineItemGenerator) forEachStream(f func(*randStream)) {
	for _, s := range []*randStream{
		&g.orderDateRand, &g.supplierNoRand, &g.commitDateRand,
		&g.receiptDateRand, &g.returnedRand, &g.shipInstructRand,
		&g.shipModeRand, &g.commentRand,
	} {
		f(s)
	}
}

func (g *LineItemGenerator) Next() (LineItem, bool) {
	if g.lineNumber >= g.lineCount {
		// Close out the previous order's streams and open the next.
		if g.lineCount > 0 {
			g.lines.rowFinished()
			g.forEachStream(func(s *randStream) { s.rowFinished() })
			g.index++
		}
		if g.index >= g.orderCount {
			return LineItem{}, false
		}
		g.orderKey = makeSparseKey(g.startIndex + g.index + 1)
		g.orderDate = minOrderDate + int32(g.orderDateRand.boundedInt(0, orderDateSpan))
		g.lineCount = g.lines.lineCountRand.boundedInt(minLineCount, maxLineCount)
		g.lineNumber = 0
	}

	quantity := g.lines.quantityRand.boundedInt(1, 50)
	discount := g.lines.discountRand.boundedInt(0, 10)
	tax := g.lines.taxRand.boundedInt(0, 8)
	partKey := g.lines.partKeyRand.boundedInt(1, g.partCount)
	shipDate := g.orderDate + int32(g.lines.shipDateRand.boundedInt(1, 121))
	commitDate := g.orderDate + int32(g.commitDateRand.boundedInt(30, 90))
	receiptDate := shipDate + int32(g.receiptDateRand.boundedInt(1, 30))

	returnFlag := "N"
	if receiptDate <= currentDate {
		returnFlag = returnFlags.pick(&g.returnedRand)
	} else {
		g.returnedRand.next()
	}
	lineStatus := "O"
	if shipDate <= currentDate {
		lineStatus = "F"
	}

	supplierNo := g.supplierNoRand.boundedInt(0, SuppliersPerPart-1)

	row := LineItem{
		OrderKey:      g.orderKey,
		PartKey:       partKey,
		SuppKey:       partSupplierKey(partKey, supplierNo, g.supplierCount),
		LineNumber:    int32(g.lineNumber + 1),
		Quantity:      float64(quantity),
		ExtendedPrice: centsToDollars(quantity * partRetailPrice(partKey)),
		Discount:      float64(discount) / 100,
		Tax:           float64(tax) / 100,
		ReturnFlag:    returnFlag,
		LineStatus:    lineStatus,
		ShipDate:      shipDate,
		CommitDate:    commitDate,
		ReceiptDate:   receiptDate,
		ShipInstruct:  shipInstructions.pick(&g.shipInstructRand),
		ShipMode:      shipModes.pick(&g.shipModeRand),
		Comment:       randomText(&g.commentRand, lineCommentAverage),
	}
	g.lineNumber++
	return row, true
}
