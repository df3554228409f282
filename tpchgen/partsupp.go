package tpchgen

// PartSupp is one row of the partsupp table.
type PartSupp struct {
	PartKey    int64
	SuppKey    int64
	AvailQty   int32
	SupplyCost float64
	Comment    string
}

// PartSuppGenerator produces four supplier rows per part. Its
// partitioning follows the part table: a partition covers the
// suppliers of its slice of parts.
type PartSuppGenerator struct {
	startIndex int64
	rowCount   int64
	index      int64
	supplierNo int64

	supplierCount int64

	availQtyRand   randStream
	supplyCostRand randStream
	commentRand    randStream
}

const partSuppCommentAverage = 124

func NewPartSuppGenerator(scaleFactor float64, part, numParts int64) *PartSuppGenerator {
	g := &PartSuppGenerator{}
	total := scaledRowCount(PartBase, scaleFactor)
	g.startIndex, g.rowCount = partitionBounds(total, part, numParts)
	g.supplierCount = max(scaledRowCount(SupplierBase, scaleFactor), SuppliersPerPart)
	g.Reset()
	return g
}

func (g *PartSuppGenerator) Reset() {
	g.index = 0
	g.supplierNo = 0
	g.availQtyRand = newRandStream(1671059989, SuppliersPerPart)
	g.supplyCostRand = newRandStream(1051288424, SuppliersPerPart)
	g.commentRand = newRandStream(1961692154, SuppliersPerPart*textUses)
	g.forEachStream(func(s *randStream) { s.advanceRows(g.startIndex) })
}

func (g *PartSuppGenerator) forEachStream(f func(*randStream)) {
	for _, s := range []*randStream{&g.availQtyRand, &g.supplyCostRand, &g.commentRand} {
		f(s)
	}
}

// Next iterates part-major: all four suppliers of one part before the
// next part. The per-row stream budget is a part, not a partsupp row.
func (g *PartSuppGenerator) Next() (PartSupp, bool) {
	if g.index >= g.rowCount {
		return PartSupp{}, false
	}
	partKey := g.startIndex + g.index + 1
	row := PartSupp{
		PartKey:    partKey,
		SuppKey:    partSupplierKey(partKey, g.supplierNo, g.supplierCount),
		AvailQty:   int32(g.availQtyRand.boundedInt(1, 9999)),
		SupplyCost: centsToDollars(g.supplyCostRand.boundedInt(100, 100000)),
		Comment:    randomText(&g.commentRand, partSuppCommentAverage),
	}
	g.supplierNo++
	if g.supplierNo == SuppliersPerPart {
		g.supplierNo = 0
		g.index++
		g.forEachStream(func(s *randStream) { s.rowFinished() })
	}
	return row, true
}
