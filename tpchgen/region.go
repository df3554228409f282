package tpchgen

// Region is one row of the region table.
type Region struct {
	RegionKey int64
	Name      string
	Comment   string
}

// RegionGenerator produces the five fixed regions, or a partition of
// them.
type RegionGenerator struct {
	startIndex int64
	rowCount   int64
	index      int64

	commentRand randStream
}

const regionCommentAverage = 72

func NewRegionGenerator(scaleFactor float64, part, numParts int64) *RegionGenerator {
	g := &RegionGenerator{}
	g.startIndex, g.rowCount = partitionBounds(RegionRowCount, part, numParts)
	g.Reset()
	return g
}

func (g *RegionGenerator) Reset() {
	g.index = 0
	g.commentRand = newRandStream(1500869201, textUses)
	g.commentRand.advanceRows(g.startIndex)
}

func (g *RegionGenerator) Next() (Region, bool) {
	if g.index >= g.rowCount {
		return Region{}, false
	}
	key := g.startIndex + g.index
	row := Region{
		RegionKey: key,
		Name:      regions.at(int(key)),
		Comment:   randomText(&g.commentRand, regionCommentAverage),
	}
	g.commentRand.rowFinished()
	g.index++
	return row, true
}
