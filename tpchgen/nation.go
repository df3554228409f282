package tpchgen

// Nation is one row of the nation table.
type Nation struct {
	NationKey int64
	Name      string
	RegionKey int64
	Comment   string
}

// NationGenerator produces the 25 fixed nations, or a partition of
// them. Scale factor does not change the nation table.
type NationGenerator struct {
	startIndex int64
	rowCount   int64
	index      int64

	commentRand randStream
}

const nationCommentAverage = 72

func NewNationGenerator(scaleFactor float64, part, numParts int64) *NationGenerator {
	g := &NationGenerator{}
	g.startIndex, g.rowCount = partitionBounds(NationRowCount, part, numParts)
	g.Reset()
	return g
}

// Reset rewinds the generator to the start of its partition.
func (g *NationGenerator) Reset() {
	g.index = 0
	g.commentRand = newRandStream(606179079, textUses)
	g.commentRand.advanceRows(g.startIndex)
}

// Next returns the next row, or ok=false when the partition is done.
func (g *NationGenerator) Next() (Nation, bool) {
	if g.index >= g.rowCount {
		return Nation{}, false
	}
	key := g.startIndex + g.index
	row := Nation{
		NationKey: key,
		Name:      nations.at(int(key)),
		RegionKey: nationRegions[key],
		Comment:   randomText(&g.commentRand, nationCommentAverage),
	}
	g.commentRand.rowFinished()
	g.index++
	return row, true
}
