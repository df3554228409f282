package tpchgen

import "fmt"

// Part is one row of the part table.
type Part struct {
	PartKey     int64
	Name        string
	Mfgr        string
	Brand       string
	Type        string
	Size        int32
	Container   string
	RetailPrice float64
	Comment     string
}

// PartGenerator produces scaleFactor * 200000 parts, or a partition of
// them.
type PartGenerator struct {
	startIndex int64
	rowCount   int64
	index      int64

	nameRand      randStream
	mfgrRand      randStream
	brandRand     randStream
	typeRand      randStream
	sizeRand      randStream
	containerRand randStream
	commentRand   randStream
}

const partCommentAverage = 14

func NewPartGenerator(scaleFactor float64, part, numParts int64) *PartGenerator {
	g := &PartGenerator{}
	total := scaledRowCount(PartBase, scaleFactor)
	g.startIndex, g.rowCount = partitionBounds(total, part, numParts)
	g.Reset()
	return g
}

func (g *PartGenerator) Reset() {
	g.index = 0
	g.nameRand = newRandStream(709314158, 5)
	g.mfgrRand = newRandStream(1, 1)
	g.brandRand = newRandStream(46831694, 1)
	g.typeRand = newRandStream(1841581359, 3)
	g.sizeRand = newRandStream(1193163244, 1)
	g.containerRand = newRandStream(727633698, 2)
	g.commentRand = newRandStream(804159733, textUses)
	g.forEachStream(func(s *randStream) { s.advanceRows(g.startIndex) })
}

func (g *PartGenerator) forEachStream(f func(*randStream)) {
	for _, s := range []*randStream{
		&g.nameRand, &g.mfgrRand, &g.brandRand, &g.typeRand,
		&g.sizeRand, &g.containerRand, &g.commentRand,
	} {
		f(s)
	}
}

func (g *PartGenerator) Next() (Part, bool) {
	if g.index >= g.rowCount {
		return Part{}, false
	}
	partKey := g.startIndex + g.index + 1
	mfgr := g.mfgrRand.boundedInt(1, 5)
	brand := mfgr*10 + g.brandRand.boundedInt(1, 5)
	row := Part{
		PartKey:     partKey,
		Name:        partName(&g.nameRand),
		Mfgr:        fmt.Sprintf("Manufacturer#%d", mfgr),
		Brand:       fmt.Sprintf("Brand#%d", brand),
		Type:        partType(&g.typeRand),
		Size:        int32(g.sizeRand.boundedInt(1, 50)),
		Container:   partContainer(&g.containerRand),
		RetailPrice: centsToDollars(partRetailPrice(partKey)),
		Comment:     randomText(&g.commentRand, partCommentAverage),
	}
	g.forEachStream(func(s *randStream) { s.rowFinished() })
	g.index++
	return row, true
}
