package tpchgen

import (
	"fmt"
	"strings"
)

// Supplier is one row of the supplier table.
type Supplier struct {
	SuppKey   int64
	Name      string
	Address   string
	NationKey int64
	Phone     string
	AcctBal   float64
	Comment   string
}

// SupplierGenerator produces scaleFactor * 10000 suppliers, or a
// partition of them.
type SupplierGenerator struct {
	startIndex int64
	rowCount   int64
	index      int64

	addressRand   randStream
	nationKeyRand randStream
	phoneRand     randStream
	acctBalRand   randStream
	commentRand   randStream
	bbbRand       randStream
	bbbKindRand   randStream
	bbbOffsetRand randStream
}

const (
	supplierAddressAverage = 25
	supplierCommentAverage = 63

	// Better Business Bureau remarks: on average ten per 10000
	// suppliers, half complaints and half recommendations.
	bbbPerScaleBase = 10
	bbbBase         = "Customer "
	bbbComplaint    = "Complaints"
	bbbRecommend    = "Recommends"
)

func NewSupplierGenerator(scaleFactor float64, part, numParts int64) *SupplierGenerator {
	g := &SupplierGenerator{}
	total := scaledRowCount(SupplierBase, scaleFactor)
	g.startIndex, g.rowCount = partitionBounds(total, part, numParts)
	g.Reset()
	return g
}

func (g *SupplierGenerator) Reset() {
	g.index = 0
	g.addressRand = newRandStream(1335826707, alphaNumericUses(supplierAddressAverage))
	g.nationKeyRand = newRandStream(706178559, 1)
	g.phoneRand = newRandStream(884434366, phoneUses)
	g.acctBalRand = newRandStream(962338209, 1)
	g.commentRand = newRandStream(1341315363, textUses)
	g.bbbRand = newRandStream(202794285, 1)
	g.bbbKindRand = newRandStream(753643799, 1)
	g.bbbOffsetRand = newRandStream(263032577, 1)
	g.forEachStream(func(s *randStream) { s.advanceRows(g.startIndex) })
}

func (g *SupplierGenerator) forEachStream(f func(*randStream)) {
	for _, s := range []*randStream{
		&g.addressRand, &g.nationKeyRand, &g.phoneRand, &g.acctBalRand,
		&g.commentRand, &g.bbbRand, &g.bbbKindRand, &g.bbbOffsetRand,
	} {
		f(s)
	}
}

func (g *SupplierGenerator) Next() (Supplier, bool) {
	if g.index >= g.rowCount {
		return Supplier{}, false
	}
	suppKey := g.startIndex + g.index + 1
	nationKey := g.nationKeyRand.boundedInt(0, int64(nations.size())-1)

	comment := randomText(&g.commentRand, supplierCommentAverage)
	if g.bbbRand.boundedInt(1, SupplierBase) <= bbbPerScaleBase {
		comment = spliceBBB(comment, g.bbbKindRand.boundedInt(0, 1) == 0, &g.bbbOffsetRand)
	} else {
		// Burn the kind and offset draws so row positions stay fixed.
		g.bbbKindRand.next()
		g.bbbOffsetRand.next()
	}

	row := Supplier{
		SuppKey:   suppKey,
		Name:      fmt.Sprintf("Supplier#%09d", suppKey),
		Address:   randomAlphaNumeric(&g.addressRand, supplierAddressAverage),
		NationKey: nationKey,
		Phone:     randomPhone(&g.phoneRand, nationKey),
		AcctBal:   centsToDollars(g.acctBalRand.boundedInt(-99999, 999999)),
		Comment:   comment,
	}
	g.forEachStream(func(s *randStream) { s.rowFinished() })
	g.index++
	return row, true
}

// spliceBBB overwrites part of a supplier comment with a Better
// Business Bureau remark at a pseudo-random offset.
func spliceBBB(comment string, complaint bool, offsetRand *randStream) string {
	remark := bbbBase + bbbRecommend
	if complaint {
		remark = bbbBase + bbbComplaint
	}
	if len(comment) <= len(remark) {
		offsetRand.next()
		return remark[:len(comment)]
	}
	offset := offsetRand.boundedInt(0, int64(len(comment)-len(remark)))
	var b strings.Builder
	b.Grow(len(comment))
	b.WriteString(comment[:offset])
	b.WriteString(remark)
	b.WriteString(comment[int(offset)+len(remark):])
	return b.String()
}
