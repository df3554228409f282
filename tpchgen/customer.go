package tpchgen

import "fmt"

// Customer is one row of the customer table.
type Customer struct {
	CustKey    int64
	Name       string
	Address    string
	NationKey  int64
	Phone      string
	AcctBal    float64
	MktSegment string
	Comment    string
}

// CustomerGenerator produces scaleFactor * 150000 customers, or a
// partition of them.
type CustomerGenerator struct {
	startIndex int64
	rowCount   int64
	index      int64

	addressRand    randStream
	nationKeyRand  randStream
	phoneRand      randStream
	acctBalRand    randStream
	mktSegmentRand randStream
	commentRand    randStream
}

const (
	customerAddressAverage = 25
	customerCommentAverage = 73
)

func NewCustomerGenerator(scaleFactor float64, part, numParts int64) *CustomerGenerator {
	g := &CustomerGenerator{}
	total := scaledRowCount(CustomerBase, scaleFactor)
	g.startIndex, g.rowCount = partitionBounds(total, part, numParts)
	g.Reset()
	return g
}

func (g *CustomerGenerator) Reset() {
	g.index = 0
	g.addressRand = newRandStream(881155353, alphaNumericUses(customerAddressAverage))
	g.nationKeyRand = newRandStream(1489529863, 1)
	g.phoneRand = newRandStream(1521138112, phoneUses)
	g.acctBalRand = newRandStream(298370230, 1)
	g.mktSegmentRand = newRandStream(1140279430, 1)
	g.commentRand = newRandStream(1335826707, textUses)
	g.forEachStream(func(s *randStream) { s.advanceRows(g.startIndex) })
}

func (g *CustomerGenerator) forEachStream(f func(*randStream)) {
	for _, s := range []*randStream{
		&g.addressRand, &g.nationKeyRand, &g.phoneRand,
		&g.acctBalRand, &g.mktSegmentRand, &g.commentRand,
	} {
		f(s)
	}
}

func (g *CustomerGenerator) Next() (Customer, bool) {
	if g.index >= g.rowCount {
		return Customer{}, false
	}
	custKey := g.startIndex + g.index + 1
	nationKey := g.nationKeyRand.boundedInt(0, int64(nations.size())-1)
	row := Customer{
		CustKey:    custKey,
		Name:       fmt.Sprintf("Customer#%09d", custKey),
		Address:    randomAlphaNumeric(&g.addressRand, customerAddressAverage),
		NationKey:  nationKey,
		Phone:      randomPhone(&g.phoneRand, nationKey),
		AcctBal:    centsToDollars(g.acctBalRand.boundedInt(-99999, 999999)),
		MktSegment: marketSegments.pick(&g.mktSegmentRand),
		Comment:    randomText(&g.commentRand, customerCommentAverage),
	}
	g.forEachStream(func(s *randStream) { s.rowFinished() })
	g.index++
	return row, true
}
