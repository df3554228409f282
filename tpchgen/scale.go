package tpchgen

import "time"

// Row-count bases per unit of scale factor. Nation and region are
// fixed-size regardless of scale.
const (
	NationRowCount   = 25
	RegionRowCount   = 5
	SupplierBase     = 10_000
	CustomerBase     = 150_000
	PartBase         = 200_000
	OrderBase        = 1_500_000
	SuppliersPerPart = 4
	ClerksPerScale   = 1_000

	// Orders reference only customers whose key is not divisible by
	// this; a third of customers never place orders.
	customerMortality = 3
)

// scaledRowCount truncates base*sf, matching the reference generator.
func scaledRowCount(base int64, scaleFactor float64) int64 {
	return int64(float64(base) * scaleFactor)
}

// partitionBounds splits total rows into numParts contiguous chunks,
// remainder rows going to the leading parts. part is 1-based. A zero
// part or numParts means whole-table generation; validation upstream
// accepts zero without pinning its meaning, and this is where it gets
// one.
func partitionBounds(total, part, numParts int64) (startIndex, count int64) {
	if part <= 0 || numParts <= 1 {
		return 0, total
	}
	if part > numParts {
		return total, 0
	}
	base := total / numParts
	extra := total % numParts
	count = base
	if part <= extra {
		count++
	}
	startIndex = (part-1)*base + min(part-1, extra)
	return startIndex, count
}

// Generation date window, as in dbgen: orders span 1992-01-01 through
// 1998-08-02 and line item dates hang off the order date. The "current
// date" splits shipped from open line items.
var (
	minOrderDate = epochDays(1992, time.January, 1)
	currentDate  = epochDays(1995, time.June, 17)
)

// Latest order date leaves room for the longest ship+receipt lag.
const orderDateSpan = 2557 - 151 - 1

func epochDays(year int, month time.Month, day int) int32 {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return int32(t.Unix() / 86400)
}

// makeSparseKey spreads order keys so only 8 of every 32 key values
// exist, as dbgen does.
func makeSparseKey(index int64) int64 {
	return (index >> 3 << 5) | (index & 7)
}

// partRetailPrice is dbgen's deterministic price formula, in cents.
func partRetailPrice(partKey int64) int64 {
	return 90000 + ((partKey / 10) % 20001) + 100*(partKey%1000)
}

// partSupplierKey selects the i-th (0-based) supplier for a part,
// dbgen's part/supplier bridge.
func partSupplierKey(partKey, i, supplierCount int64) int64 {
	return (partKey + i*(supplierCount/SuppliersPerPart+(partKey-1)/supplierCount)) % supplierCount + 1
}

func centsToDollars(cents int64) float64 {
	return float64(cents) / 100
}
