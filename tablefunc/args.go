package tablefunc

// Invocation holds the decoded positional arguments of a single-table
// function call.
type Invocation struct {
	ScaleFactor float64
	// Part and NumParts select a 1-based slice of the table. Both
	// default to 1, meaning the whole table.
	Part     int64
	NumParts int64
}

// ParseArgs decodes the positional literals accepted by every
// single-table function:
//
//	(scale_factor FLOAT64 [, part INT64, num_parts INT64])
//
// The scale factor is mandatory. The partition pair is optional but
// coupled: supplying part without num_parts is rejected, as are
// negative values for either.
func ParseArgs(args []any) (Invocation, error) {
	inv := Invocation{Part: 1, NumParts: 1}

	if len(args) == 0 {
		return inv, invalidArgf("scale_factor is required")
	}
	sf, ok := args[0].(float64)
	if !ok {
		return inv, invalidArgf("scale_factor must be a float64 literal, got %T", args[0])
	}
	inv.ScaleFactor = sf

	if len(args) == 1 {
		return inv, nil
	}
	if len(args) == 2 {
		return inv, invalidArgf("part requires num_parts")
	}
	if len(args) > 3 {
		return inv, invalidArgf("at most 3 arguments accepted, got %d", len(args))
	}

	part, ok := args[1].(int64)
	if !ok {
		return inv, invalidArgf("part must be an int64 literal, got %T", args[1])
	}
	numParts, ok := args[2].(int64)
	if !ok {
		return inv, invalidArgf("num_parts must be an int64 literal, got %T", args[2])
	}
	if part < 0 {
		return inv, invalidArgf("part must be non-negative, got %d", part)
	}
	if numParts < 0 {
		return inv, invalidArgf("num_parts must be non-negative, got %d", numParts)
	}
	inv.Part = part
	inv.NumParts = numParts
	return inv, nil
}
