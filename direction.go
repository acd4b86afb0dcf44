package intrusive

// Direction selects one of the two links of a node. In ordered containers it
// doubles as the sort order: Prev is the smaller side, Next the greater one.
type Direction int8

const (
	// Prev walks toward the head of a container (the smaller side of an
	// ordered one).
	Prev Direction = iota
	// Next walks toward the tail of a container (the greater side of an
	// ordered one).
	Next
)

// Opposite returns the other direction.
func (d Direction) Opposite() Direction {
	return d ^ 1
}

// Weight maps a direction to its comparison sign: -1 for Prev, +1 for Next.
func (d Direction) Weight() int8 {
	if d == Prev {
		return -1
	}
	return 1
}

// DirectionOf maps a comparison result to a direction: negative to Prev,
// positive to Next. It is the inverse of Weight for nonzero arguments.
func DirectionOf(ordering int) Direction {
	if ordering < 0 {
		return Prev
	}
	return Next
}

func (d Direction) String() string {
	if d == Prev {
		return "prev"
	}
	return "next"
}
