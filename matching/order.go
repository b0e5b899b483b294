package matching

type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// Opposite returns the contra side.
func (s Side) Opposite() Side {
	if s == SideBuy {
		return SideSell
	}
	return SideBuy
}

// Order is the atomic unit traded. ID is immutable for the order's lifetime;
// Volume decreases monotonically as the order is matched and the order is
// removed from its level and the order index when it reaches zero.
type Order struct {
	ID          uint64
	Side        Side
	Price       uint64 // minimum price increments
	Volume      uint64 // unfilled shares
	Participant string
}

func (o *Order) Filled() bool {
	return o.Volume == 0
}
