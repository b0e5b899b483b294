package matching

// OrderIndex maps an order id to the side and price of the level it rests
// in, so cancels and executions that arrive keyed only by id can locate
// the order without scanning. It is a non-owning lookup table; the books
// own the orders.
type OrderIndex struct {
	locations map[uint64]orderLocation
}

type orderLocation struct {
	side  Side
	price uint64
}

func NewOrderIndex() *OrderIndex {
	return &OrderIndex{
		locations: make(map[uint64]orderLocation),
	}
}

func (idx *OrderIndex) Insert(orderID uint64, side Side, price uint64) {
	idx.locations[orderID] = orderLocation{side: side, price: price}
}

func (idx *OrderIndex) Remove(orderID uint64) {
	delete(idx.locations, orderID)
}

func (idx *OrderIndex) Lookup(orderID uint64) (Side, uint64, bool) {
	loc, found := idx.locations[orderID]
	return loc.side, loc.price, found
}

func (idx *OrderIndex) Size() int {
	return len(idx.locations)
}
