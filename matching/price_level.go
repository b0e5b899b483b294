package matching

import "fmt"

// PriceLevel is the FIFO queue of resting orders at one exact price.
// Insertion order is time priority. The aggregate volume is kept in sync
// with every mutation, so the invariant volume == sum(order volumes)
// holds between calls.
type PriceLevel struct {
	Price  uint64
	Orders []*Order

	volume uint64
}

func NewPriceLevel(price uint64) *PriceLevel {
	return &PriceLevel{
		Price:  price,
		Orders: make([]*Order, 0),
	}
}

// Add appends the order to the FIFO tail.
func (p *PriceLevel) Add(o *Order) {
	p.Orders = append(p.Orders, o)
	p.volume += o.Volume
}

// Remove deletes the order with the given id and subtracts its remaining
// volume from the aggregate.
func (p *PriceLevel) Remove(orderID uint64) (*Order, error) {
	for i, o := range p.Orders {
		if o.ID == orderID {
			p.Orders = append(p.Orders[:i], p.Orders[i+1:]...)
			p.volume -= o.Volume
			return o, nil
		}
	}
	return nil, fmt.Errorf("%w: %d at price %d", ErrOrderNotFound, orderID, p.Price)
}

// Find returns the resting order with the given id, if present.
func (p *PriceLevel) Find(orderID uint64) (*Order, bool) {
	for _, o := range p.Orders {
		if o.ID == orderID {
			return o, true
		}
	}
	return nil, false
}

// Top returns the order at the head of the queue, nil when empty.
func (p *PriceLevel) Top() *Order {
	if p.Empty() {
		return nil
	}
	return p.Orders[0]
}

func (p *PriceLevel) Empty() bool {
	return len(p.Orders) == 0
}

func (p *PriceLevel) Size() int {
	return len(p.Orders)
}

// Volume is the aggregate resting volume at this level.
func (p *PriceLevel) Volume() uint64 {
	return p.volume
}

// fill reduces the resting order and the aggregate by qty. The caller
// guarantees qty <= o.Volume and that o is a member of this level.
func (p *PriceLevel) fill(o *Order, qty uint64) {
	o.Volume -= qty
	p.volume -= qty
}
