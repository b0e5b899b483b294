package matching

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/quantfeed/pitchbook/config"
)

// OrderBook holds both sides of one instrument's limit order book plus the
// order index used to resolve cancels and executions by id.
//
// Every order resting in a side book has exactly one index entry and vice
// versa, except inside an in-progress call — the embedded RWMutex makes
// each mutation atomic with respect to readers, so the intermediate state
// of a crossing walk is never observable.
type OrderBook struct {
	sync.RWMutex

	Symbol string
	Bids   *Book
	Asks   *Book

	tradeBook  *TradeBook
	orderIndex *OrderIndex
}

func NewOrderBook(symbol string, tradeBook *TradeBook) *OrderBook {
	return &OrderBook{
		Symbol:     symbol,
		Bids:       NewBook(SideBuy),
		Asks:       NewBook(SideSell),
		tradeBook:  tradeBook,
		orderIndex: NewOrderIndex(),
	}
}

func (ob *OrderBook) bookFor(side Side) *Book {
	if side == SideBuy {
		return ob.Bids
	}
	return ob.Asks
}

// Add crosses the incoming order against the contra side in price-time
// priority and rests any remainder at its own price. Levels are visited
// best price first; exhausted (zero volume) levels are skipped, not
// removed. Within a level matching is strict FIFO. Generated trades are
// entered into the trade book and returned.
func (ob *OrderBook) Add(o *Order) []*Trade {
	ob.Lock()
	defer ob.Unlock()

	trades := []*Trade{}

	if _, _, found := ob.orderIndex.Lookup(o.ID); found {
		config.Logger.Errorf("[pitchbook.orderbook] %s: %v: %d dropped", ob.Symbol, ErrDuplicateOrder, o.ID)
		return trades
	}

	contra := ob.Asks
	own := ob.Bids
	if o.Side == SideSell {
		contra = ob.Bids
		own = ob.Asks
	}

	it := contra.Iterator()
	var advance func() bool
	if o.Side == SideBuy {
		advance = it.Next
	} else {
		it.End()
		advance = it.Prev
	}

	for o.Volume > 0 && advance() {
		level := it.Level()
		if level.Volume() == 0 {
			continue
		}
		if o.Side == SideBuy && level.Price > o.Price {
			break
		}
		if o.Side == SideSell && level.Price < o.Price {
			break
		}

		for o.Volume > 0 && !level.Empty() {
			resting := level.Top()

			qty := o.Volume
			if resting.Volume < qty {
				qty = resting.Volume
			}

			level.fill(resting, qty)
			o.Volume -= qty

			trade := &Trade{
				Symbol:       ob.Symbol,
				Price:        level.Price,
				Volume:       qty,
				MakerOrderID: resting.ID,
				TakerOrderID: o.ID,
			}
			ob.tradeBook.Enter(trade)
			trades = append(trades, trade)

			config.Logger.Debugf("[pitchbook.orderbook] %s trade %d @ %d (maker %d, taker %d)",
				ob.Symbol, qty, level.Price, resting.ID, o.ID)

			if resting.Filled() {
				level.Remove(resting.ID)
				ob.orderIndex.Remove(resting.ID)
			}
		}
	}

	if o.Volume > 0 {
		own.Add(o)
		ob.orderIndex.Insert(o.ID, o.Side, o.Price)
	}

	return trades
}

// Cancel removes the resting order with the given id from its level and
// drops its index entry. Unknown ids leave the book unchanged.
func (ob *OrderBook) Cancel(orderID uint64) error {
	ob.Lock()
	defer ob.Unlock()

	side, price, found := ob.orderIndex.Lookup(orderID)
	if !found {
		return fmt.Errorf("%w: cancel %d", ErrOrderNotFound, orderID)
	}

	if _, err := ob.bookFor(side).Remove(price, orderID); err != nil {
		// The index pointed at a level that does not hold the order: the
		// books and the index have diverged.
		config.Logger.Errorf("[pitchbook.orderbook] %s index out of sync on cancel %d: %v", ob.Symbol, orderID, err)
		return err
	}

	ob.orderIndex.Remove(orderID)
	return nil
}

// Execute applies a feed-reported execution of qty shares against the
// resting order with the given id, removing the order when it is filled.
func (ob *OrderBook) Execute(orderID, qty uint64) error {
	ob.Lock()
	defer ob.Unlock()

	side, price, found := ob.orderIndex.Lookup(orderID)
	if !found {
		return fmt.Errorf("%w: execute %d", ErrOrderNotFound, orderID)
	}

	book := ob.bookFor(side)
	level, ok := book.Level(price)
	if !ok {
		config.Logger.Errorf("[pitchbook.orderbook] %s index out of sync on execute %d: missing level %d", ob.Symbol, orderID, price)
		return fmt.Errorf("%w: execute %d", ErrOrderNotFound, orderID)
	}
	resting, ok := level.Find(orderID)
	if !ok {
		config.Logger.Errorf("[pitchbook.orderbook] %s index out of sync on execute %d: not in level %d", ob.Symbol, orderID, price)
		return fmt.Errorf("%w: execute %d", ErrOrderNotFound, orderID)
	}

	if qty > resting.Volume {
		return fmt.Errorf("%w: execute %d for %d, resting %d", ErrExceedsVolume, orderID, qty, resting.Volume)
	}

	level.fill(resting, qty)
	if resting.Filled() {
		level.Remove(orderID)
		ob.orderIndex.Remove(orderID)
	}
	return nil
}

// BestBid returns the highest bid price key, zero when the side is empty.
func (ob *OrderBook) BestBid() uint64 {
	ob.RLock()
	defer ob.RUnlock()
	return ob.Bids.BestPrice()
}

// BestAsk returns the lowest ask price key, zero when the side is empty.
func (ob *OrderBook) BestAsk() uint64 {
	ob.RLock()
	defer ob.RUnlock()
	return ob.Asks.BestPrice()
}

// VolumeAtPriceLevel returns the aggregate volume resting at the given
// side and price, zero for absent or exhausted levels.
func (ob *OrderBook) VolumeAtPriceLevel(side Side, price uint64) uint64 {
	ob.RLock()
	defer ob.RUnlock()
	return ob.bookFor(side).VolumeAtPriceLevel(price)
}

// RestingOrders is the number of orders tracked by the order index.
func (ob *OrderBook) RestingOrders() int {
	ob.RLock()
	defer ob.RUnlock()
	return ob.orderIndex.Size()
}

// Depth returns up to limit non-empty (price, volume) pairs per side in
// display units, best price first on both sides.
func (ob *OrderBook) Depth(limit int) (bids, asks [][]decimal.Decimal) {
	ob.RLock()
	defer ob.RUnlock()

	bids = make([][]decimal.Decimal, 0, limit)
	asks = make([][]decimal.Decimal, 0, limit)

	bit := ob.Bids.Iterator()
	bit.End()
	for bit.Prev() && len(bids) < limit {
		level := bit.Level()
		if level.Volume() == 0 {
			continue
		}
		bids = append(bids, []decimal.Decimal{
			decimal.New(int64(level.Price), config.App.PriceExponent),
			decimal.New(int64(level.Volume()), 0),
		})
	}

	ait := ob.Asks.Iterator()
	for ait.Next() && len(asks) < limit {
		level := ait.Level()
		if level.Volume() == 0 {
			continue
		}
		asks = append(asks, []decimal.Decimal{
			decimal.New(int64(level.Price), config.App.PriceExponent),
			decimal.New(int64(level.Volume()), 0),
		})
	}

	return bids, asks
}
