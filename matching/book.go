package matching

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"
	"github.com/emirpasic/gods/utils"
)

// Book is one side of an order book: an ordered index from price to
// PriceLevel. Levels are kept in ascending price order; "best" means the
// maximum key on the bid side and the minimum key on the ask side.
//
// A level that empties out is left in the index on purpose — BestPrice and
// VolumeAtPriceLevel do not filter on volume. High cancel churn therefore
// grows the index until the book is rebuilt for the next session.
type Book struct {
	Side   Side
	levels *rbt.Tree
}

func NewBook(side Side) *Book {
	return &Book{
		Side:   side,
		levels: rbt.NewWith(utils.UInt64Comparator),
	}
}

// Add locates or creates the level at the order's price and appends the
// order to its FIFO tail.
func (b *Book) Add(o *Order) {
	var level *PriceLevel

	if value, found := b.levels.Get(o.Price); found {
		level = value.(*PriceLevel)
	} else {
		level = NewPriceLevel(o.Price)
		b.levels.Put(o.Price, level)
	}

	level.Add(o)
}

// Remove deletes the order from the level at the given price. The level
// entry stays in the index even when its aggregate volume reaches zero.
func (b *Book) Remove(price, orderID uint64) (*Order, error) {
	value, found := b.levels.Get(price)
	if !found {
		return nil, ErrOrderNotFound
	}
	return value.(*PriceLevel).Remove(orderID)
}

// Level returns the price level at the given price, if present.
func (b *Book) Level(price uint64) (*PriceLevel, bool) {
	value, found := b.levels.Get(price)
	if !found {
		return nil, false
	}
	return value.(*PriceLevel), true
}

// VolumeAtPriceLevel returns the aggregate volume resting at the given
// price, zero when the level does not exist or is empty.
func (b *Book) VolumeAtPriceLevel(price uint64) uint64 {
	value, found := b.levels.Get(price)
	if !found {
		return 0
	}
	return value.(*PriceLevel).Volume()
}

// BestPrice returns the extreme price key currently present — the maximum
// for a bid book, the minimum for an ask book — regardless of the level's
// volume. Zero when the side holds no levels at all.
func (b *Book) BestPrice() uint64 {
	var node *rbt.Node
	if b.Side == SideBuy {
		node = b.levels.Right()
	} else {
		node = b.levels.Left()
	}
	if node == nil {
		return 0
	}
	return node.Key.(uint64)
}

// Size is the number of level entries in the index, empty levels included.
func (b *Book) Size() int {
	return b.levels.Size()
}

// Iterator returns a bidirectional iterator over (price, level) pairs in
// ascending price order. It starts in a before-first position; use Next or
// Last to move onto an element.
func (b *Book) Iterator() LevelIterator {
	return LevelIterator{it: b.levels.Iterator()}
}

// LevelIterator walks one side's ordered levels in either direction. This
// is the primitive the matching engine uses to visit levels in price
// priority while skipping exhausted ones.
type LevelIterator struct {
	it rbt.Iterator
}

func (li *LevelIterator) Next() bool {
	return li.it.Next()
}

func (li *LevelIterator) Prev() bool {
	return li.it.Prev()
}

// First moves to the lowest price, Last to the highest.
func (li *LevelIterator) First() bool {
	return li.it.First()
}

func (li *LevelIterator) Last() bool {
	return li.it.Last()
}

// Begin resets to before the first element, End to after the last, so the
// iterator can be walked in either direction with Next or Prev.
func (li *LevelIterator) Begin() {
	li.it.Begin()
}

func (li *LevelIterator) End() {
	li.it.End()
}

func (li *LevelIterator) Price() uint64 {
	return li.it.Key().(uint64)
}

func (li *LevelIterator) Level() *PriceLevel {
	return li.it.Value().(*PriceLevel)
}
