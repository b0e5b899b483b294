package matching

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/quantfeed/pitchbook/config"
)

// Trade represents two opposed matched orders: either generated locally by
// the crossing algorithm, or reported by the feed ('P'/'r' records). Feed
// trades carry the execution id used by trade breaks.
type Trade struct {
	ID           uint64
	UUID         uuid.UUID
	Symbol       string
	Price        uint64 // minimum price increments
	Volume       uint64
	MakerOrderID uint64
	TakerOrderID uint64
	ExecID       uint64
	CreatedAt    time.Time
}

// PriceDecimal converts the tick price to a display price using the
// configured scale.
func (t *Trade) PriceDecimal() decimal.Decimal {
	return decimal.New(int64(t.Price), config.App.PriceExponent)
}

// Total is the traded notional: price * volume, in display units.
func (t *Trade) Total() decimal.Decimal {
	return t.PriceDecimal().Mul(decimal.New(int64(t.Volume), 0))
}
