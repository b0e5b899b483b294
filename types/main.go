package types

import "github.com/shopspring/decimal"

// Depth is the serialisable snapshot of one instrument's aggregated book:
// per-side (price, volume) pairs in display units, best price first.
type Depth struct {
	Asks     [][]decimal.Decimal `json:"asks"`
	Bids     [][]decimal.Decimal `json:"bids"`
	Sequence uint64              `json:"sequence"`
}
