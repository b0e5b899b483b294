package depth_service

import (
	"github.com/shopspring/decimal"

	"github.com/quantfeed/pitchbook/types"
	"github.com/quantfeed/pitchbook/workers/engines"
)

type DepthService struct {
	Symbol   string
	Asks     [][]decimal.Decimal
	Bids     [][]decimal.Decimal
	Sequence uint64
}

func NewDepthService(symbol string) *DepthService {
	return &DepthService{
		Symbol: symbol,
	}
}

// Fetch snapshots the instrument's book through its engine. The engine is
// flushed first so the snapshot reflects every event routed before the
// call. Unknown symbols yield an empty snapshot.
func Fetch(worker *engines.MatchingWorker, symbol string, limit int) *DepthService {
	depthService := NewDepthService(symbol)

	engine := worker.GetEngineBySymbol(symbol)
	if engine == nil {
		return depthService
	}
	engine.Flush()

	bids, asks := engine.OrderBook.Depth(limit)
	depthService.Bids = bids
	depthService.Asks = asks
	depthService.Sequence = uint64(engine.TradeBook.Count())

	return depthService
}

func (d *DepthService) ToJSON() types.Depth {
	return types.Depth{
		Asks:     d.Asks,
		Bids:     d.Bids,
		Sequence: d.Sequence,
	}
}
