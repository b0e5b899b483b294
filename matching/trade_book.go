package matching

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// TradeBook stores all session trades for one instrument in-memory.
type TradeBook struct {
	Symbol string

	tradeMutex  sync.RWMutex
	trades      map[uint64]*Trade
	byExecID    map[uint64]uint64
	lastTradeID uint64
}

func NewTradeBook(symbol string) *TradeBook {
	return &TradeBook{
		Symbol:   symbol,
		trades:   make(map[uint64]*Trade),
		byExecID: make(map[uint64]uint64),
	}
}

// Enter records a new trade, assigning its sequence id and uuid.
func (t *TradeBook) Enter(trade *Trade) {
	t.tradeMutex.Lock()
	defer t.tradeMutex.Unlock()

	t.lastTradeID += 1
	trade.ID = t.lastTradeID
	trade.UUID = uuid.New()
	if trade.CreatedAt.IsZero() {
		trade.CreatedAt = time.Now()
	}

	t.trades[trade.ID] = trade
	if trade.ExecID != 0 {
		t.byExecID[trade.ExecID] = trade.ID
	}
}

// Break voids a previously entered feed trade by execution id.
func (t *TradeBook) Break(execID uint64) error {
	t.tradeMutex.Lock()
	defer t.tradeMutex.Unlock()

	tradeID, found := t.byExecID[execID]
	if !found {
		return ErrTradeNotFound
	}

	delete(t.byExecID, execID)
	delete(t.trades, tradeID)
	return nil
}

// Count is the number of trades currently on record.
func (t *TradeBook) Count() int {
	t.tradeMutex.RLock()
	defer t.tradeMutex.RUnlock()
	return len(t.trades)
}

// Trades returns a copy of all trades on record.
func (t *TradeBook) Trades() []*Trade {
	t.tradeMutex.RLock()
	defer t.tradeMutex.RUnlock()

	trades := make([]*Trade, 0, len(t.trades))
	for _, trade := range t.trades {
		trades = append(trades, trade)
	}
	return trades
}
