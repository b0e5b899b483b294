package engines

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/quantfeed/pitchbook/bats"
	"github.com/quantfeed/pitchbook/config"
	"github.com/quantfeed/pitchbook/matching"
)

// MatchingWorker fans decoded feed messages out to per-instrument engines.
// Order-anchored events ('X', 'E') and trade breaks ('B') do not carry a
// symbol on the wire, so the worker keeps routing maps from order id and
// execution id to the symbol that introduced them.
//
// Process is meant to be driven by a single feed reader; the mutex exists
// so stats jobs and tests can query engines while the reader is running.
type MatchingWorker struct {
	mutex sync.RWMutex

	Engines map[string]*matching.Engine

	orderSymbols map[uint64]string
	execSymbols  map[uint64]string
	status       map[string]*InstrumentStatus
}

// InstrumentStatus is the latest non-book state reported for a symbol.
type InstrumentStatus struct {
	Symbol         string
	TradingStatus  byte
	RegSHOAction   byte
	Reserved1      byte
	Reserved2      byte
	RetailInterest byte
	Auctions       []*bats.AuctionSummaryMsg
	AuctionUpdates []*bats.AuctionUpdateMsg
}

func NewMatchingWorker() *MatchingWorker {
	return &MatchingWorker{
		Engines:      make(map[string]*matching.Engine),
		orderSymbols: make(map[uint64]string),
		execSymbols:  make(map[uint64]string),
		status:       make(map[string]*InstrumentStatus),
	}
}

// Process routes one decoded message to the owning instrument.
func (w *MatchingWorker) Process(msg bats.Message) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	switch m := msg.(type) {
	case *bats.AddOrderMsg:
		return w.submitOrder(m)
	case *bats.OrderCancelMsg:
		return w.cancelOrder(m)
	case *bats.OrderExecutedMsg:
		return w.executeOrder(m)
	case *bats.TradeMsg:
		return w.enterTrade(m)
	case *bats.TradeBreakMsg:
		return w.breakTrade(m)
	case *bats.RetailPriceImproveMsg:
		w.statusFor(m.Symbol).RetailInterest = m.RPI
		return nil
	case *bats.TradingStatusMsg:
		st := w.statusFor(m.Symbol)
		st.TradingStatus = m.HaltStatus
		st.RegSHOAction = m.RegShoAction
		st.Reserved1 = m.Reserved1
		st.Reserved2 = m.Reserved2
		return nil
	case *bats.AuctionSummaryMsg:
		st := w.statusFor(m.Symbol)
		st.Auctions = append(st.Auctions, m)
		return nil
	case *bats.AuctionUpdateMsg:
		st := w.statusFor(m.Symbol)
		st.AuctionUpdates = append(st.AuctionUpdates, m)
		return nil
	default:
		return fmt.Errorf("unroutable message type %q", msg.Kind())
	}
}

func (w *MatchingWorker) submitOrder(m *bats.AddOrderMsg) error {
	// A reused order id must not re-point routing away from the order that
	// already owns it.
	if symbol, found := w.orderSymbols[m.OrderID]; found {
		return fmt.Errorf("add %d for %q: %w, routed to %q", m.OrderID, m.Symbol, matching.ErrDuplicateOrder, symbol)
	}

	side := matching.SideBuy
	if m.Side == 'S' {
		side = matching.SideSell
	}

	w.orderSymbols[m.OrderID] = m.Symbol
	w.engineFor(m.Symbol).Submit(&matching.Order{
		ID:          m.OrderID,
		Side:        side,
		Price:       m.Price,
		Volume:      uint64(m.Shares),
		Participant: m.Participant,
	})
	return nil
}

func (w *MatchingWorker) cancelOrder(m *bats.OrderCancelMsg) error {
	symbol, found := w.orderSymbols[m.OrderID]
	if !found {
		return fmt.Errorf("cancel %d: %w", m.OrderID, matching.ErrOrderNotFound)
	}

	w.engineFor(symbol).Cancel(m.OrderID)
	return nil
}

func (w *MatchingWorker) executeOrder(m *bats.OrderExecutedMsg) error {
	symbol, found := w.orderSymbols[m.OrderID]
	if !found {
		return fmt.Errorf("execute %d: %w", m.OrderID, matching.ErrOrderNotFound)
	}

	w.execSymbols[m.ExecID] = symbol
	w.engineFor(symbol).Execute(m.OrderID, uint64(m.Shares))
	return nil
}

func (w *MatchingWorker) enterTrade(m *bats.TradeMsg) error {
	w.execSymbols[m.ExecID] = m.Symbol
	w.engineFor(m.Symbol).TradeBook.Enter(&matching.Trade{
		Symbol: m.Symbol,
		Price:  m.Price,
		Volume: uint64(m.Shares),
		ExecID: m.ExecID,
	})
	return nil
}

func (w *MatchingWorker) breakTrade(m *bats.TradeBreakMsg) error {
	symbol, found := w.execSymbols[m.ExecID]
	if !found {
		return fmt.Errorf("break %d: %w", m.ExecID, matching.ErrTradeNotFound)
	}

	delete(w.execSymbols, m.ExecID)
	return w.engineFor(symbol).TradeBook.Break(m.ExecID)
}

// engineFor returns the symbol's engine, creating and starting it on first
// use. Callers hold w.mutex.
func (w *MatchingWorker) engineFor(symbol string) *matching.Engine {
	engine, found := w.Engines[symbol]
	if !found {
		engine = matching.NewEngine(symbol)
		engine.Start()
		w.Engines[symbol] = engine
		config.Logger.Infof("[pitchbook.worker] engine started for %q", symbol)
	}
	return engine
}

func (w *MatchingWorker) GetEngineBySymbol(symbol string) *matching.Engine {
	w.mutex.RLock()
	defer w.mutex.RUnlock()

	engine, found := w.Engines[symbol]
	if found {
		return engine
	}
	return nil
}

// Symbols lists every instrument seen on the feed so far.
func (w *MatchingWorker) Symbols() []string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()

	symbols := make([]string, 0, len(w.Engines))
	for symbol := range w.Engines {
		symbols = append(symbols, symbol)
	}
	return symbols
}

func (w *MatchingWorker) StatusBySymbol(symbol string) *InstrumentStatus {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.status[symbol]
}

// statusFor returns the symbol's status record, creating it on first use.
// Callers hold w.mutex.
func (w *MatchingWorker) statusFor(symbol string) *InstrumentStatus {
	st, found := w.status[symbol]
	if !found {
		st = &InstrumentStatus{Symbol: symbol}
		w.status[symbol] = st
	}
	return st
}

// Flush drains every engine's queue, so reads observe all events routed
// before the call.
func (w *MatchingWorker) Flush() {
	w.mutex.RLock()
	defer w.mutex.RUnlock()

	for _, engine := range w.Engines {
		engine.Flush()
	}
}

// Stop shuts every engine down after draining its queue.
func (w *MatchingWorker) Stop() {
	w.mutex.RLock()
	defer w.mutex.RUnlock()

	for _, engine := range w.Engines {
		engine.Stop()
	}
}

// LogStats writes a one-line book summary per instrument.
func (w *MatchingWorker) LogStats() {
	w.mutex.RLock()
	defer w.mutex.RUnlock()

	for symbol, engine := range w.Engines {
		book := engine.OrderBook
		bid := decimalPrice(book.BestBid())
		ask := decimalPrice(book.BestAsk())
		config.Logger.Infof("[pitchbook.worker] %s best bid %s best ask %s resting %d trades %d",
			symbol, bid, ask, book.RestingOrders(), engine.TradeBook.Count())
	}
}

func decimalPrice(price uint64) decimal.Decimal {
	return decimal.New(int64(price), config.App.PriceExponent)
}
