package matching

import (
	"sync"

	"github.com/quantfeed/pitchbook/config"
)

type PayloadAction string

const (
	ActionSubmit  PayloadAction = "submit"
	ActionCancel  PayloadAction = "cancel"
	ActionExecute PayloadAction = "execute"
	ActionFlush   PayloadAction = "flush"
)

// Request is one unit of work for an engine's worker.
type Request struct {
	Action  PayloadAction
	Order   *Order
	OrderID uint64
	Qty     uint64

	done chan struct{}
}

// Engine is the ingestion pipeline for one instrument: producers enqueue
// decoded events onto the request channel and exactly one worker goroutine
// applies them to the order book in arrival order. Producers never touch
// the book; enqueueing blocks only on channel capacity, never on book
// state. Read queries go straight to the OrderBook, whose lock makes each
// applied event atomic for observers.
type Engine struct {
	Symbol    string
	OrderBook *OrderBook
	TradeBook *TradeBook

	requests chan Request
	finished chan struct{}

	startMutex sync.Mutex
	started    bool
	stopOnce   sync.Once
}

func NewEngine(symbol string) *Engine {
	tradeBook := NewTradeBook(symbol)

	return &Engine{
		Symbol:    symbol,
		OrderBook: NewOrderBook(symbol, tradeBook),
		TradeBook: tradeBook,
		requests:  make(chan Request, config.App.EngineQueueSize),
		finished:  make(chan struct{}),
	}
}

// Start launches the worker goroutine. Safe to call more than once.
func (e *Engine) Start() {
	e.startMutex.Lock()
	defer e.startMutex.Unlock()

	if e.started {
		return
	}
	e.started = true

	go e.work()
}

func (e *Engine) work() {
	defer close(e.finished)

	for req := range e.requests {
		switch req.Action {
		case ActionSubmit:
			e.OrderBook.Add(req.Order)

		case ActionCancel:
			if err := e.OrderBook.Cancel(req.OrderID); err != nil {
				config.Logger.Errorf("[pitchbook.engine] %s: %v", e.Symbol, err)
			}

		case ActionExecute:
			if err := e.OrderBook.Execute(req.OrderID, req.Qty); err != nil {
				config.Logger.Errorf("[pitchbook.engine] %s: %v", e.Symbol, err)
			}

		case ActionFlush:
			close(req.done)

		default:
			config.Logger.Errorf("[pitchbook.engine] %s: unknown action %q", e.Symbol, req.Action)
		}
	}
}

// Submit enqueues a new order for the worker to apply.
func (e *Engine) Submit(o *Order) {
	e.requests <- Request{Action: ActionSubmit, Order: o}
}

// Cancel enqueues a cancel for the given order id.
func (e *Engine) Cancel(orderID uint64) {
	e.requests <- Request{Action: ActionCancel, OrderID: orderID}
}

// Execute enqueues a feed-reported execution against a resting order.
func (e *Engine) Execute(orderID, qty uint64) {
	e.requests <- Request{Action: ActionExecute, OrderID: orderID, Qty: qty}
}

// Flush blocks until every event enqueued before it has been applied,
// giving callers a read-after-write barrier. The barrier travels through
// the same channel as the events, so ordering needs no extra machinery.
func (e *Engine) Flush() {
	done := make(chan struct{})
	e.requests <- Request{Action: ActionFlush, done: done}
	<-done
}

// Stop closes the request channel and waits for the worker to drain it.
// Producers must have stopped enqueueing before Stop is called.
func (e *Engine) Stop() {
	e.stopOnce.Do(func() {
		close(e.requests)
	})
	<-e.finished
}
