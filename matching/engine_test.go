package matching

import (
	"sync"
	"testing"
)

func TestEngine_FlushReadAfterWrite(t *testing.T) {
	engine := NewEngine("TEST  ")
	engine.Start()
	defer engine.Stop()

	engine.Submit(&Order{ID: 1, Side: SideBuy, Price: 10000, Volume: 100})
	engine.Flush()

	if v := engine.OrderBook.VolumeAtPriceLevel(SideBuy, 10000); v != 100 {
		t.Errorf("expected volume 100 after flush, got %d", v)
	}

	engine.Cancel(1)
	engine.Flush()

	if v := engine.OrderBook.VolumeAtPriceLevel(SideBuy, 10000); v != 0 {
		t.Errorf("expected volume 0 after cancel, got %d", v)
	}
}

func TestEngine_StopDrains(t *testing.T) {
	engine := NewEngine("TEST  ")
	engine.Start()

	for i := uint64(1); i <= 100; i++ {
		engine.Submit(&Order{ID: i, Side: SideBuy, Price: 10000 + i, Volume: 10})
	}
	engine.Stop()

	if n := engine.OrderBook.RestingOrders(); n != 100 {
		t.Errorf("expected 100 resting orders after drain, got %d", n)
	}
}

// Many producers feed one engine at once; the single worker serialises
// them, so per-producer submit/cancel sequences must hold exactly.
func TestEngine_ConcurrentProducers(t *testing.T) {
	const producers = 8
	const events = 50

	engine := NewEngine("TEST  ")
	engine.Start()
	defer engine.Stop()

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p uint64) {
			defer wg.Done()

			base := (p + 1) * 1000
			for i := uint64(0); i < events; i++ {
				engine.Submit(&Order{
					ID:     base + i,
					Side:   SideBuy,
					Price:  base + i,
					Volume: i + 1,
				})
			}
			// Cancel everything but the last order. A cancel can only
			// succeed if its submit was applied first.
			for i := uint64(0); i < events-1; i++ {
				engine.Cancel(base + i)
			}
		}(uint64(p))
	}
	wg.Wait()
	engine.Flush()

	if n := engine.OrderBook.RestingOrders(); n != producers {
		t.Errorf("expected %d resting orders, got %d", producers, n)
	}

	for p := uint64(1); p <= producers; p++ {
		kept := p*1000 + events - 1
		if v := engine.OrderBook.VolumeAtPriceLevel(SideBuy, kept); v != events {
			t.Errorf("producer %d: expected volume %d at price %d, got %d", p, events, kept, v)
		}
		if v := engine.OrderBook.VolumeAtPriceLevel(SideBuy, p*1000); v != 0 {
			t.Errorf("producer %d: expected cancelled price to be empty, got %d", p, v)
		}
	}
}
