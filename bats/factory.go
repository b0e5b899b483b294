package bats

import "fmt"

// Parse is the message factory: it dispatches on the type discriminant at
// offset 8 and returns the decoded message as the Message union.
func Parse(record string) (Message, error) {
	if len(record) <= typeOffset {
		return nil, fmt.Errorf("%w: got %d characters, want at least %d", ErrRecordTooShort, len(record), typeOffset+1)
	}

	switch record[typeOffset] {
	case 'A', 'd':
		return ParseAddOrder(record)
	case 'X':
		return ParseOrderCancel(record)
	case 'E':
		return ParseOrderExecuted(record)
	case 'P', 'r':
		return ParseTrade(record)
	case 'B':
		return ParseTradeBreak(record)
	case 'R':
		return ParseRetailPriceImprove(record)
	case 'H':
		return ParseTradingStatus(record)
	case 'J':
		return ParseAuctionSummary(record)
	case 'I':
		return ParseAuctionUpdate(record)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMsgType, record[typeOffset])
	}
}

// Narrowing helpers project the Message union onto a concrete type,
// returning nil when the message is of a different kind.

func AsAddOrder(m Message) *AddOrderMsg {
	v, _ := m.(*AddOrderMsg)
	return v
}

func AsOrderCancel(m Message) *OrderCancelMsg {
	v, _ := m.(*OrderCancelMsg)
	return v
}

func AsOrderExecuted(m Message) *OrderExecutedMsg {
	v, _ := m.(*OrderExecutedMsg)
	return v
}

func AsTrade(m Message) *TradeMsg {
	v, _ := m.(*TradeMsg)
	return v
}

func AsTradeBreak(m Message) *TradeBreakMsg {
	v, _ := m.(*TradeBreakMsg)
	return v
}

func AsRetailPriceImprove(m Message) *RetailPriceImproveMsg {
	v, _ := m.(*RetailPriceImproveMsg)
	return v
}

func AsTradingStatus(m Message) *TradingStatusMsg {
	v, _ := m.(*TradingStatusMsg)
	return v
}

func AsAuctionSummary(m Message) *AuctionSummaryMsg {
	v, _ := m.(*AuctionSummaryMsg)
	return v
}

func AsAuctionUpdate(m Message) *AuctionUpdateMsg {
	v, _ := m.(*AuctionUpdateMsg)
	return v
}
