// Package bats decodes the fixed-width textual PITCH market-data feed into
// typed messages. Records carry an 8-digit timestamp, a one-character type
// discriminant at offset 8, and a fixed-width body whose layout depends on
// the type. Symbol fields keep their right padding verbatim; they are used
// as fixed-width keys downstream.
package bats

import "fmt"

const (
	timestampWidth = 8
	typeOffset     = 8
	bodyOffset     = 9
)

// Fixed total record lengths per message type.
const (
	addOrderShortLen       = 45
	addOrderLongLen        = 49
	orderCancelLen         = 27
	orderExecutedLen       = 39
	tradeShortLen          = 56
	tradeLongLen           = 58
	tradeBreakLen          = 21
	retailPriceImproveLen  = 18
	tradingStatusLen       = 21
	auctionSummaryLen      = 38
	auctionUpdateLen       = 68
)

// Header is the common prefix of every feed message.
type Header struct {
	Timestamp uint32 // feed-internal time units (ms since midnight)
	MsgType   byte
}

func (h Header) Kind() byte { return h.MsgType }

// Message is the closed union over the nine feed message kinds. Concrete
// types are narrowed with the AsXxx helpers.
type Message interface {
	Kind() byte
}

// AddOrderMsg enters a new visible order into a book.
// Long form ('d') appends a 4-character participant attribution.
type AddOrderMsg struct {
	Header
	OrderID     uint64
	Side        byte // 'B' or 'S'
	Shares      uint32
	Symbol      string // 6 characters, space padded
	Price       uint64 // minimum price increments
	Display     byte   // 'Y' or 'N'
	Participant string // long form only
}

// OrderCancelMsg removes a resting order.
type OrderCancelMsg struct {
	Header
	OrderID uint64
	Shares  uint32
}

// OrderExecutedMsg reports shares executed against a resting order.
type OrderExecutedMsg struct {
	Header
	OrderID uint64
	Shares  uint32
	ExecID  uint64
}

// TradeMsg reports an execution of non-displayed liquidity. The 'r' long
// form carries an 8-character symbol.
type TradeMsg struct {
	Header
	OrderID uint64
	Side    byte
	Shares  uint32
	Symbol  string
	Price   uint64
	ExecID  uint64
}

// TradeBreakMsg voids a previously reported trade.
type TradeBreakMsg struct {
	Header
	ExecID uint64
}

// RetailPriceImproveMsg flags retail price improvement on an instrument.
type RetailPriceImproveMsg struct {
	Header
	Symbol string // 8 characters, space padded
	RPI    byte   // 'B', 'S', 'A' or 'N'
}

// TradingStatusMsg carries the halt state of an instrument.
type TradingStatusMsg struct {
	Header
	Symbol       string
	HaltStatus   byte
	RegShoAction byte
	Reserved1    byte
	Reserved2    byte
}

// AuctionSummaryMsg reports the result of a completed auction. The share
// count is a 10-digit field, so it is wider than the 6-digit order shares.
type AuctionSummaryMsg struct {
	Header
	Symbol      string
	AuctionType byte // 'O', 'C', 'H' or 'I'
	Price       uint64
	Shares      uint64
}

// AuctionUpdateMsg carries the indicative state of a pending auction.
type AuctionUpdateMsg struct {
	Header
	Symbol           string
	AuctionType      byte
	ReferencePrice   uint64
	BuyShares        uint64
	SellShares       uint64
	IndicativePrice  uint64
	AuctionOnlyPrice uint64
}

// parseUint decodes a zero-padded unsigned decimal field.
func parseUint(record string, offset, width int) (uint64, error) {
	var v uint64
	for i := offset; i < offset+width; i++ {
		c := record[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q at position %d", ErrBadNumericField, c, i)
		}
		v = v*10 + uint64(c-'0')
	}
	return v, nil
}

// parseHeader checks the record length and discriminant and decodes the
// common timestamp prefix.
func parseHeader(record string, minLen int, types ...byte) (Header, error) {
	if len(record) < minLen {
		return Header{}, fmt.Errorf("%w: got %d characters, want %d", ErrRecordTooShort, len(record), minLen)
	}

	msgType := record[typeOffset]
	ok := false
	for _, t := range types {
		if msgType == t {
			ok = true
			break
		}
	}
	if !ok {
		return Header{}, fmt.Errorf("%w: %q", ErrUnknownMsgType, msgType)
	}

	ts, err := parseUint(record, 0, timestampWidth)
	if err != nil {
		return Header{}, err
	}

	return Header{Timestamp: uint32(ts), MsgType: msgType}, nil
}

// ParseAddOrder decodes an 'A' (short) or 'd' (long) add-order record.
func ParseAddOrder(record string) (*AddOrderMsg, error) {
	hdr, err := parseHeader(record, addOrderShortLen, 'A', 'd')
	if err != nil {
		return nil, err
	}
	if hdr.MsgType == 'd' && len(record) < addOrderLongLen {
		return nil, fmt.Errorf("%w: got %d characters, want %d", ErrRecordTooShort, len(record), addOrderLongLen)
	}

	orderID, err := ParseBase36(record[bodyOffset : bodyOffset+RefWidth])
	if err != nil {
		return nil, err
	}
	shares, err := parseUint(record, 22, 6)
	if err != nil {
		return nil, err
	}
	price, err := parseUint(record, 34, 10)
	if err != nil {
		return nil, err
	}

	msg := &AddOrderMsg{
		Header:  hdr,
		OrderID: orderID,
		Side:    record[21],
		Shares:  uint32(shares),
		Symbol:  record[28:34],
		Price:   price,
		Display: record[44],
	}
	if hdr.MsgType == 'd' {
		msg.Participant = record[45:49]
	}
	return msg, nil
}

// ParseOrderCancel decodes an 'X' order-cancel record.
func ParseOrderCancel(record string) (*OrderCancelMsg, error) {
	hdr, err := parseHeader(record, orderCancelLen, 'X')
	if err != nil {
		return nil, err
	}

	orderID, err := ParseBase36(record[bodyOffset : bodyOffset+RefWidth])
	if err != nil {
		return nil, err
	}
	shares, err := parseUint(record, 21, 6)
	if err != nil {
		return nil, err
	}

	return &OrderCancelMsg{
		Header:  hdr,
		OrderID: orderID,
		Shares:  uint32(shares),
	}, nil
}

// ParseOrderExecuted decodes an 'E' order-executed record.
func ParseOrderExecuted(record string) (*OrderExecutedMsg, error) {
	hdr, err := parseHeader(record, orderExecutedLen, 'E')
	if err != nil {
		return nil, err
	}

	orderID, err := ParseBase36(record[bodyOffset : bodyOffset+RefWidth])
	if err != nil {
		return nil, err
	}
	shares, err := parseUint(record, 21, 6)
	if err != nil {
		return nil, err
	}
	execID, err := ParseBase36(record[27:39])
	if err != nil {
		return nil, err
	}

	return &OrderExecutedMsg{
		Header:  hdr,
		OrderID: orderID,
		Shares:  uint32(shares),
		ExecID:  execID,
	}, nil
}

// ParseTrade decodes a 'P' (6-character symbol) or 'r' (8-character symbol)
// trade record.
func ParseTrade(record string) (*TradeMsg, error) {
	hdr, err := parseHeader(record, tradeShortLen, 'P', 'r')
	if err != nil {
		return nil, err
	}

	symWidth := 6
	if hdr.MsgType == 'r' {
		symWidth = 8
		if len(record) < tradeLongLen {
			return nil, fmt.Errorf("%w: got %d characters, want %d", ErrRecordTooShort, len(record), tradeLongLen)
		}
	}

	orderID, err := ParseBase36(record[bodyOffset : bodyOffset+RefWidth])
	if err != nil {
		return nil, err
	}
	shares, err := parseUint(record, 22, 6)
	if err != nil {
		return nil, err
	}
	price, err := parseUint(record, 28+symWidth, 10)
	if err != nil {
		return nil, err
	}
	execID, err := ParseBase36(record[38+symWidth : 50+symWidth])
	if err != nil {
		return nil, err
	}

	return &TradeMsg{
		Header:  hdr,
		OrderID: orderID,
		Side:    record[21],
		Shares:  uint32(shares),
		Symbol:  record[28 : 28+symWidth],
		Price:   price,
		ExecID:  execID,
	}, nil
}

// ParseTradeBreak decodes a 'B' trade-break record.
func ParseTradeBreak(record string) (*TradeBreakMsg, error) {
	hdr, err := parseHeader(record, tradeBreakLen, 'B')
	if err != nil {
		return nil, err
	}

	execID, err := ParseBase36(record[bodyOffset : bodyOffset+RefWidth])
	if err != nil {
		return nil, err
	}

	return &TradeBreakMsg{Header: hdr, ExecID: execID}, nil
}

// ParseRetailPriceImprove decodes an 'R' retail-price-improvement record.
func ParseRetailPriceImprove(record string) (*RetailPriceImproveMsg, error) {
	hdr, err := parseHeader(record, retailPriceImproveLen, 'R')
	if err != nil {
		return nil, err
	}

	return &RetailPriceImproveMsg{
		Header: hdr,
		Symbol: record[9:17],
		RPI:    record[17],
	}, nil
}

// ParseTradingStatus decodes an 'H' trading-status record.
func ParseTradingStatus(record string) (*TradingStatusMsg, error) {
	hdr, err := parseHeader(record, tradingStatusLen, 'H')
	if err != nil {
		return nil, err
	}

	return &TradingStatusMsg{
		Header:       hdr,
		Symbol:       record[9:17],
		HaltStatus:   record[17],
		RegShoAction: record[18],
		Reserved1:    record[19],
		Reserved2:    record[20],
	}, nil
}

func checkAuctionType(t byte) error {
	switch t {
	case 'O', 'C', 'H', 'I':
		return nil
	}
	return fmt.Errorf("%w: %q", ErrBadAuctionType, t)
}

// ParseAuctionSummary decodes a 'J' auction-summary record.
func ParseAuctionSummary(record string) (*AuctionSummaryMsg, error) {
	hdr, err := parseHeader(record, auctionSummaryLen, 'J')
	if err != nil {
		return nil, err
	}

	if err := checkAuctionType(record[17]); err != nil {
		return nil, err
	}
	price, err := parseUint(record, 18, 10)
	if err != nil {
		return nil, err
	}
	shares, err := parseUint(record, 28, 10)
	if err != nil {
		return nil, err
	}

	return &AuctionSummaryMsg{
		Header:      hdr,
		Symbol:      record[9:17],
		AuctionType: record[17],
		Price:       price,
		Shares:      shares,
	}, nil
}

// ParseAuctionUpdate decodes an 'I' auction-update record.
func ParseAuctionUpdate(record string) (*AuctionUpdateMsg, error) {
	hdr, err := parseHeader(record, auctionUpdateLen, 'I')
	if err != nil {
		return nil, err
	}

	if err := checkAuctionType(record[17]); err != nil {
		return nil, err
	}
	refPrice, err := parseUint(record, 18, 10)
	if err != nil {
		return nil, err
	}
	buyShares, err := parseUint(record, 28, 10)
	if err != nil {
		return nil, err
	}
	sellShares, err := parseUint(record, 38, 10)
	if err != nil {
		return nil, err
	}
	indicative, err := parseUint(record, 48, 10)
	if err != nil {
		return nil, err
	}
	auctionOnly, err := parseUint(record, 58, 10)
	if err != nil {
		return nil, err
	}

	return &AuctionUpdateMsg{
		Header:           hdr,
		Symbol:           record[9:17],
		AuctionType:      record[17],
		ReferencePrice:   refPrice,
		BuyShares:        buyShares,
		SellShares:       sellShares,
		IndicativePrice:  indicative,
		AuctionOnlyPrice: auctionOnly,
	}, nil
}
