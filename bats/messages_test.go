package bats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAddOrder(t *testing.T) {
	msg, err := ParseAddOrder("28800168A1K27GA00000YS000100AAPL  0001831900Y")
	assert.NoError(t, err)

	assert.Equal(t, uint32(28800168), msg.Timestamp)
	assert.Equal(t, byte('A'), msg.MsgType)
	assert.Equal(t, uint64(204969015920664610), msg.OrderID)
	assert.Equal(t, byte('S'), msg.Side)
	assert.Equal(t, uint32(100), msg.Shares)
	assert.Equal(t, "AAPL  ", msg.Symbol)
	assert.Equal(t, uint64(1831900), msg.Price)
	assert.Equal(t, byte('Y'), msg.Display)
	assert.Equal(t, "", msg.Participant)
}

func TestParseAddOrderLong(t *testing.T) {
	msg, err := ParseAddOrder("28800169d1K27GA00000YS000100AAPL  0001831900YBAML")
	assert.NoError(t, err)

	assert.Equal(t, uint32(28800169), msg.Timestamp)
	assert.Equal(t, byte('d'), msg.MsgType)
	assert.Equal(t, uint64(204969015920664610), msg.OrderID)
	assert.Equal(t, "BAML", msg.Participant)
}

func TestParseOrderCancel(t *testing.T) {
	msg, err := ParseOrderCancel("28800168X1K27GA00000Y000500")
	assert.NoError(t, err)

	assert.Equal(t, uint64(204969015920664610), msg.OrderID)
	assert.Equal(t, uint32(500), msg.Shares)
}

func TestParseOrderExecuted(t *testing.T) {
	msg, err := ParseOrderExecuted("28800168E1K27GA00000Y0001001K27GA00000K")
	assert.NoError(t, err)

	assert.Equal(t, uint64(204969015920664610), msg.OrderID)
	assert.Equal(t, uint32(100), msg.Shares)
	assert.Equal(t, uint64(204969015920664596), msg.ExecID)
}

func TestParseTrade(t *testing.T) {
	msg, err := ParseTrade("28800168P1K27GA00000YB000300AAPL  00018319001K27GA00000Z")
	assert.NoError(t, err)

	assert.Equal(t, byte('P'), msg.MsgType)
	assert.Equal(t, uint64(204969015920664610), msg.OrderID)
	assert.Equal(t, byte('B'), msg.Side)
	assert.Equal(t, uint32(300), msg.Shares)
	assert.Equal(t, "AAPL  ", msg.Symbol)
	assert.Equal(t, uint64(1831900), msg.Price)
	assert.Equal(t, uint64(204969015920664611), msg.ExecID)
}

func TestParseTradeLong(t *testing.T) {
	msg, err := ParseTrade("28800168r1K27GA00000YB000300AAPLSPOT00018319001K27GA00000Z")
	assert.NoError(t, err)

	assert.Equal(t, byte('r'), msg.MsgType)
	assert.Equal(t, "AAPLSPOT", msg.Symbol)
	assert.Equal(t, uint64(1831900), msg.Price)
	assert.Equal(t, uint64(204969015920664611), msg.ExecID)
}

func TestParseTradeBreak(t *testing.T) {
	msg, err := ParseTradeBreak("28800168B1K27GA00000Y")
	assert.NoError(t, err)

	assert.Equal(t, uint64(204969015920664610), msg.ExecID)
}

func TestParseRetailPriceImprove(t *testing.T) {
	msg, err := ParseRetailPriceImprove("28800168RAAPLSPOTS")
	assert.NoError(t, err)

	assert.Equal(t, "AAPLSPOT", msg.Symbol)
	assert.Equal(t, byte('S'), msg.RPI)
}

func TestParseTradingStatus(t *testing.T) {
	msg, err := ParseTradingStatus("28800168HAAPLSPOTT0XY")
	assert.NoError(t, err)

	assert.Equal(t, "AAPLSPOT", msg.Symbol)
	assert.Equal(t, byte('T'), msg.HaltStatus)
	assert.Equal(t, byte('0'), msg.RegShoAction)
	assert.Equal(t, byte('X'), msg.Reserved1)
	assert.Equal(t, byte('Y'), msg.Reserved2)
}

func TestParseAuctionSummary(t *testing.T) {
	msg, err := ParseAuctionSummary("28800168JAAPLSPOTC00010068000000020000")
	assert.NoError(t, err)

	assert.Equal(t, "AAPLSPOT", msg.Symbol)
	assert.Equal(t, byte('C'), msg.AuctionType)
	assert.Equal(t, uint64(1006800), msg.Price)
	assert.Equal(t, uint64(20000), msg.Shares)
}

// Auction share fields use the full 10 digits, past what 32 bits can hold.
func TestParseAuctionWideShareFields(t *testing.T) {
	summary, err := ParseAuctionSummary("28800168JAAPLSPOTC00010068009999999999")
	assert.NoError(t, err)
	assert.Equal(t, uint64(9999999999), summary.Shares)

	update, err := ParseAuctionUpdate("28800168IAAPLSPOTC00010068009999999999500000000000001503400000130980")
	assert.NoError(t, err)
	assert.Equal(t, uint64(9999999999), update.BuyShares)
	assert.Equal(t, uint64(5000000000), update.SellShares)
}

func TestParseAuctionUpdate(t *testing.T) {
	msg, err := ParseAuctionUpdate("28800168IAAPLSPOTC00010068000000020000000001000000015034000001309800")
	assert.NoError(t, err)

	assert.Equal(t, "AAPLSPOT", msg.Symbol)
	assert.Equal(t, byte('C'), msg.AuctionType)
	assert.Equal(t, uint64(1006800), msg.ReferencePrice)
	assert.Equal(t, uint64(20000), msg.BuyShares)
	assert.Equal(t, uint64(10000), msg.SellShares)
	assert.Equal(t, uint64(1503400), msg.IndicativePrice)
	assert.Equal(t, uint64(1309800), msg.AuctionOnlyPrice)
}

func TestParseRejectsShortRecord(t *testing.T) {
	_, err := ParseAddOrder("28800168A1K27GA00000YS000100")
	assert.ErrorIs(t, err, ErrRecordTooShort)

	// Long form needs four more characters than the short form.
	_, err = ParseAddOrder("28800169d1K27GA00000YS000100AAPL  0001831900Y")
	assert.ErrorIs(t, err, ErrRecordTooShort)

	_, err = ParseTrade("28800168r1K27GA00000YB000300AAPL  00018319001K27GA00000Z")
	assert.ErrorIs(t, err, ErrRecordTooShort)
}

func TestParseRejectsBadFields(t *testing.T) {
	_, err := ParseAddOrder("288001x8A1K27GA00000YS000100AAPL  0001831900Y")
	assert.ErrorIs(t, err, ErrBadNumericField)

	_, err = ParseAddOrder("28800168A1K27GA00000YS0001z0AAPL  0001831900Y")
	assert.ErrorIs(t, err, ErrBadNumericField)

	_, err = ParseAddOrder("28800168A1K27Ga00000YS000100AAPL  0001831900Y")
	assert.ErrorIs(t, err, ErrBadReferenceField)

	_, err = ParseAuctionSummary("28800168JAAPLSPOTZ00010068000000020000")
	assert.ErrorIs(t, err, ErrBadAuctionType)
}

func TestParseRejectsWrongDiscriminant(t *testing.T) {
	_, err := ParseOrderCancel("28800168A1K27GA00000YS000100AAPL  0001831900Y")
	assert.ErrorIs(t, err, ErrUnknownMsgType)
}
