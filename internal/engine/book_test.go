package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fenrir/internal/common"
	"fenrir/internal/engine"
)

func order(id common.OrderId, side common.Side, price common.Price, qty common.Quantity, tif common.TimeInForce) *common.Order {
	return common.New(id, side, price, qty, tif)
}

func TestSimpleCross(t *testing.T) {
	book := engine.NewBook()

	trades, err := book.Add(order(1, common.Buy, 100, 10, common.GoodTillCancel))
	require.NoError(t, err)
	assert.Empty(t, trades)
	assert.Equal(t, 1, book.Size())

	trades, err = book.Add(order(2, common.Sell, 100, 10, common.GoodTillCancel))
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, common.Trade{
		BidFill: common.Fill{OrderId: 1, Price: 100, Quantity: 10},
		AskFill: common.Fill{OrderId: 2, Price: 100, Quantity: 10},
	}, trades[0])
	assert.Equal(t, 0, book.Size())
}

func TestPartialFillLeavesResidue(t *testing.T) {
	book := engine.NewBook()

	_, err := book.Add(order(1, common.Buy, 100, 10, common.GoodTillCancel))
	require.NoError(t, err)

	trades, err := book.Add(order(2, common.Sell, 100, 4, common.GoodTillCancel))
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, common.Quantity(4), trades[0].BidFill.Quantity)

	assert.Equal(t, 1, book.Size())
	bids, _ := book.Depth()
	assert.Equal(t, []common.LevelInfo{{Price: 100, Quantity: 6}}, bids)
}

func TestFIFOAcrossTwoRestingBids(t *testing.T) {
	book := engine.NewBook()

	_, err := book.Add(order(1, common.Buy, 100, 5, common.GoodTillCancel))
	require.NoError(t, err)
	_, err = book.Add(order(2, common.Buy, 100, 5, common.GoodTillCancel))
	require.NoError(t, err)

	trades, err := book.Add(order(3, common.Sell, 100, 6, common.GoodTillCancel))
	require.NoError(t, err)
	require.Len(t, trades, 2)

	assert.Equal(t, common.OrderId(1), trades[0].BidFill.OrderId)
	assert.Equal(t, common.Quantity(5), trades[0].BidFill.Quantity)
	assert.Equal(t, common.OrderId(2), trades[1].BidFill.OrderId)
	assert.Equal(t, common.Quantity(1), trades[1].BidFill.Quantity)

	assert.Equal(t, 1, book.Size())
	bids, _ := book.Depth()
	assert.Equal(t, []common.LevelInfo{{Price: 100, Quantity: 4}}, bids)
}

func TestFillAndKillNoCrossIsDiscarded(t *testing.T) {
	book := engine.NewBook()

	trades, err := book.Add(order(1, common.Buy, 100, 10, common.FillAndKill))
	require.NoError(t, err)
	assert.Empty(t, trades)
	assert.Equal(t, 0, book.Size())
}

func TestFillAndKillPartialCrossDiscardsRemainder(t *testing.T) {
	book := engine.NewBook()

	_, err := book.Add(order(1, common.Sell, 100, 10, common.GoodTillCancel))
	require.NoError(t, err)

	trades, err := book.Add(order(2, common.Buy, 100, 25, common.FillAndKill))
	require.NoError(t, err)
	require.Len(t, trades, 1)
	assert.Equal(t, common.Quantity(10), trades[0].BidFill.Quantity)

	assert.Equal(t, 0, book.Size())
}

func TestModifyLosesTimePriority(t *testing.T) {
	book := engine.NewBook()

	_, err := book.Add(order(1, common.Buy, 100, 5, common.GoodTillCancel))
	require.NoError(t, err)
	_, err = book.Add(order(2, common.Buy, 100, 5, common.GoodTillCancel))
	require.NoError(t, err)

	_, err = book.Modify(engine.Modification{Id: 1, Side: common.Buy, Price: 100, Quantity: 5})
	require.NoError(t, err)

	trades, err := book.Add(order(3, common.Sell, 100, 6, common.GoodTillCancel))
	require.NoError(t, err)
	require.Len(t, trades, 2)

	assert.Equal(t, common.OrderId(2), trades[0].BidFill.OrderId)
	assert.Equal(t, common.Quantity(5), trades[0].BidFill.Quantity)
	assert.Equal(t, common.OrderId(1), trades[1].BidFill.OrderId)
	assert.Equal(t, common.Quantity(1), trades[1].BidFill.Quantity)
}

func TestCancelIdempotence(t *testing.T) {
	book := engine.NewBook()
	_, err := book.Add(order(1, common.Buy, 100, 5, common.GoodTillCancel))
	require.NoError(t, err)

	book.Cancel(1)
	assert.Equal(t, 0, book.Size())
	book.Cancel(1)
	assert.Equal(t, 0, book.Size())
}

func TestAddIdempotenceOnDuplicateId(t *testing.T) {
	book := engine.NewBook()
	_, err := book.Add(order(1, common.Buy, 100, 5, common.GoodTillCancel))
	require.NoError(t, err)

	sizeBefore := book.Size()
	bidsBefore, asksBefore := book.Depth()

	trades, err := book.Add(order(1, common.Buy, 101, 99, common.GoodTillCancel))
	require.NoError(t, err)
	assert.Empty(t, trades)

	assert.Equal(t, sizeBefore, book.Size())
	bidsAfter, asksAfter := book.Depth()
	assert.Equal(t, bidsBefore, bidsAfter)
	assert.Equal(t, asksBefore, asksAfter)
}

func TestUnknownOrderIdCancelAndModifyAreNoops(t *testing.T) {
	book := engine.NewBook()

	book.Cancel(404)
	assert.Equal(t, 0, book.Size())

	trades, err := book.Modify(engine.Modification{Id: 404, Side: common.Buy, Price: 1, Quantity: 1})
	require.NoError(t, err)
	assert.Empty(t, trades)
}

func TestBestBuyNeverAtOrAboveBestSellAfterOperations(t *testing.T) {
	book := engine.NewBook()

	_, err := book.Add(order(1, common.Buy, 99, 10, common.GoodTillCancel))
	require.NoError(t, err)
	_, err = book.Add(order(2, common.Sell, 101, 10, common.GoodTillCancel))
	require.NoError(t, err)
	_, err = book.Add(order(3, common.Buy, 105, 3, common.GoodTillCancel))
	require.NoError(t, err)

	bids, asks := book.Depth()
	require.NotEmpty(t, bids)
	require.NotEmpty(t, asks)
	assert.Less(t, bids[0].Price, asks[0].Price)
}

func TestConservationOfQuantity(t *testing.T) {
	book := engine.NewBook()

	_, err := book.Add(order(1, common.Buy, 100, 10, common.GoodTillCancel))
	require.NoError(t, err)
	_, err = book.Add(order(2, common.Buy, 99, 5, common.GoodTillCancel))
	require.NoError(t, err)

	bidsBefore, _ := book.Depth()
	var beforeTotal common.Quantity
	for _, lvl := range bidsBefore {
		beforeTotal += lvl.Quantity
	}

	incoming := order(3, common.Sell, 100, 8, common.GoodTillCancel)
	trades, err := book.Add(incoming)
	require.NoError(t, err)

	var traded common.Quantity
	for _, tr := range trades {
		traded += tr.BidFill.Quantity
	}

	bidsAfter, _ := book.Depth()
	var afterTotal common.Quantity
	for _, lvl := range bidsAfter {
		afterTotal += lvl.Quantity
	}

	assert.Equal(t, beforeTotal+incoming.InitialQty, afterTotal+2*traded)
}

func TestMultiLevelSweepCrossesSeveralPriceLevels(t *testing.T) {
	book := engine.NewBook()

	_, err := book.Add(order(1, common.Sell, 100, 5, common.GoodTillCancel))
	require.NoError(t, err)
	_, err = book.Add(order(2, common.Sell, 101, 5, common.GoodTillCancel))
	require.NoError(t, err)

	trades, err := book.Add(order(3, common.Buy, 101, 8, common.GoodTillCancel))
	require.NoError(t, err)
	require.Len(t, trades, 2)
	assert.Equal(t, common.Price(100), trades[0].AskFill.Price)
	assert.Equal(t, common.Price(101), trades[1].AskFill.Price)
	assert.Equal(t, common.Price(101), trades[0].BidFill.Price, "each leg is stamped with its own order's price")

	_, asks := book.Depth()
	require.Len(t, asks, 1)
	assert.Equal(t, common.LevelInfo{Price: 101, Quantity: 2}, asks[0])
}
