// Package engine implements the single-book limit order-matching engine:
// ordered price ladders per side, a FIFO queue per price level, an O(1)
// order-location index, and the matcher that crosses them. Everything here
// is single-threaded; the engine performs no internal synchronization (see
// Registry for how callers are expected to confine a book to one goroutine
// at a time).
package engine

import "fenrir/internal/common"

// Book is one symbol's order book: the Buy and Sell ladders plus the index
// that lets Cancel/Modify locate a resting order in O(1).
type Book struct {
	bids  *sideLadder
	asks  *sideLadder
	index *orderIndex
}

// NewBook returns an empty book.
func NewBook() *Book {
	return &Book{
		bids:  newBuyLadder(),
		asks:  newSellLadder(),
		index: newOrderIndex(),
	}
}

// Modification is a cancel-replace request: a new price/quantity for an
// existing order id, on the same side. Modify preserves the order's
// original time-in-force but not its time priority.
type Modification struct {
	Id       common.OrderId
	Side     common.Side
	Price    common.Price
	Quantity common.Quantity
}

// Add admits a new order. Duplicate ids are silently rejected (idempotent,
// empty log). A FillAndKill order with no crossable opposite price is
// discarded before it ever touches the index or a ladder. Otherwise the
// order rests at the back of its price level and the matcher runs.
//
// The only error Add can return is common.ErrFillOverflow, an internal
// invariant violation in the matcher itself rather than a user error.
func (b *Book) Add(order *common.Order) (common.Trades, error) {
	if b.index.contains(order.Id) {
		return nil, nil
	}

	if order.TimeInForce == common.FillAndKill && !b.canMatch(order.Side, order.Price) {
		return nil, nil
	}

	ladder := b.ladderFor(order.Side)
	level := ladder.getOrCreate(order.Price)
	h := level.queue.pushBack(order)
	b.index.insert(order.Id, order, h, order.Side, order.Price)

	trades, err := b.match()
	if err != nil {
		return trades, err
	}
	b.fillAndKillSweep()

	return trades, nil
}

// Cancel removes a resting order. Absent ids are ignored (idempotent).
// Cancel never emits trades.
func (b *Book) Cancel(id common.OrderId) {
	entry, ok := b.index.lookup(id)
	if !ok {
		return
	}
	b.index.erase(id)

	ladder := b.ladderFor(entry.side)
	level := ladder.get(entry.price)
	if level == nil {
		return
	}
	level.queue.eraseAt(entry.handle)
	if level.queue.isEmpty() {
		ladder.erase(entry.price)
	}
}

// Modify is a cancel-replace that preserves the original order's
// time-in-force: it loses time priority at its price, the standard
// behavior for non-trivial modifications. Absent ids are a no-op (empty log).
func (b *Book) Modify(mod Modification) (common.Trades, error) {
	entry, ok := b.index.lookup(mod.Id)
	if !ok {
		return nil, nil
	}
	tif := entry.order.TimeInForce

	b.Cancel(mod.Id)

	replacement := common.New(mod.Id, mod.Side, mod.Price, mod.Quantity, tif)
	return b.Add(replacement)
}

// Size is the number of live orders currently resting in the book.
func (b *Book) Size() int {
	return b.index.size()
}

// Depth walks each ladder in priority order and sums remaining quantity at
// each price level.
func (b *Book) Depth() (bids, asks []common.LevelInfo) {
	return levelInfos(b.bids), levelInfos(b.asks)
}

func levelInfos(ladder *sideLadder) []common.LevelInfo {
	levels := ladder.levels()
	out := make([]common.LevelInfo, len(levels))
	for i, lvl := range levels {
		out[i] = common.LevelInfo{Price: lvl.price, Quantity: lvl.queue.totalQuantity()}
	}
	return out
}

func (b *Book) ladderFor(side common.Side) *sideLadder {
	if side == common.Buy {
		return b.bids
	}
	return b.asks
}
