package engine

import (
	"github.com/tidwall/btree"

	"fenrir/internal/common"
)

// priceLevel is one node of a side ladder: a price and the FIFO queue of
// orders resting at it.
type priceLevel struct {
	price common.Price
	queue *priceLevelQueue
}

// sideLadder is an ordered map Price -> priceLevel, specialized per side so
// that Min() on the underlying btree always yields the best price: Buy
// ladders compare descending (best = highest), Sell ladders compare
// ascending (best = lowest), via a greater-than/less-than comparator over
// tidwall/btree.BTreeG.
type sideLadder struct {
	tree *btree.BTreeG[*priceLevel]
}

func newBuyLadder() *sideLadder {
	return &sideLadder{tree: btree.NewBTreeG(func(a, b *priceLevel) bool {
		return a.price > b.price
	})}
}

func newSellLadder() *sideLadder {
	return &sideLadder{tree: btree.NewBTreeG(func(a, b *priceLevel) bool {
		return a.price < b.price
	})}
}

// best returns the top-of-book price level, or nil if the ladder is empty.
func (l *sideLadder) best() *priceLevel {
	lvl, ok := l.tree.Min()
	if !ok {
		return nil
	}
	return lvl
}

// get returns the level at price, or nil if absent.
func (l *sideLadder) get(price common.Price) *priceLevel {
	lvl, ok := l.tree.Get(&priceLevel{price: price})
	if !ok {
		return nil
	}
	return lvl
}

// getOrCreate returns the level at price, creating an empty one if absent.
func (l *sideLadder) getOrCreate(price common.Price) *priceLevel {
	if lvl := l.get(price); lvl != nil {
		return lvl
	}
	lvl := &priceLevel{price: price, queue: newPriceLevelQueue()}
	l.tree.Set(lvl)
	return lvl
}

// erase removes the price key entirely. Callers must only do this once the
// level's queue is empty, preserving the invariant that every ladder key
// maps to a non-empty queue.
func (l *sideLadder) erase(price common.Price) {
	l.tree.Delete(&priceLevel{price: price})
}

func (l *sideLadder) isEmpty() bool { return l.tree.Len() == 0 }

// levels walks the ladder in priority order (best price first).
func (l *sideLadder) levels() []*priceLevel {
	out := make([]*priceLevel, 0, l.tree.Len())
	l.tree.Scan(func(lvl *priceLevel) bool {
		out = append(out, lvl)
		return true
	})
	return out
}
