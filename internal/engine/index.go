package engine

import "fenrir/internal/common"

// indexEntry is what the order index stores per live order: the order
// record itself, its price-level handle, and enough of its identity
// (side, price) to erase it without re-deriving anything from the order
// after the matcher may have mutated it.
type indexEntry struct {
	order  *common.Order
	handle handle
	side   common.Side
	price  common.Price
}

// orderIndex maps OrderId -> (order, handle-into-its-queue). Every id
// present here corresponds to exactly one live occurrence in a ladder
// queue, at the stored side/price; every order in a ladder queue has a
// corresponding entry here.
type orderIndex struct {
	entries map[common.OrderId]indexEntry
}

func newOrderIndex() *orderIndex {
	return &orderIndex{entries: make(map[common.OrderId]indexEntry)}
}

func (idx *orderIndex) contains(id common.OrderId) bool {
	_, ok := idx.entries[id]
	return ok
}

func (idx *orderIndex) insert(id common.OrderId, order *common.Order, h handle, side common.Side, price common.Price) {
	idx.entries[id] = indexEntry{order: order, handle: h, side: side, price: price}
}

func (idx *orderIndex) lookup(id common.OrderId) (indexEntry, bool) {
	e, ok := idx.entries[id]
	return e, ok
}

func (idx *orderIndex) erase(id common.OrderId) {
	delete(idx.entries, id)
}

func (idx *orderIndex) size() int {
	return len(idx.entries)
}
