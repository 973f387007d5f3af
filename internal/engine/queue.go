package engine

import (
	"container/list"

	"fenrir/internal/common"
)

// priceLevelQueue is the FIFO of resting orders at one price. It is backed
// by container/list rather than a slice so that a handle into the middle of
// the queue (returned by pushBack, stored in the order index) stays valid
// across pushes and pops of its siblings. Only eraseAt on the target
// element itself invalidates its handle.
type priceLevelQueue struct {
	orders *list.List // element values are *common.Order
}

// handle is a stable reference to one order's position inside its queue.
type handle = *list.Element

func newPriceLevelQueue() *priceLevelQueue {
	return &priceLevelQueue{orders: list.New()}
}

func (q *priceLevelQueue) isEmpty() bool { return q.orders.Len() == 0 }

func (q *priceLevelQueue) pushBack(o *common.Order) handle {
	return q.orders.PushBack(o)
}

func (q *priceLevelQueue) front() *common.Order {
	if e := q.orders.Front(); e != nil {
		return e.Value.(*common.Order)
	}
	return nil
}

func (q *priceLevelQueue) popFront() {
	if e := q.orders.Front(); e != nil {
		q.orders.Remove(e)
	}
}

// eraseAt removes the order at h. h is invalid after this call.
func (q *priceLevelQueue) eraseAt(h handle) {
	q.orders.Remove(h)
}

// totalQuantity sums RemainingQty across every order resting in the queue.
func (q *priceLevelQueue) totalQuantity() common.Quantity {
	var sum common.Quantity
	for e := q.orders.Front(); e != nil; e = e.Next() {
		sum += e.Value.(*common.Order).RemainingQty
	}
	return sum
}
