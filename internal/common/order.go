// Package common holds the order-book domain types shared by the matching
// engine and the transport layer.
package common

import (
	"fmt"
	"time"
)

// Side is which side of the book an order rests on.
type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	if s == Buy {
		return "BUY"
	}
	return "SELL"
}

// TimeInForce controls what happens to an order's remainder once it stops
// crossing the opposite side.
type TimeInForce int

const (
	// GoodTillCancel rests in the book until fully filled or cancelled.
	GoodTillCancel TimeInForce = iota
	// FillAndKill executes immediately whatever it can and discards the rest.
	FillAndKill
)

func (t TimeInForce) String() string {
	if t == FillAndKill {
		return "FAK"
	}
	return "GTC"
}

// Price is a signed tick-denominated price. Negative prices are permitted.
type Price int32

// Quantity is an order size in lots.
type Quantity uint32

// OrderId is assigned by the caller and must be unique within a book.
type OrderId uint64

// Order is the canonical resting or incoming order. Identity
// (Id, Side, Price, TimeInForce) is immutable once constructed; only
// RemainingQty mutates, and only by way of Fill.
type Order struct {
	Id            OrderId
	Side          Side
	Price         Price
	TimeInForce   TimeInForce
	InitialQty    Quantity
	RemainingQty  Quantity
	ExchTimestamp time.Time // arrival time into the book; observability only
}

// New constructs a resting order with RemainingQty == InitialQty.
func New(id OrderId, side Side, price Price, qty Quantity, tif TimeInForce) *Order {
	return &Order{
		Id:            id,
		Side:          side,
		Price:         price,
		TimeInForce:   tif,
		InitialQty:    qty,
		RemainingQty:  qty,
		ExchTimestamp: time.Now(),
	}
}

// FilledQty is the amount already executed.
func (o *Order) FilledQty() Quantity { return o.InitialQty - o.RemainingQty }

// IsFilled reports whether nothing remains to execute.
func (o *Order) IsFilled() bool { return o.RemainingQty == 0 }

// Fill reduces RemainingQty by qty. Filling for more than RemainingQty is a
// programming error in the matcher, not a user error, and is reported as
// ErrFillOverflow rather than panicking so the caller can decide how fatal
// to treat it.
func (o *Order) Fill(qty Quantity) error {
	if qty > o.RemainingQty {
		return fmt.Errorf("%w: order %d cannot be filled for %d, only %d remaining",
			ErrFillOverflow, o.Id, qty, o.RemainingQty)
	}
	o.RemainingQty -= qty
	return nil
}

func (o *Order) String() string {
	return fmt.Sprintf(
		"Order{id=%d side=%s tif=%s price=%d qty=%d/%d}",
		o.Id, o.Side, o.TimeInForce, o.Price, o.RemainingQty, o.InitialQty,
	)
}
