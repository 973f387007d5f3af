package common

import "fmt"

// Fill is one leg of a trade: the resting or incoming order identified by
// OrderId executed Quantity lots at Price. Price is the leg's own resting
// price, so on the first cross of a sweep the two legs of a Trade can differ
// when an aggressor lifts a better-than-its-limit resting order.
type Fill struct {
	OrderId  OrderId
	Price    Price
	Quantity Quantity
}

// Trade pairs the bid-side and ask-side fills produced by one match.
type Trade struct {
	BidFill Fill
	AskFill Fill
}

func (t Trade) String() string {
	return fmt.Sprintf(
		"Trade{bid=(%d,%d,%d) ask=(%d,%d,%d)}",
		t.BidFill.OrderId, t.BidFill.Price, t.BidFill.Quantity,
		t.AskFill.OrderId, t.AskFill.Price, t.AskFill.Quantity,
	)
}

// Trades is the log emitted by a single engine operation, in match order.
type Trades []Trade

// LevelInfo is an aggregated price level: total remaining quantity resting
// at Price, summed across every order at that level.
type LevelInfo struct {
	Price    Price
	Quantity Quantity
}
