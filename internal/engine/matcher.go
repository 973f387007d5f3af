package engine

import "fenrir/internal/common"

// canMatch reports whether an incoming order on side, at price, has any
// crossable resting liquidity on the opposite side. An empty opposite side,
// or no crossable price, is always "cannot match"; there is no third case.
func (b *Book) canMatch(side common.Side, price common.Price) bool {
	switch side {
	case common.Buy:
		top := b.asks.best()
		return top != nil && price >= top.price
	default:
		top := b.bids.best()
		return top != nil && price <= top.price
	}
}

// match repeatedly crosses the tops of both ladders while they overlap,
// filling in strict FIFO order at each level, and returns the trade log in
// the order matches occurred. It is the only place either ladder is
// mutated by something other than Add/Cancel/Modify directly.
func (b *Book) match() (common.Trades, error) {
	var trades common.Trades

	for {
		bidLevel := b.bids.best()
		askLevel := b.asks.best()
		if bidLevel == nil || askLevel == nil {
			break
		}
		if bidLevel.price < askLevel.price {
			break
		}

		for !bidLevel.queue.isEmpty() && !askLevel.queue.isEmpty() {
			bid := bidLevel.queue.front()
			ask := askLevel.queue.front()

			qty := min(bid.RemainingQty, ask.RemainingQty)

			if err := bid.Fill(qty); err != nil {
				return trades, err
			}
			if err := ask.Fill(qty); err != nil {
				return trades, err
			}

			trades = append(trades, common.Trade{
				BidFill: common.Fill{OrderId: bid.Id, Price: bid.Price, Quantity: qty},
				AskFill: common.Fill{OrderId: ask.Id, Price: ask.Price, Quantity: qty},
			})

			// Re-check index membership after each pop rather than trusting
			// a stale reference to either order.
			if bid.IsFilled() {
				bidLevel.queue.popFront()
				if b.index.contains(bid.Id) {
					b.index.erase(bid.Id)
				}
			}
			if ask.IsFilled() {
				askLevel.queue.popFront()
				if b.index.contains(ask.Id) {
					b.index.erase(ask.Id)
				}
			}
		}

		if bidLevel.queue.isEmpty() {
			b.bids.erase(bidLevel.price)
		}
		if askLevel.queue.isEmpty() {
			b.asks.erase(askLevel.price)
		}
	}

	return trades, nil
}

// fillAndKillSweep inspects the front order of each ladder's top queue and
// cancels it if it is a FillAndKill order. This catches the case where a
// FAK order rested momentarily at the top of book and was only partially
// filled by the match loop above; it must never remain resting. The sweep
// runs strictly after match's main loop has exited, so it never nests
// further matching.
func (b *Book) fillAndKillSweep() {
	if top := b.bids.best(); top != nil {
		if front := top.queue.front(); front != nil && front.TimeInForce == common.FillAndKill {
			b.Cancel(front.Id)
		}
	}
	if top := b.asks.best(); top != nil {
		if front := top.queue.front(); front != nil && front.TimeInForce == common.FillAndKill {
			b.Cancel(front.Id)
		}
	}
}
