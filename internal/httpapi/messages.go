package httpapi

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fenrir/internal/common"
)

var (
	errMissingParams = errors.New("missing required parameters")
	errInvalidSide   = errors.New("side must be BUY or SELL")
	errInvalidTIF    = errors.New("tradetype must be GTC or FAK")
)

// parseSide maps the wire-level "BUY"/"SELL" token to common.Side. An
// invalid side is rejected here, at the transport layer, before it ever
// reaches the engine.
func parseSide(raw string) (common.Side, error) {
	switch strings.ToUpper(raw) {
	case "BUY":
		return common.Buy, nil
	case "SELL":
		return common.Sell, nil
	default:
		return 0, fmt.Errorf("%w: got %q", errInvalidSide, raw)
	}
}

// parseTimeInForce maps the wire-level "GTC"/"FAK" token to
// common.TimeInForce.
func parseTimeInForce(raw string) (common.TimeInForce, error) {
	switch strings.ToUpper(raw) {
	case "GTC":
		return common.GoodTillCancel, nil
	case "FAK":
		return common.FillAndKill, nil
	default:
		return 0, fmt.Errorf("%w: got %q", errInvalidTIF, raw)
	}
}

func parseOrderId(raw string) (common.OrderId, error) {
	v, err := strconv.ParseUint(raw, 10, 64)
	return common.OrderId(v), err
}

func parsePrice(raw string) (common.Price, error) {
	v, err := strconv.ParseInt(raw, 10, 32)
	return common.Price(v), err
}

func parseQuantity(raw string) (common.Quantity, error) {
	v, err := strconv.ParseUint(raw, 10, 32)
	return common.Quantity(v), err
}

// tradeRequest is a parsed, validated POST /trade request.
type tradeRequest struct {
	book  string
	order *common.Order
}

// requiredTradeParamsPresent reports whether every required /trade form
// field is non-empty.
func requiredTradeParamsPresent(book, orderId, tradeType, side, price, quantity string) bool {
	return book != "" && orderId != "" && tradeType != "" && side != "" && price != "" && quantity != ""
}

// requiredCancelParamsPresent is the /cancel equivalent.
func requiredCancelParamsPresent(book, orderId string) bool {
	return book != "" && orderId != ""
}

// parseTradeRequest assumes presence has already been checked (400-worthy)
// and only reports parse/validation failures, which are 500-worthy.
func parseTradeRequest(book, orderId, tradeType, side, price, quantity string) (tradeRequest, error) {
	id, err := parseOrderId(orderId)
	if err != nil {
		return tradeRequest{}, fmt.Errorf("invalid orderid: %w", err)
	}
	tif, err := parseTimeInForce(tradeType)
	if err != nil {
		return tradeRequest{}, err
	}
	s, err := parseSide(side)
	if err != nil {
		return tradeRequest{}, err
	}
	p, err := parsePrice(price)
	if err != nil {
		return tradeRequest{}, fmt.Errorf("invalid price: %w", err)
	}
	q, err := parseQuantity(quantity)
	if err != nil {
		return tradeRequest{}, fmt.Errorf("invalid quantity: %w", err)
	}

	return tradeRequest{
		book:  book,
		order: common.New(id, s, p, q, tif),
	}, nil
}

// cancelRequest is a parsed, validated POST /cancel request.
type cancelRequest struct {
	book string
	id   common.OrderId
}

func parseCancelRequest(book, orderId string) (cancelRequest, error) {
	id, err := parseOrderId(orderId)
	if err != nil {
		return cancelRequest{}, fmt.Errorf("invalid orderid: %w", err)
	}
	return cancelRequest{book: book, id: id}, nil
}

// depthView is the JSON shape returned by GET /depth.
type depthView struct {
	Bids []common.LevelInfo `json:"bids"`
	Asks []common.LevelInfo `json:"asks"`
}
