package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// writeJSON mirrors the reference transport's plain hand-built JSON bodies
// ({"message": ...} / {"error": ...}) and also renders the /depth view.
// There is no wire schema beyond those shapes, so a struct marshal via
// encoding/json is enough.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

type messageBody struct {
	Message string `json:"message"`
}

type errorBody struct {
	Error string `json:"error"`
}

// handleTrade implements the reference POST /trade endpoint: 200 on
// success, 400 on missing params, 500 on parse/engine error.
func (s *Server) handleTrade(w http.ResponseWriter, r *http.Request) {
	requestId := uuid.New().String()
	logger := log.With().Str("requestId", requestId).Logger()

	if err := r.ParseForm(); err != nil {
		logger.Error().Err(err).Msg("malformed trade request")
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	book := r.FormValue("book")
	orderId := r.FormValue("orderid")
	tradeType := r.FormValue("tradetype")
	side := r.FormValue("side")
	price := r.FormValue("price")
	quantity := r.FormValue("quantity")

	if !requiredTradeParamsPresent(book, orderId, tradeType, side, price, quantity) {
		logger.Warn().Msg("rejected trade request: missing parameters")
		writeJSON(w, http.StatusBadRequest, errorBody{Error: errMissingParams.Error()})
		return
	}

	req, err := parseTradeRequest(book, orderId, tradeType, side, price, quantity)
	if err != nil {
		logger.Error().Err(err).Msg("engine error during processing")
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Engine error during processing: " + err.Error()})
		return
	}

	guard := s.registry.Guard(req.book)
	guard.Lock()
	ledger := s.registry.Get(req.book)
	trades, err := ledger.Add(req.order)
	guard.Unlock()

	if err != nil {
		logger.Error().Err(err).Str("book", req.book).Msg("engine error during Add")
		s.metrics.ObserveAdd(req.book, req.order.Side, nil, true, "engine_error")
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "Engine error during processing: " + err.Error()})
		return
	}

	s.metrics.ObserveAdd(req.book, req.order.Side, trades, false, "")
	logger.Info().Str("book", req.book).Int("trades", len(trades)).Msg("order placed")
	writeJSON(w, http.StatusOK, messageBody{Message: "Order placed successfully"})
}

// handleCancel implements the reference POST /cancel endpoint.
func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}

	book := r.FormValue("book")
	orderId := r.FormValue("orderid")
	if !requiredCancelParamsPresent(book, orderId) {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: errMissingParams.Error()})
		return
	}

	req, err := parseCancelRequest(book, orderId)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
		return
	}

	guard := s.registry.Guard(req.book)
	guard.Lock()
	ledger := s.registry.Get(req.book)
	before := ledger.Size()
	ledger.Cancel(req.id)
	after := ledger.Size()
	guard.Unlock()

	if after < before {
		s.metrics.ObserveCancel(req.book)
		writeJSON(w, http.StatusOK, messageBody{Message: "Order Info Received"})
		return
	}
	writeJSON(w, http.StatusOK, messageBody{Message: "Order ID not found"})
}

// handleDepth is the expanded, read-only GET /depth endpoint.
func (s *Server) handleDepth(w http.ResponseWriter, r *http.Request) {
	book := r.URL.Query().Get("book")
	if book == "" {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "missing required parameter: book"})
		return
	}

	guard := s.registry.Guard(book)
	guard.Lock()
	bids, asks := s.registry.Get(book).Depth()
	guard.Unlock()

	writeJSON(w, http.StatusOK, depthView{Bids: bids, Asks: asks})
}
