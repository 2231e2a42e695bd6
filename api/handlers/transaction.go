package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/frame-bridge/bridge"
	"github.com/sprintertech/frame-bridge/chains/evm/calls/consts"
	"github.com/sprintertech/frame-bridge/metrics"
)

const (
	SEND_TRANSACTION_METHOD = "eth_sendTransaction"
)

// FrameActionBody is the action packet a frame client posts when a transaction button is pressed
type FrameActionBody struct {
	UntrustedData UntrustedData `json:"untrustedData"`
}

type UntrustedData struct {
	FID         uint64 `json:"fid"`
	Address     string `json:"address"`
	InputText   string `json:"inputText"`
	ButtonIndex int    `json:"buttonIndex"`
}

type TransactionParams struct {
	ABI   json.RawMessage `json:"abi"`
	To    string          `json:"to"`
	Data  string          `json:"data"`
	Value string          `json:"value"`
}

type TransactionResponse struct {
	ChainID string            `json:"chainId"`
	Method  string            `json:"method"`
	Params  TransactionParams `json:"params"`
}

type Bridger interface {
	Execute(ctx context.Context, sourceNetwork string, amount string, recipient string) (*bridge.DepositCall, error)
}

type RequestMetrics interface {
	StartRequest(requestID string)
	EndRequest(requestID string, network string, outcome string)
}

type TransactionHandler struct {
	bridger      Bridger
	metrics      RequestMetrics
	quoteTimeout time.Duration
}

func NewTransactionHandler(bridger Bridger, metrics RequestMetrics, quoteTimeout time.Duration) *TransactionHandler {
	return &TransactionHandler{
		bridger:      bridger,
		metrics:      metrics,
		quoteTimeout: quoteTimeout,
	}
}

// HandleTransaction builds the depositV3 call for the frame caller and returns it
// as a frame transaction descriptor the wallet can sign
func (h *TransactionHandler) HandleTransaction(w http.ResponseWriter, r *http.Request) {
	requestID := r.Header.Get(REQUEST_ID_HEADER)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	network := mux.Vars(r)["network"]

	h.metrics.StartRequest(requestID)
	b := &FrameActionBody{}
	d := json.NewDecoder(r.Body)
	err := d.Decode(b)
	if err != nil {
		h.metrics.EndRequest(requestID, network, "invalid body")
		JSONError(w, fmt.Errorf("invalid request body: %s", err), http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if h.quoteTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.quoteTimeout)
		defer cancel()
	}

	call, err := h.bridger.Execute(ctx, network, b.UntrustedData.InputText, b.UntrustedData.Address)
	if err != nil {
		h.metrics.EndRequest(requestID, network, outcome(err))
		log.Warn().Str("requestID", requestID).Uint64("fid", b.UntrustedData.FID).Msgf("Failed building deposit: %s", err)
		JSONError(w, err, statusCode(err))
		return
	}

	resp, err := NewTransactionResponse(call)
	if err != nil {
		h.metrics.EndRequest(requestID, network, "encoding")
		JSONError(w, err, http.StatusInternalServerError)
		return
	}

	h.metrics.EndRequest(requestID, network, metrics.OutcomeSuccess)
	writeJSON(w, resp)
}

// NewTransactionResponse encodes the deposit call as an eth_sendTransaction descriptor
func NewTransactionResponse(call *bridge.DepositCall) (TransactionResponse, error) {
	calldata, err := call.Calldata()
	if err != nil {
		return TransactionResponse{}, fmt.Errorf("failed encoding calldata: %w", err)
	}

	return TransactionResponse{
		ChainID: call.CAIP2(),
		Method:  SEND_TRANSACTION_METHOD,
		Params: TransactionParams{
			ABI:   json.RawMessage(consts.DepositV3ABIJSON),
			To:    call.To.Hex(),
			Data:  hexutil.Encode(calldata),
			Value: call.Value.String(),
		},
	}, nil
}

func statusCode(err error) int {
	switch {
	case errors.Is(err, bridge.ErrInvalidNetwork),
		errors.Is(err, bridge.ErrInvalidRecipient),
		errors.Is(err, bridge.ErrInvalidAmount),
		errors.Is(err, bridge.ErrFeeExceedsAmount):
		return http.StatusBadRequest
	case errors.Is(err, bridge.ErrQuoteUnavailable),
		errors.Is(err, bridge.ErrQuoteMalformed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func outcome(err error) string {
	var bErr *bridge.BridgeError
	if errors.As(err, &bErr) {
		return bErr.Kind.Error()
	}
	return "unknown"
}
