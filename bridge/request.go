package bridge

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/sprintertech/frame-bridge/chains"
	"github.com/sprintertech/frame-bridge/chains/evm/units"
)

type BridgeRequest struct {
	SourceNetwork chains.Network
	// Amount is a decimal ether amount, e.g. "0.1"
	Amount    string
	Recipient common.Address
}

// NewBridgeRequest validates raw inbound values and maps them to a BridgeRequest.
// An empty amount falls back to defaultAmount.
func NewBridgeRequest(sourceNetwork string, amount string, recipient string, defaultAmount string) (BridgeRequest, error) {
	if !common.IsHexAddress(recipient) {
		return BridgeRequest{}, newError(ErrInvalidRecipient, fmt.Errorf("address %q is not a valid 20-byte hex address", recipient))
	}

	network, err := chains.ParseNetwork(sourceNetwork)
	if err != nil {
		return BridgeRequest{}, newError(ErrInvalidNetwork, err)
	}
	if !chains.IsSource(network) {
		return BridgeRequest{}, newError(ErrInvalidNetwork, fmt.Errorf("network %s is not a supported source network", network))
	}

	if amount == "" {
		amount = defaultAmount
	}
	r := BridgeRequest{
		SourceNetwork: network,
		Amount:        amount,
		Recipient:     common.HexToAddress(recipient),
	}

	wei, err := r.AmountWei()
	if err != nil {
		return BridgeRequest{}, err
	}
	if wei.Sign() == 0 {
		return BridgeRequest{}, newError(ErrInvalidAmount, fmt.Errorf("amount must be positive"))
	}
	if wei.Cmp(math.MaxBig256) > 0 {
		return BridgeRequest{}, newError(ErrInvalidAmount, fmt.Errorf("amount exceeds uint256"))
	}

	return r, nil
}

// AmountWei parses the amount as an 18-decimal fixed point value
func (r BridgeRequest) AmountWei() (*big.Int, error) {
	wei, err := units.ParseEther(r.Amount)
	if err != nil {
		return nil, newError(ErrInvalidAmount, err)
	}
	return wei, nil
}
