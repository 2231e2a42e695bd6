package bridge

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/frame-bridge/chains"
	"github.com/sprintertech/frame-bridge/chains/evm/calls/consts"
	"github.com/sprintertech/frame-bridge/chains/evm/calls/contracts"
	"github.com/sprintertech/frame-bridge/protocol/across"
)

const (
	// FILL_DEADLINE_OFFSET is the window relayers have to fill the deposit
	FILL_DEADLINE_OFFSET = 600 * time.Second
)

type ChainRegistry interface {
	Resolve(n chains.Network) (chains.ChainInfo, error)
}

type DepositCallBuilder struct {
	registry ChainRegistry
	now      func() time.Time
}

func NewDepositCallBuilder(registry ChainRegistry, now func() time.Time) *DepositCallBuilder {
	if now == nil {
		now = time.Now
	}

	return &DepositCallBuilder{
		registry: registry,
		now:      now,
	}
}

// Build binds the quote to the request and returns the native token depositV3 call
// on the source chain. The clock is the only input outside of the arguments.
func (b *DepositCallBuilder) Build(r BridgeRequest, q across.FeeQuote) (*DepositCall, error) {
	source, err := b.registry.Resolve(r.SourceNetwork)
	if err != nil {
		return nil, newError(ErrInvalidNetwork, err)
	}
	destination, err := b.registry.Resolve(chains.Destination)
	if err != nil {
		return nil, newError(ErrInvalidNetwork, err)
	}

	inputAmount, err := r.AmountWei()
	if err != nil {
		return nil, err
	}

	if q.TotalRelayFee == nil {
		return nil, newError(ErrQuoteMalformed, fmt.Errorf("missing relay fee"))
	}
	outputAmount := new(big.Int).Sub(inputAmount, q.TotalRelayFee)
	if outputAmount.Sign() < 0 {
		return nil, newError(
			ErrFeeExceedsAmount,
			fmt.Errorf("relay fee %s wei exceeds amount %s wei", q.TotalRelayFee, inputAmount))
	}

	// nolint:gosec
	fillDeadline := uint32(b.now().Add(FILL_DEADLINE_OFFSET).Unix())

	return &DepositCall{
		To:           q.SpokePoolAddress,
		ChainID:      source.ChainID,
		Value:        new(big.Int).Set(inputAmount),
		FunctionName: consts.DepositV3Method,
		Args: contracts.DepositV3Args{
			Depositor:           r.Recipient,
			Recipient:           r.Recipient,
			InputToken:          source.WrappedNativeToken,
			OutputToken:         destination.WrappedNativeToken,
			InputAmount:         inputAmount,
			OutputAmount:        outputAmount,
			DestinationChainId:  new(big.Int).SetUint64(destination.ChainID),
			ExclusiveRelayer:    common.Address{},
			QuoteTimestamp:      q.QuoteTimestamp,
			FillDeadline:        fillDeadline,
			ExclusivityDeadline: 0,
			Message:             []byte{},
		},
	}, nil
}
