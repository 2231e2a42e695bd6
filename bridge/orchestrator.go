package bridge

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/frame-bridge/chains"
	"github.com/sprintertech/frame-bridge/protocol/across"
)

const (
	DEFAULT_AMOUNT = "0.01"
)

type QuoteFetcher interface {
	SuggestedFees(ctx context.Context, r across.SuggestedFeesRequest) (*across.FeeQuote, error)
}

type Orchestrator struct {
	registry      ChainRegistry
	quotes        QuoteFetcher
	builder       *DepositCallBuilder
	defaultAmount string
	// expected spoke pool per source network, quotes naming another pool are rejected
	spokePools map[chains.Network]common.Address
}

func NewOrchestrator(
	registry ChainRegistry,
	quotes QuoteFetcher,
	builder *DepositCallBuilder,
	defaultAmount string,
	spokePools map[chains.Network]common.Address,
) *Orchestrator {
	if defaultAmount == "" {
		defaultAmount = DEFAULT_AMOUNT
	}
	if spokePools == nil {
		spokePools = make(map[chains.Network]common.Address)
	}

	return &Orchestrator{
		registry:      registry,
		quotes:        quotes,
		builder:       builder,
		defaultAmount: defaultAmount,
		spokePools:    spokePools,
	}
}

// Execute validates the inbound values, fetches a fresh relay fee quote and builds the
// deposit call. Every input is validated before the quote is requested and the first
// failure is returned as a *BridgeError.
func (o *Orchestrator) Execute(ctx context.Context, sourceNetwork string, amount string, recipient string) (*DepositCall, error) {
	r, err := NewBridgeRequest(sourceNetwork, amount, recipient, o.defaultAmount)
	if err != nil {
		return nil, err
	}

	source, err := o.registry.Resolve(r.SourceNetwork)
	if err != nil {
		return nil, newError(ErrInvalidNetwork, err)
	}
	destination, err := o.registry.Resolve(chains.Destination)
	if err != nil {
		return nil, newError(ErrInvalidNetwork, err)
	}

	amountWei, err := r.AmountWei()
	if err != nil {
		return nil, err
	}

	log.Debug().Str("network", string(r.SourceNetwork)).Msgf("Requesting relay fee quote for %s wei", amountWei)
	quote, err := o.quotes.SuggestedFees(ctx, across.SuggestedFeesRequest{
		InputToken:         source.WrappedNativeToken,
		OutputToken:        destination.WrappedNativeToken,
		OriginChainID:      source.ChainID,
		DestinationChainID: destination.ChainID,
		Amount:             amountWei,
	})
	if err != nil {
		if errors.Is(err, across.ErrMalformedQuote) {
			return nil, newError(ErrQuoteMalformed, err)
		}
		return nil, newError(ErrQuoteUnavailable, err)
	}

	pool, ok := o.spokePools[r.SourceNetwork]
	if ok && pool != quote.SpokePoolAddress {
		return nil, newError(
			ErrQuoteMalformed,
			fmt.Errorf("quoted spoke pool %s does not match %s for %s", quote.SpokePoolAddress.Hex(), pool.Hex(), r.SourceNetwork))
	}

	call, err := o.builder.Build(r, *quote)
	if err != nil {
		return nil, err
	}

	log.Info().Str("network", string(r.SourceNetwork)).Msgf(
		"Built deposit of %s wei with output %s wei to %s", call.Value, call.Args.OutputAmount, call.To.Hex())
	return call, nil
}
