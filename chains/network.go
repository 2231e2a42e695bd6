// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package chains

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var ErrInvalidNetwork = errors.New("invalid network")

type Network string

const (
	Ethereum Network = "ethereum"
	Base     Network = "base"
	Optimism Network = "optimism"
	Arbitrum Network = "arbitrum"

	// Destination is the only network deposits are bridged to
	Destination = Arbitrum
)

type ChainInfo struct {
	Network            Network
	ChainID            uint64
	WrappedNativeToken common.Address
	ExplorerURL        string
}

// CAIP2 returns the chain identifier in the format wallets expect, e.g. eip155:8453
func (c ChainInfo) CAIP2() string {
	return fmt.Sprintf("eip155:%d", c.ChainID)
}

// TransactionURL returns the block explorer link for a transaction on this chain
func (c ChainInfo) TransactionURL(hash common.Hash) string {
	return fmt.Sprintf("%s/%s", c.ExplorerURL, hash.Hex())
}

var sourceNetworks = []Network{Ethereum, Base, Optimism}

// SourceNetworks returns networks deposits can originate from, in display order.
func SourceNetworks() []Network {
	n := make([]Network, len(sourceNetworks))
	copy(n, sourceNetworks)
	return n
}

func IsSource(n Network) bool {
	for _, s := range sourceNetworks {
		if s == n {
			return true
		}
	}
	return false
}

// ParseNetwork maps an inbound network name to a Network.
func ParseNetwork(name string) (Network, error) {
	n := Network(strings.ToLower(strings.TrimSpace(name)))
	switch n {
	case Ethereum, Base, Optimism, Arbitrum:
		return n, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidNetwork, name)
	}
}

// Registry is the static network -> chain mapping.
type Registry struct{}

func NewRegistry() Registry {
	return Registry{}
}

// Resolve returns chain info for the network. Networks outside the
// enum are a programming error and fail with ErrInvalidNetwork.
func (Registry) Resolve(n Network) (ChainInfo, error) {
	switch n {
	case Ethereum:
		return ChainInfo{
			Network:            Ethereum,
			ChainID:            1,
			WrappedNativeToken: common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"),
			ExplorerURL:        "https://etherscan.io/tx",
		}, nil
	case Base:
		return ChainInfo{
			Network:            Base,
			ChainID:            8453,
			WrappedNativeToken: common.HexToAddress("0x4200000000000000000000000000000000000006"),
			ExplorerURL:        "https://basescan.org/tx",
		}, nil
	case Optimism:
		return ChainInfo{
			Network:            Optimism,
			ChainID:            10,
			WrappedNativeToken: common.HexToAddress("0x4200000000000000000000000000000000000006"),
			ExplorerURL:        "https://optimistic.etherscan.io/tx",
		}, nil
	case Arbitrum:
		return ChainInfo{
			Network:            Arbitrum,
			ChainID:            42161,
			WrappedNativeToken: common.HexToAddress("0x82aF49447D8a07e3bd95BD0d56f35241523fBab1"),
			ExplorerURL:        "https://arbiscan.io/tx",
		}, nil
	default:
		return ChainInfo{}, fmt.Errorf("%w: %q", ErrInvalidNetwork, string(n))
	}
}
