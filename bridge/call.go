package bridge

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/frame-bridge/chains/evm/calls/contracts"
)

// DepositCall is a fully specified SpokePool depositV3 call ready to be signed by a wallet
type DepositCall struct {
	To           common.Address
	ChainID      uint64
	Value        *big.Int
	FunctionName string
	Args         contracts.DepositV3Args
}

// CAIP2 returns the source chain in eip155:<chainId> form
func (c *DepositCall) CAIP2() string {
	return fmt.Sprintf("eip155:%d", c.ChainID)
}

// Calldata ABI encodes the call arguments
func (c *DepositCall) Calldata() ([]byte, error) {
	return contracts.NewSpokePoolContract(c.To).PackDepositV3(c.Args)
}
