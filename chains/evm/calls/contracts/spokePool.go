// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package contracts

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/sprintertech/frame-bridge/chains/evm/calls/consts"
	"github.com/sygmaprotocol/sygma-core/chains/evm/contracts"
)

// DepositV3Args are the depositV3 arguments in contract order
type DepositV3Args struct {
	Depositor           common.Address
	Recipient           common.Address
	InputToken          common.Address
	OutputToken         common.Address
	InputAmount         *big.Int
	OutputAmount        *big.Int
	DestinationChainId  *big.Int
	ExclusiveRelayer    common.Address
	QuoteTimestamp      uint32
	FillDeadline        uint32
	ExclusivityDeadline uint32
	Message             []byte
}

type SpokePoolContract struct {
	contracts.Contract
}

// NewSpokePoolContract binds the depositV3 ABI to the spoke pool at address
func NewSpokePoolContract(address common.Address) *SpokePoolContract {
	return &SpokePoolContract{
		Contract: contracts.NewContract(address, consts.SpokePoolABI, nil, nil, nil),
	}
}

// PackDepositV3 returns the depositV3 selector followed by the ABI encoded arguments.
func (c *SpokePoolContract) PackDepositV3(args DepositV3Args) ([]byte, error) {
	message := args.Message
	if message == nil {
		message = []byte{}
	}

	return c.ABI.Pack(
		consts.DepositV3Method,
		args.Depositor,
		args.Recipient,
		args.InputToken,
		args.OutputToken,
		args.InputAmount,
		args.OutputAmount,
		args.DestinationChainId,
		args.ExclusiveRelayer,
		args.QuoteTimestamp,
		args.FillDeadline,
		args.ExclusivityDeadline,
		message,
	)
}

// UnpackDepositV3 decodes depositV3 calldata, including its selector.
func (c *SpokePoolContract) UnpackDepositV3(calldata []byte) (DepositV3Args, error) {
	method := c.ABI.Methods[consts.DepositV3Method]
	if len(calldata) < 4 || common.Bytes2Hex(calldata[:4]) != common.Bytes2Hex(method.ID) {
		return DepositV3Args{}, fmt.Errorf("calldata is not a %s call", consts.DepositV3Method)
	}

	values, err := method.Inputs.Unpack(calldata[4:])
	if err != nil {
		return DepositV3Args{}, err
	}

	return DepositV3Args{
		Depositor:           *abi.ConvertType(values[0], new(common.Address)).(*common.Address),
		Recipient:           *abi.ConvertType(values[1], new(common.Address)).(*common.Address),
		InputToken:          *abi.ConvertType(values[2], new(common.Address)).(*common.Address),
		OutputToken:         *abi.ConvertType(values[3], new(common.Address)).(*common.Address),
		InputAmount:         *abi.ConvertType(values[4], new(*big.Int)).(**big.Int),
		OutputAmount:        *abi.ConvertType(values[5], new(*big.Int)).(**big.Int),
		DestinationChainId:  *abi.ConvertType(values[6], new(*big.Int)).(**big.Int),
		ExclusiveRelayer:    *abi.ConvertType(values[7], new(common.Address)).(*common.Address),
		QuoteTimestamp:      *abi.ConvertType(values[8], new(uint32)).(*uint32),
		FillDeadline:        *abi.ConvertType(values[9], new(uint32)).(*uint32),
		ExclusivityDeadline: *abi.ConvertType(values[10], new(uint32)).(*uint32),
		Message:             *abi.ConvertType(values[11], new([]byte)).(*[]byte),
	}, nil
}
