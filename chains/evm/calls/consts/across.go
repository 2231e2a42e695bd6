package consts

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const DepositV3Method = "depositV3"

// DepositV3ABIJSON is the SpokePool ABI fragment handed to wallets together
// with the encoded calldata
const DepositV3ABIJSON = `
[
  {
    "inputs": [
      {
        "internalType": "address",
        "name": "depositor",
        "type": "address"
      },
      {
        "internalType": "address",
        "name": "recipient",
        "type": "address"
      },
      {
        "internalType": "address",
        "name": "inputToken",
        "type": "address"
      },
      {
        "internalType": "address",
        "name": "outputToken",
        "type": "address"
      },
      {
        "internalType": "uint256",
        "name": "inputAmount",
        "type": "uint256"
      },
      {
        "internalType": "uint256",
        "name": "outputAmount",
        "type": "uint256"
      },
      {
        "internalType": "uint256",
        "name": "destinationChainId",
        "type": "uint256"
      },
      {
        "internalType": "address",
        "name": "exclusiveRelayer",
        "type": "address"
      },
      {
        "internalType": "uint32",
        "name": "quoteTimestamp",
        "type": "uint32"
      },
      {
        "internalType": "uint32",
        "name": "fillDeadline",
        "type": "uint32"
      },
      {
        "internalType": "uint32",
        "name": "exclusivityDeadline",
        "type": "uint32"
      },
      {
        "internalType": "bytes",
        "name": "message",
        "type": "bytes"
      }
    ],
    "name": "depositV3",
    "outputs": [],
    "stateMutability": "payable",
    "type": "function"
  }
]
`

var SpokePoolABI, _ = abi.JSON(strings.NewReader(DepositV3ABIJSON))
