// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package evm

import (
	"fmt"

	"github.com/creasty/defaults"
	"github.com/ethereum/go-ethereum/common"
	"github.com/mitchellh/mapstructure"

	"github.com/sprintertech/frame-bridge/config/chain"
)

type EVMConfig struct {
	GeneralChainConfig chain.GeneralChainConfig
	// SpokePool pins the Across spoke pool quotes must name, zero when not pinned
	SpokePool common.Address
}

type RawEVMConfig struct {
	chain.GeneralChainConfig `mapstructure:",squash"`
	SpokePool                string `mapstructure:"spokePool"`
}

func (c *RawEVMConfig) Validate() error {
	if err := c.GeneralChainConfig.Validate(); err != nil {
		return err
	}
	if c.SpokePool != "" && !common.IsHexAddress(c.SpokePool) {
		return fmt.Errorf("invalid spoke pool address %s for chain %s", c.SpokePool, c.Name)
	}
	return nil
}

// NewEVMConfig decodes and validates an instance of an EVMConfig from
// raw chain config
func NewEVMConfig(chainConfig map[string]interface{}) (*EVMConfig, error) {
	var c RawEVMConfig
	err := mapstructure.Decode(chainConfig, &c)
	if err != nil {
		return nil, err
	}

	err = defaults.Set(&c)
	if err != nil {
		return nil, err
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}

	config := &EVMConfig{
		GeneralChainConfig: c.GeneralChainConfig,
	}
	if c.SpokePool != "" {
		config.SpokePool = common.HexToAddress(c.SpokePool)
	}

	return config, nil
}
