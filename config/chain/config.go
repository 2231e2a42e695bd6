// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package chain

import (
	"fmt"

	"github.com/sprintertech/frame-bridge/chains"
)

type GeneralChainConfig struct {
	Name string `mapstructure:"name"`
	Type string `mapstructure:"type" default:"evm"`
}

func (c *GeneralChainConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("required field chain.Name empty")
	}

	n, err := chains.ParseNetwork(c.Name)
	if err != nil {
		return err
	}
	if !chains.IsSource(n) {
		return fmt.Errorf("network %s is not a source network", n)
	}
	return nil
}

// Network returns the validated network of the chain config
func (c *GeneralChainConfig) Network() chains.Network {
	n, _ := chains.ParseNetwork(c.Name)
	return n
}
