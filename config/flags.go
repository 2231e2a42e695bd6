// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	ConfigFlagName    = "config"
	ConfigURLFlagName = "config-url"
)

// BindFlags registers the configuration flags on the root command
func BindFlags(rootCMD *cobra.Command) {
	rootCMD.PersistentFlags().String(ConfigFlagName, "env", "Path to the JSON configuration file or 'env' to read it from BRIDGE_* environment variables")
	_ = viper.BindPFlag(ConfigFlagName, rootCMD.PersistentFlags().Lookup(ConfigFlagName))

	rootCMD.PersistentFlags().String(ConfigURLFlagName, "", "URL of shared configuration")
	_ = viper.BindPFlag(ConfigURLFlagName, rootCMD.PersistentFlags().Lookup(ConfigURLFlagName))
}
