// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package cli

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/sprintertech/frame-bridge/config"
)

var (
	rootCMD = &cobra.Command{
		Use: "frame-bridge",
	}
)

func init() {
	config.BindFlags(rootCMD)
}

func Execute() {
	rootCMD.AddCommand(runCMD, depositCMD)
	if err := rootCMD.Execute(); err != nil {
		log.Fatal().Err(err).Msg("failed to execute root cmd")
	}
}
