package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sprintertech/frame-bridge/api/handlers"
	"github.com/sprintertech/frame-bridge/app"
)

const (
	NetworkFlagName   = "network"
	AmountFlagName    = "amount"
	RecipientFlagName = "recipient"
)

var depositCMD = &cobra.Command{
	Use:   "deposit",
	Short: "Build a depositV3 transaction to arbitrum and print it",
	Long:  "Fetches a relay fee quote and prints the eth_sendTransaction descriptor for bridging the amount from the network to arbitrum",
	RunE: func(cmd *cobra.Command, args []string) error {
		return deposit(cmd.Context(), cmd)
	},
}

func init() {
	depositCMD.Flags().String(NetworkFlagName, "", "Source network: ethereum, base or optimism")
	depositCMD.Flags().String(AmountFlagName, "", "Amount in ether, defaults to the configured minimum")
	depositCMD.Flags().String(RecipientFlagName, "", "Depositor and recipient address")
	_ = depositCMD.MarkFlagRequired(NetworkFlagName)
	_ = depositCMD.MarkFlagRequired(RecipientFlagName)
	_ = viper.BindPFlag(NetworkFlagName, depositCMD.Flags().Lookup(NetworkFlagName))
	_ = viper.BindPFlag(AmountFlagName, depositCMD.Flags().Lookup(AmountFlagName))
	_ = viper.BindPFlag(RecipientFlagName, depositCMD.Flags().Lookup(RecipientFlagName))
}

func deposit(ctx context.Context, cmd *cobra.Command) error {
	configuration, err := app.LoadConfig()
	if err != nil {
		return err
	}

	orchestrator, err := app.NewOrchestrator(configuration)
	if err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, configuration.BridgeConfig.QuoteTimeout)
	defer cancel()

	call, err := orchestrator.Execute(
		ctx,
		viper.GetString(NetworkFlagName),
		viper.GetString(AmountFlagName),
		viper.GetString(RecipientFlagName))
	if err != nil {
		return err
	}

	resp, err := handlers.NewTransactionResponse(call)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
