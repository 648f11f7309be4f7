package cmd

import (
	"context"
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"

	"github.com/dethertech/dether-go/common"
)

var balanceCmd = &cobra.Command{
	Use:   "balance <address>",
	Short: "Show an address's ether, token and escrow balances",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !common.IsAddress(args[0]) {
			return fmt.Errorf("%s is not an ethereum address", args[0])
		}
		addr := common.HexToAddress(args[0])
		client, err := buildClient()
		if err != nil {
			return err
		}
		ctx := context.Background()
		eth, err := client.Balance(ctx, addr)
		if err != nil {
			return err
		}
		dth, err := client.TokenBalance(ctx, addr)
		if err != nil {
			return err
		}
		escrow, err := client.Listings().TellerBalance(ctx, addr)
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", aurora.Bold(addr.Hex()))
		fmt.Printf("  ETH:    %s\n", eth)
		fmt.Printf("  DTH:    %s\n", dth)
		fmt.Printf("  escrow: %s ETH\n", escrow)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(balanceCmd)
}
