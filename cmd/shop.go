package cmd

import (
	"context"
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"

	"github.com/dethertech/dether-go/common"
)

var shopCmd = &cobra.Command{
	Use:   "shop <address>",
	Short: "Show one shop listing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !common.IsAddress(args[0]) {
			return fmt.Errorf("%s is not an ethereum address", args[0])
		}
		client, err := buildClient()
		if err != nil {
			return err
		}
		shop, err := client.Listings().GetShop(context.Background(), common.HexToAddress(args[0]))
		if err != nil {
			return err
		}
		if shop == nil {
			fmt.Println(aurora.Yellow("no shop listing at this address"))
			return nil
		}
		r := shop.Record
		fmt.Printf("%s %s\n", aurora.Bold("shop"), aurora.Green(shop.Address.Hex()))
		fmt.Printf("  name:     %s (%s)\n", r.Name, r.Category)
		fmt.Printf("  location: %s %s (%s, %s)\n", r.Lat, r.Lng, r.CountryID, r.PostalCode)
		fmt.Printf("  opening:  %s\n", r.Opening)
		if r.Description != "" {
			fmt.Printf("  about:    %s\n", r.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(shopCmd)
}
