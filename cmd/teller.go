package cmd

import (
	"context"
	"fmt"

	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"

	"github.com/dethertech/dether-go/common"
	"github.com/dethertech/dether-go/listing"
)

var tellerCmd = &cobra.Command{
	Use:   "teller <address>",
	Short: "Show one teller listing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !common.IsAddress(args[0]) {
			return fmt.Errorf("%s is not an ethereum address", args[0])
		}
		client, err := buildClient()
		if err != nil {
			return err
		}
		teller, err := client.GetListing(context.Background(), common.HexToAddress(args[0]))
		if err != nil {
			return err
		}
		if teller == nil {
			fmt.Println(aurora.Yellow("no teller listing at this address"))
			return nil
		}
		printTeller(teller)
		return nil
	},
}

var (
	zoneCountry string
	zonePostal  string
	listAll     bool
)

var tellersCmd = &cobra.Command{
	Use:   "tellers",
	Short: "List teller listings in a zone, or all of them",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := buildClient()
		if err != nil {
			return err
		}
		ctx := context.Background()
		var tellers []*listing.Teller
		switch {
		case listAll:
			tellers, err = client.GetAllListings(ctx)
		case zoneCountry != "":
			tellers, err = client.GetListingsInZone(ctx, zoneCountry, zonePostal)
		default:
			return fmt.Errorf("either --all or --country is required")
		}
		if err != nil {
			return err
		}
		if len(tellers) == 0 {
			fmt.Println(aurora.Yellow("no teller listings found"))
			return nil
		}
		for _, t := range tellers {
			printTeller(t)
			fmt.Println()
		}
		return nil
	},
}

func printTeller(t *listing.Teller) {
	r := t.Record
	fmt.Printf("%s %s\n", aurora.Bold("teller"), aurora.Green(t.Address.Hex()))
	fmt.Printf("  location:  %s %s (%s, %s)\n", r.Lat, r.Lng, r.CountryID, r.PostalCode)
	fmt.Printf("  messenger: %s\n", r.Messenger)
	fmt.Printf("  sell rate: %s%%", r.SellRate)
	if r.Buyer {
		fmt.Printf("   buy rate: %s%%", r.BuyRate)
	}
	fmt.Println()
	fmt.Printf("  escrow:    %s ETH", r.EscrowBalance)
	if r.Online {
		fmt.Printf("   %s", aurora.Green("online"))
	} else {
		fmt.Printf("   %s", aurora.Red("offline"))
	}
	fmt.Println()
	fmt.Printf("  reputation: %d trades, %s ETH sold, %s ETH bought\n",
		t.Reputation.TradeCount, t.Reputation.SellVolume, t.Reputation.BuyVolume)
}

func init() {
	tellersCmd.Flags().StringVarP(&zoneCountry, "country", "c", "", "two letter country code of the zone")
	tellersCmd.Flags().StringVarP(&zonePostal, "postal", "z", "", "postal code of the zone")
	tellersCmd.Flags().BoolVarP(&listAll, "all", "a", false, "list every teller on the network")
	rootCmd.AddCommand(tellerCmd)
	rootCmd.AddCommand(tellersCmd)
}
