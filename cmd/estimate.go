package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/dethertech/dether-go/addrbook"
	"github.com/dethertech/dether-go/swap"
)

var estimateCmd = &cobra.Command{
	Use:   "estimate <src> <dest> <amount>",
	Short: "Quote a token swap without sending anything",
	Long: `Quote how much <dest> the configured venue currently pays for
<amount> of <src>. One side of the pair must be ETH.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		pair := swap.Pair{
			Base:  addrbook.Role(strings.ToUpper(args[0])),
			Quote: addrbook.Role(strings.ToUpper(args[1])),
		}
		amount, err := decimal.NewFromString(args[2])
		if err != nil {
			return fmt.Errorf("%s is not a valid amount", args[2])
		}
		client, err := buildClient()
		if err != nil {
			return err
		}
		quote, err := client.EstimateSwap(context.Background(), pair, amount)
		if err != nil {
			return err
		}
		fmt.Printf("%s %s -> %s %s on %s\n",
			quote.SrcAmount, pair.Base,
			aurora.Green(quote.ExpectedAmount.String()), pair.Quote,
			quote.Venue,
		)
		fmt.Printf("worst case after slippage: %s %s\n", quote.SlippageAmount, pair.Quote)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(estimateCmd)
}
