package cmd

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/logrusorgru/aurora"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dethertech/dether-go/account"
	"github.com/dethertech/dether-go/listing"
)

var keystoreFile string

// promptKeystoreAccount unlocks the keystore given by --keystore,
// reading the passphrase from the terminal without echo.
func promptKeystoreAccount() (*account.Account, error) {
	if keystoreFile == "" {
		return nil, fmt.Errorf("--keystore is required")
	}
	fmt.Fprintf(os.Stderr, "Passphrase for %s: ", keystoreFile)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("couldn't read passphrase: %w", err)
	}
	return account.NewKeystoreAccount(keystoreFile, string(password))
}

var withdrawCmd = &cobra.Command{
	Use:   "withdraw",
	Short: "Delete your teller listing and get the escrow back",
	RunE: func(cmd *cobra.Command, args []string) error {
		acct, err := promptKeystoreAccount()
		if err != nil {
			return err
		}
		client, err := buildClient()
		if err != nil {
			return err
		}
		hash, err := client.WithdrawListing(context.Background(), acct)
		if err != nil {
			return err
		}
		fmt.Printf("withdrawal submitted: %s\n", aurora.Green(hash.Hex()))
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status <address>",
	Short: "Show how far an address's listing publish got",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := buildClient()
		if err != nil {
			return err
		}
		addr := parseAddressArg(args[0])
		if addr == nil {
			return fmt.Errorf("%s is not an ethereum address", args[0])
		}
		status, err := client.ListingStatus(context.Background(), *addr)
		if err != nil {
			return err
		}
		switch status {
		case listing.StatusFunded:
			fmt.Println(aurora.Green(status.String()))
		case listing.StatusRegistered:
			fmt.Println(aurora.Yellow(status.String()), "- registration landed but the stake leg didn't")
		default:
			fmt.Println(status)
		}
		return nil
	},
}

func init() {
	withdrawCmd.Flags().StringVarP(&keystoreFile, "keystore", "k", "", "keystore file holding the listing owner's key")
	rootCmd.AddCommand(withdrawCmd)
	rootCmd.AddCommand(statusCmd)
}
