package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	dether "github.com/dethertech/dether-go"
	"github.com/dethertech/dether-go/common"
	"github.com/dethertech/dether-go/config"
)

var rootCmd = &cobra.Command{
	Use:   "dether",
	Short: "Browse and operate Dether marketplace listings from the command line",
	Long: `dether is a command line client for the Dether peer-to-peer marketplace.

It reads geolocated teller and shop listings straight from the chain,
quotes token swaps against the configured exchange venue, and signs
listing operations with a local keystore file.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var cfgFile string

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.dether.yaml)")
	rootCmd.PersistentFlags().StringP("network", "N", "mainnet", "network to talk to: mainnet, ropsten, rinkeby or kovan")
	rootCmd.PersistentFlags().String("node", "", "custom JSON-RPC node URL, overrides the network default")
	rootCmd.PersistentFlags().Float64P("gasprice", "p", 0, "gas price in gwei, 0 means the library default")
	viper.BindPFlag("network", rootCmd.PersistentFlags().Lookup("network"))
	viper.BindPFlag("node", rootCmd.PersistentFlags().Lookup("node"))
	viper.BindPFlag("gasprice", rootCmd.PersistentFlags().Lookup("gasprice"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigName(".dether")
		}
	}
	viper.SetEnvPrefix("DETHER")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// buildClient constructs a client from the resolved flag and config
// file values.
func buildClient() (*dether.Client, error) {
	cfg := config.Config{
		Network: viper.GetString("network"),
		NodeURL: viper.GetString("node"),
	}
	if gwei := viper.GetFloat64("gasprice"); gwei > 0 {
		cfg.GasPriceWei = common.GweiToWei(gwei)
	}
	return dether.NewClient(cfg)
}
