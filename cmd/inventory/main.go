package main

import (
	"fmt"
	"os"

	"github.com/amoylab/inventory/internal/common/cnst"
	"github.com/amoylab/inventory/internal/common/config"
	"github.com/amoylab/inventory/pkg/version"
	"github.com/spf13/cobra"
)

var (
	configPath string
	pidFile    string

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of " + cnst.CommandName,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", cnst.CommandName, version.Get())
		},
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Run the inventory web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}

	rootCmd = &cobra.Command{
		Use:          cnst.CommandName,
		Short:        "Inventory management server",
		Long:         `Inventory manages suppliers, products, purchases and orders, and reports on stock movement`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "conf", "c", cnst.InventoryYaml, "path to configuration file")
	serveCmd.Flags().StringVar(&pidFile, "pid", "", "write the process id to this file")
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())
	rootCmd.AddCommand(versionCmd, serveCmd, userCmd)
}

func loadConfig() (*config.InventoryConfig, error) {
	cfg, cfgPath, err := config.LoadConfig[config.InventoryConfig](configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration %s: %w", cfgPath, err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
