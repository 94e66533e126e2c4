package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "magentoctl",
	Short: "magentoctl runs commerce actions against a Magento backend",
	Long:  `magentoctl invokes the cart, customer, order and product actions locally, using the same configuration as the deployed functions.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
