package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"magento-commerce-actions/internal/actions"
	"magento-commerce-actions/internal/handlers"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available actions",
	RunE: func(cmd *cobra.Command, args []string) error {
		routes := make(map[string]handlers.Route, len(handlers.Routes))
		for _, r := range handlers.Routes {
			routes[r.Action] = r
		}

		for _, name := range actions.New().Names() {
			r := routes[name]
			fmt.Fprintf(cmd.OutOrStdout(), "%-20s %-7s %s\n", name, r.Method, r.Path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
