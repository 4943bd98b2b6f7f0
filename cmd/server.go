package cmd

import (
	"discbox/server"

	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the discbox HTTP server",
	Long:  `Start the catalog API server: CD/DVD collections, barcode lookup and dashboard endpoints.`,
	Run: func(cmd *cobra.Command, args []string) {
		server.Start()
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
