package cmd

import (
	"fmt"
	"os"

	"discbox/server"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "discbox",
	Short: "discbox is a CD/DVD catalog service.",
	Long:  `discbox stores a physical media collection and resolves scanned barcodes into catalog metadata.`,
	Run: func(cmd *cobra.Command, args []string) {
		server.Start()
	},
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
