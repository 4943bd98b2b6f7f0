package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"discbox/config"
	"discbox/core/lookup"

	"github.com/spf13/cobra"
)

var lookupKind string

// lookupCmd resolves a single barcode from the terminal. Useful for checking
// what the external catalogs return without going through the HTTP API.
var lookupCmd = &cobra.Command{
	Use:   "lookup <barcode>",
	Short: "Resolve a barcode against the external catalogs",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		resolver := lookup.NewResolver(cfg)

		var result lookup.Result
		switch lookupKind {
		case "cd":
			result = resolver.ResolveCD(context.Background(), args[0])
		case "dvd":
			result = resolver.ResolveDVD(context.Background(), args[0])
		default:
			fmt.Fprintf(os.Stderr, "unknown kind %q (want cd or dvd)\n", lookupKind)
			os.Exit(1)
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to encode result: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
	},
}

func init() {
	lookupCmd.Flags().StringVarP(&lookupKind, "kind", "k", "cd", "media kind: cd or dvd")
	rootCmd.AddCommand(lookupCmd)
}
