// Package main is the entry point for the gRPC server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/wargame-api/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "wargame-api",
	Short: "Wargame API gRPC Server",
	Long:  `Wargame API rolls dice notation and resolves weapon profiles over gRPC.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(rollCmd)
	rootCmd.AddCommand(weaponsCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
