// Package client provides test commands for the Wargame API gRPC service
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/wargame-api/internal/handlers/wargame/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the Wargame API",
	Long:  `Client commands allow you to test the Wargame API by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(rollDiceCmd)
	ClientCmd.AddCommand(resolveWeaponCmd)
	ClientCmd.AddCommand(getRollSessionCmd)
	ClientCmd.AddCommand(clearRollSessionCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createCombatClient creates a combat service client
func createCombatClient() (v1alpha1.CombatServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewCombatServiceClient(conn), cleanup, nil
}

func printRoll(i int, roll *v1alpha1.DiceRoll) {
	fmt.Printf("\nRoll %d:\n", i+1)
	fmt.Printf("  Roll ID: %s\n", roll.RollId)
	fmt.Printf("  Notation: %s\n", roll.Notation)
	if len(roll.Dice) > 0 {
		fmt.Printf("  Individual Dice: %v\n", roll.Dice)
	}
	fmt.Printf("  Total: %d\n", roll.Total)
	if roll.Purpose != "" {
		fmt.Printf("  Purpose: %s\n", roll.Purpose)
	}
	if roll.Description != "" {
		fmt.Printf("  Description: %s\n", roll.Description)
	}
}
