package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/wargame-api/internal/handlers/wargame/v1alpha1"
)

var getRollSessionCmd = &cobra.Command{
	Use:   "get-session [entity-id] [context]",
	Short: "Get existing dice roll session",
	Long: `Retrieve all dice rolls for a specific entity and context. Examples:

  get-session model-123 shooting
  get-session squad-7 weapon_resolution`,
	Args: cobra.ExactArgs(2),
	RunE: getRollSession,
}

func getRollSession(_ *cobra.Command, args []string) error {
	entityID := args[0]
	rollContext := args[1]

	client, cleanup, err := createCombatClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	fmt.Printf("Getting roll session for entity %s (context: %s)...\n", entityID, rollContext)

	resp, err := client.GetRollSession(ctx, &v1alpha1.GetRollSessionRequest{
		EntityId: entityID,
		Context:  rollContext,
	})
	if err != nil {
		return fmt.Errorf("failed to get roll session: %w", err)
	}

	fmt.Printf("\n📜 Roll Session:\n")
	fmt.Printf("================\n")

	fmt.Printf("Created: %s\n", time.Unix(resp.CreatedAt, 0).Format("2006-01-02 15:04:05"))
	fmt.Printf("Expires: %s\n", time.Unix(resp.ExpiresAt, 0).Format("2006-01-02 15:04:05"))
	fmt.Printf("Total Rolls: %d\n", len(resp.Rolls))

	for i, roll := range resp.Rolls {
		printRoll(i, roll)
	}

	return nil
}
