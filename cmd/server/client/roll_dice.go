package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/wargame-api/internal/handlers/wargame/v1alpha1"
)

var rollDescription string

var rollDiceCmd = &cobra.Command{
	Use:   "roll-dice [notation] [entity-id] [context]",
	Short: "Roll dice using NdM notation",
	Long: `Roll dice on the server and record them in a roll session. Examples:

  roll-dice 2d6 model-123 shooting
  roll-dice 1d6 squad-7 morale --description "battle shock"`,
	Args: cobra.ExactArgs(3),
	RunE: rollDice,
}

func init() {
	rollDiceCmd.Flags().StringVar(&rollDescription, "description", "", "What the roll is for")
}

func rollDice(_ *cobra.Command, args []string) error {
	notation := args[0]
	entityID := args[1]
	rollContext := args[2]

	client, cleanup, err := createCombatClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	fmt.Printf("Rolling %s for entity %s (context: %s)...\n", notation, entityID, rollContext)

	resp, err := client.RollDice(ctx, &v1alpha1.RollDiceRequest{
		EntityId:    entityID,
		Context:     rollContext,
		Notation:    notation,
		Description: rollDescription,
	})
	if err != nil {
		return fmt.Errorf("failed to roll dice: %w", err)
	}

	fmt.Printf("\n🎲 Dice Roll Result:\n")
	fmt.Printf("===================\n")
	printRoll(0, resp.Roll)

	fmt.Printf("\nSession expires at: %s\n", time.Unix(resp.ExpiresAt, 0).Format("2006-01-02 15:04:05"))
	fmt.Printf("Total rolls in session: %d\n", len(resp.Rolls))

	return nil
}
