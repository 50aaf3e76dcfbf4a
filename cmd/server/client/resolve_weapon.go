package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/wargame-api/internal/handlers/wargame/v1alpha1"
)

var (
	profileCategory string
	profileShots    string
	profileStrength int32
	profileAP       int32
	profileDamage   string
)

var resolveWeaponCmd = &cobra.Command{
	Use:   "resolve-weapon [entity-id] [weapon]",
	Short: "Fire a weapon once and roll its shots and damage",
	Long: `Resolve an armoury weapon by name, or a custom profile when --category is set. Examples:

  resolve-weapon squad-7 "frag grenade"
  resolve-weapon tank-1 "Demolisher cannon" --category blast --shots 1d6 --strength 10 --ap 3 --damage 1d6`,
	Args: cobra.ExactArgs(2),
	RunE: resolveWeapon,
}

func init() {
	resolveWeaponCmd.Flags().StringVar(&profileCategory, "category", "", "Weapon category for a custom profile")
	resolveWeaponCmd.Flags().StringVar(&profileShots, "shots", "1", "Shots, a number or NdM")
	resolveWeaponCmd.Flags().Int32Var(&profileStrength, "strength", 4, "Strength")
	resolveWeaponCmd.Flags().Int32Var(&profileAP, "ap", 0, "Armour penetration magnitude")
	resolveWeaponCmd.Flags().StringVar(&profileDamage, "damage", "1", "Damage, a number or NdM")
}

func resolveWeapon(_ *cobra.Command, args []string) error {
	entityID := args[0]
	weapon := args[1]

	client, cleanup, err := createCombatClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	req := &v1alpha1.ResolveWeaponRequest{EntityId: entityID}
	if profileCategory != "" {
		req.Profile = &v1alpha1.WeaponProfile{
			Name:              weapon,
			Category:          profileCategory,
			Shots:             profileShots,
			Strength:          profileStrength,
			ArmourPenetration: profileAP,
			Damage:            profileDamage,
		}
	} else {
		req.WeaponName = weapon
	}

	resp, err := client.ResolveWeapon(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to resolve weapon: %w", err)
	}

	fmt.Printf("\n🔫 %s\n", resp.Weapon)
	fmt.Printf("===================\n")
	if resp.Summary != nil {
		fmt.Printf("Shots %d-%d (avg %.2f), damage %d-%d (avg %.2f)\n",
			resp.Summary.MinShots, resp.Summary.MaxShots, resp.Summary.AverageShots,
			resp.Summary.MinDamage, resp.Summary.MaxDamage, resp.Summary.AverageDamage)
	}
	fmt.Printf("Shots fired: %d\n", resp.Shots)
	fmt.Printf("Damage per shot: %v\n", resp.Damage)
	fmt.Printf("Total damage: %d\n", resp.TotalDamage)

	for i, roll := range resp.Rolls {
		printRoll(i, roll)
	}

	return nil
}
