package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/wargame-api/internal/dice"
	"github.com/KirkDiggler/wargame-api/internal/entities/wargame"
)

var rollSeed int64

var rollCmd = &cobra.Command{
	Use:   "roll [notation]",
	Short: "Roll dice locally without a server",
	Long: `Parse NdM notation and roll it in process. Examples:

  roll 2d6
  roll 1d20 --seed 42`,
	Args: cobra.ExactArgs(1),
	RunE: runRoll,
}

var weaponsCmd = &cobra.Command{
	Use:   "weapons",
	Short: "List the armoury profiles with their shot and damage spread",
	Args:  cobra.NoArgs,
	RunE:  runWeapons,
}

func init() {
	rollCmd.Flags().Int64Var(&rollSeed, "seed", 0, "seed for a repeatable roll (0 seeds from the clock)")
}

func runRoll(cmd *cobra.Command, args []string) error {
	d, err := dice.Parse(args[0])
	if err != nil {
		return err
	}

	roller := dice.NewSeededRoller(&dice.SeededRollerConfig{Seed: rollSeed})
	results, err := d.Roll(roller)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Rolling %s (min %d, max %d, average %.1f)\n", d, d.Min(), d.Max(), d.Average())
	fmt.Fprintf(out, "  Individual Dice: %v\n", results)
	fmt.Fprintf(out, "  Total: %d\n", dice.Total(results))
	return nil
}

func runWeapons(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	for _, name := range wargame.ArmouryNames() {
		profile, err := wargame.LookupProfile(name)
		if err != nil {
			return err
		}
		weapon, err := wargame.ParseWeaponProfile(profile)
		if err != nil {
			return fmt.Errorf("armoury entry %q: %w", name, err)
		}

		summary := weapon.Summary()
		fmt.Fprintf(out, "%s\n", weapon)
		fmt.Fprintf(out, "  shots %d-%d (avg %.2f), damage %d-%d (avg %.2f), max total %d\n",
			summary.MinShots, summary.MaxShots, summary.AverageShots,
			summary.MinDamage, summary.MaxDamage, summary.AverageDamage,
			summary.MaxTotalDamage)
	}
	return nil
}
