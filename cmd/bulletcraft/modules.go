package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bulletcraft/internal/config"
	"github.com/vovakirdan/bulletcraft/internal/module"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List the module catalogue",
	Long: `Shows every module type with its label, kind, rarity and the number
of copies in the starting inventory of the active config.

Modifiers affect the next base module to their right. A collision trigger
turns the rest of the program into a burst fired where the next bullet
first hits a brick.`,
	Args: cobra.NoArgs,
	RunE: runModules,
}

func runModules(_ *cobra.Command, _ []string) error {
	preset, err := parsePreset()
	if err != nil {
		return err
	}
	cfg, err := loadGameConfig(preset)
	if err != nil {
		return err
	}

	mods := module.All()

	maxTypeLen := len("Type")
	for _, m := range mods {
		maxTypeLen = max(maxTypeLen, len(m.Type))
	}

	fmt.Println("Modules:")
	fmt.Println()
	fmt.Printf("  %-*s  %-5s  %-8s  %-9s  %-5s  %s\n", maxTypeLen, "Type", "Label", "Kind", "Rarity", "Stock", "Description")
	fmt.Printf("  %-*s  %-5s  %-8s  %-9s  %-5s  %s\n", maxTypeLen, "----", "-----", "----", "------", "-----", "-----------")

	for _, m := range mods {
		kind := "base"
		if m.IsModifier {
			kind = "modifier"
		}
		fmt.Printf("  %-*s  %-5s  %-8s  %-9s  %-5d  %s\n",
			maxTypeLen, m.Type, m.Type.Short(), kind, m.Rarity, cfg.Inventory[m.Type], m.Description)
	}

	fmt.Println()
	fmt.Printf("%d base modules, %d modifiers.\n", len(module.BaseModules()), len(module.Modifiers()))
	fmt.Printf("Each module costs %.0f energy per shot.\n", cfg.Slots.EnergyPerModule)
	if preset != "" && preset != config.DifficultyNormal {
		fmt.Printf("Difficulty: %s\n", preset)
	}
	return nil
}
