package main

import (
	"fmt"

	"github.com/dhamidi/bigsmiles/bigsmiles"
	"github.com/dhamidi/bigsmiles/reaction"
	"github.com/spf13/cobra"
)

func newReactionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reaction <reaction>",
		Short: "Parse a reaction string (reactants > agents > products)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rxn, err := reaction.Parse(args[0])
			if err != nil {
				return err
			}
			printChemicals("reactants", rxn.Reactants)
			printChemicals("agents", rxn.Agents)
			printChemicals("products", rxn.Products)
			return nil
		},
	}
}

func printChemicals(label string, chemicals []*bigsmiles.Molecule) {
	fmt.Printf("%s:\n", label)
	if len(chemicals) == 0 {
		fmt.Println("  (none)")
		return
	}
	for _, m := range chemicals {
		fmt.Printf("  %s\n", m)
	}
}
