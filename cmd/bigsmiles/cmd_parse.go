package main

import (
	"fmt"

	"github.com/dhamidi/bigsmiles/bigsmiles"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var showTree bool
	var showAromatic bool
	var showIndexOne bool
	var showHydrogens bool

	cmd := &cobra.Command{
		Use:   "parse <bigsmiles>",
		Short: "Parse a BigSMILES string and print its canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := bigsmiles.Parse(args[0])
			if err != nil {
				return err
			}

			if showTree {
				fmt.Println(m.Tree())
				return nil
			}

			opts := bigsmiles.WriteOptions{
				ShowAromaticBonds:      showAromatic,
				ShowDescriptorIndexOne: showIndexOne,
				ShowHydrogens:          showHydrogens,
			}
			fmt.Println(m.StringWith(opts))
			return nil
		},
	}

	cmd.Flags().BoolVar(&showTree, "tree", false, "print the parsed object tree instead of the canonical form")
	cmd.Flags().BoolVar(&showAromatic, "aromatic-bonds", false, "write aromatic bond symbols explicitly")
	cmd.Flags().BoolVar(&showIndexOne, "descriptor-index-1", false, "write the default bonding descriptor index 1")
	cmd.Flags().BoolVar(&showHydrogens, "hydrogens", false, "write implicit hydrogens explicitly")

	return cmd
}
