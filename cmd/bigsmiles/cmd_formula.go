package main

import (
	"fmt"
	"sort"

	"github.com/dhamidi/bigsmiles/bigsmiles"
	"github.com/dhamidi/bigsmiles/formula"
	"github.com/spf13/cobra"
)

func newFormulaCmd() *cobra.Command {
	var showAnalysis bool
	var showRepeatUnits bool

	cmd := &cobra.Command{
		Use:   "formula <bigsmiles>",
		Short: "Print molecular formula and molar mass of a BigSMILES string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := bigsmiles.Parse(args[0])
			if err != nil {
				return err
			}

			f := formula.FromMolecule(m)
			fmt.Printf("formula:    %s\n", f)
			fmt.Printf("molar mass: %.3f g/mol\n", f.MolarMass())
			if f.ContainsStochasticObject() {
				fmt.Println("note: formula is partial; stochastic contents counted as {}")
			}

			if showAnalysis {
				printAnalysis(f)
			}

			if showRepeatUnits {
				for _, so := range m.StochasticObjects() {
					for _, sf := range so.Fragments() {
						rf := formula.FromFragment(sf)
						fmt.Printf("repeat unit %s: %s (%.3f g/mol)\n", sf, rf, rf.MolarMass())
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showAnalysis, "analysis", false, "print elemental analysis (mass fractions)")
	cmd.Flags().BoolVar(&showRepeatUnits, "repeat-units", false, "print per-fragment repeat unit formulas")

	return cmd
}

func printAnalysis(f *formula.Formula) {
	analysis := f.ElementalAnalysis()
	symbols := make([]string, 0, len(analysis))
	for symbol := range analysis {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	for _, symbol := range symbols {
		fmt.Printf("  %-3s %6.2f%%\n", symbol, analysis[symbol]*100)
	}
}
