package main

import (
	"fmt"

	"github.com/dhamidi/bigsmiles/bigsmiles"
	"github.com/spf13/cobra"
)

func newTokenizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize <bigsmiles>",
		Short: "Tokenize a BigSMILES string and print one token per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := bigsmiles.Tokenize(args[0])
			if err != nil {
				return err
			}
			for i, tok := range tokens {
				fmt.Printf("%3d  %-20s %q\n", i, tok.Kind, tok.Value)
			}
			return nil
		},
	}
}
