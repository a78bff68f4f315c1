package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhamidi/bigsmiles/bigsmiles"
	"github.com/dhamidi/bigsmiles/formula"
	"github.com/peterh/liner"
	"github.com/spf13/cobra"
)

const historyFile = ".bigsmiles_history"

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactively parse BigSMILES strings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRepl()
		},
	}
}

func runRepl() error {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	fmt.Println("enter a BigSMILES string; :tree, :formula and :tokens toggle output; :quit exits")
	showTree := false
	showFormula := false
	showTokens := false

	for {
		line, err := ln.Prompt("bigsmiles> ")
		if err != nil { // Ctrl+D or Ctrl+C
			fmt.Println()
			return nil
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		switch line {
		case ":quit", ":q", ":exit":
			return nil
		case ":tree":
			showTree = !showTree
			continue
		case ":formula":
			showFormula = !showFormula
			continue
		case ":tokens":
			showTokens = !showTokens
			continue
		}

		if showTokens {
			tokens, err := bigsmiles.Tokenize(line)
			if err != nil {
				fmt.Println(err)
				continue
			}
			for _, tok := range tokens {
				fmt.Println(" ", tok)
			}
		}

		m, err := bigsmiles.Parse(line)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(m)
		if showTree {
			fmt.Println(m.Tree())
		}
		if showFormula {
			f := formula.FromMolecule(m)
			fmt.Printf("%s (%.3f g/mol)\n", f, f.MolarMass())
		}
	}
}
