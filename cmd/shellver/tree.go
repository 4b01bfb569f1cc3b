package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ZebulonRouseFrantzich/shellver/internal/proc"
	"github.com/ZebulonRouseFrantzich/shellver/internal/shell"
)

// runTree handles `shellver tree`, printing the ancestors the detector walks.
func runTree(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("tree takes no arguments")
	}
	chain, err := proc.NewReader(nil).Chain(shell.MaxHops)
	if err != nil {
		return fmt.Errorf("read ancestry: %w", err)
	}
	return writeTree(os.Stdout, chain)
}

// writeTree prints one line per ancestor, closest first, and marks the one
// detection would pick.
func writeTree(w io.Writer, chain []proc.Entry) error {
	picked := false
	for _, e := range chain {
		mark := " "
		if !picked && shell.IsSupported(e.Name) {
			mark = "*"
			picked = true
		}
		if _, err := fmt.Fprintf(w, "%s %7d  %-16s ppid=%d\n", mark, e.PID, e.Name, e.PPID); err != nil {
			return err
		}
	}
	return nil
}
