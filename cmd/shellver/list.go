package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ZebulonRouseFrantzich/shellver/internal/shell"
)

// runList handles `shellver list`
func runList(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("list takes no arguments")
	}
	return writeList(os.Stdout)
}

func writeList(w io.Writer) error {
	for _, name := range shell.SupportedShells() {
		d, _ := shell.Classify(name)
		note := ""
		if !d.Probeable() {
			note = " (version not reported)"
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", name, note); err != nil {
			return err
		}
	}
	return nil
}
