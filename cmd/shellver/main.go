package main

import (
	"fmt"
	"os"
)

// Version will be set at build time via -ldflags
var Version = "v0.1.0"

func main() {
	args := os.Args[1:]

	cmd := "detect"
	if len(args) > 0 {
		cmd = args[0]
		args = args[1:]
	}

	var err error
	switch cmd {
	case "--version", "version":
		fmt.Printf("shellver %s\n", Version)
		return
	case "help", "--help", "-h":
		printHelp()
		return
	case "detect":
		err = runDetect(args)
	case "list":
		err = runList(args)
	case "tree":
		err = runTree(args)
	case "platform":
		err = runPlatform(args)
	default:
		// Flags without a subcommand belong to detect.
		if len(cmd) > 0 && cmd[0] == '-' {
			err = runDetect(os.Args[1:])
			break
		}
		fmt.Fprintf(os.Stderr, "Error: unknown command: %s\n", cmd)
		printHelp()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("shellver - detect the shell running this process and its version")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  shellver [detect] [--json] [--config PATH]  Print \"<shell> <version>\"")
	fmt.Println("  shellver list                               List supported shells")
	fmt.Println("  shellver tree                               Show the process ancestry")
	fmt.Println("  shellver platform                           Show host platform details")
	fmt.Println("  shellver --version                          Show version information")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  SHELLVER_CONFIG   config file (default ~/.config/shellver/config.lua)")
	fmt.Println("  SHELLVER_DEBUG    enable debug logging on stderr")
}
