package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmchacon/i8080/debugger"
)

func newDebugCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debug <file>",
		Short: "Interactively step, breakpoint, and disassemble a program image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("can't open %s: %w", args[0], err)
			}
			return debugger.Run(rom)
		},
	}
	return cmd
}
