package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmchacon/i8080/cpm"
)

func newCPMCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cpm <file>",
		Short: "Run a CP/M-hosted .COM image (TST8080, CPUTEST, 8080PRE, 8080EXER, ...)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rom, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("can't open %s: %w", args[0], err)
			}
			result, err := cpm.Run(rom)
			if err != nil {
				return err
			}
			fmt.Print(result.Output)
			fmt.Printf("\n%d cycles\n", result.Cycles)
			return nil
		},
	}
	return cmd
}
