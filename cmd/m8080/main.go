// Command m8080 is a small toolkit around the 8080 core: a static
// disassembler, a CP/M BDOS-trap test-ROM runner, a Space Invaders cabinet
// host, and an interactive step debugger.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "m8080",
		Short: "Tools for running and inspecting 8080 program images",
	}
	root.AddCommand(newDisasmCmd(), newCPMCmd(), newInvadersCmd(), newDebugCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
