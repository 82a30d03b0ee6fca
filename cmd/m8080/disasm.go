package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmchacon/i8080/disassemble"
	"github.com/jmchacon/i8080/memory"
)

func newDisasmCmd() *cobra.Command {
	var start uint16
	var offset uint16

	cmd := &cobra.Command{
		Use:   "disasm <file>",
		Short: "Disassemble a flat binary image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("can't open %s: %w", args[0], err)
			}
			if max := 1<<16 - int(offset); len(b) > max {
				fmt.Printf("length %d at offset %d too long, truncating to 64k\n", len(b), offset)
				b = b[:max]
			}

			m := memory.NewRAM()
			m.PowerOn()
			memory.Load(m, offset, b)

			fmt.Printf("0x%.2X bytes at pc: %.4X\n", len(b), start)
			pc, cnt := start, 0
			for cnt < len(b) {
				text, n := disassemble.Step(pc, m)
				fmt.Println(text)
				pc += uint16(n)
				cnt += n
			}
			return nil
		},
	}
	cmd.Flags().Uint16Var(&start, "start-pc", 0, "PC value to start disassembling")
	cmd.Flags().Uint16Var(&offset, "offset", 0, "Offset into RAM to load the image at")
	return cmd
}
