// Package cpm hosts an 8080 program image that expects the handful of CP/M
// BDOS calls the classic 8080 instruction-exerciser test ROMs rely on: a
// console-output function reached via CALL 0x0005, with C holding the
// function number. This is the same trick used to run TST8080.COM,
// CPUTEST.COM, 8080PRE.COM, and 8080EXER.COM under a bare interpreter
// instead of a full CP/M BIOS.
package cpm

import (
	"bytes"
	"fmt"

	"github.com/jmchacon/i8080/cpu"
	"github.com/jmchacon/i8080/memory"
)

const (
	loadAddr = 0x0100
	bdosAddr = 0x0005

	bdosPrintChar   = 2
	bdosPrintString = 9
)

// LoadError reports a ROM image that cannot be hosted (too large for the
// address space left after the load point).
type LoadError struct {
	Size int
}

// Error implements the error interface.
func (e LoadError) Error() string {
	return fmt.Sprintf("cpm: image of %d bytes does not fit below 0x10000 when loaded at 0x%.4X", e.Size, loadAddr)
}

// Result is the outcome of running an image to completion: a jump to
// address 0 is treated as the image's exit, per the convention the 8080
// exerciser ROMs use (CP/M warm boot lives at 0x0000).
type Result struct {
	Cycles uint64
	Output string
}

// Run loads rom at 0x0100, patches the BDOS console entry point at 0x0005
// with a RET so CALL 0x0005 returns immediately after the trap below
// inspects it, and steps the core until PC reaches 0.
func Run(rom []uint8) (Result, error) {
	if len(rom) > 0x10000-loadAddr {
		return Result{}, LoadError{Size: len(rom)}
	}

	m := memory.NewRAM()
	m.PowerOn()
	memory.Load(m, loadAddr, rom)
	m.Write(bdosAddr, 0xC9) // RET

	var out bytes.Buffer
	s := cpu.New(loadAddr, cpu.Devices{Mem: m})

	for {
		s.Step()

		if s.PC == bdosAddr {
			trapBDOS(s, m, &out)
		}
		if s.PC == 0 {
			return Result{Cycles: s.Cycles, Output: out.String()}, nil
		}
	}
}

// trapBDOS emulates the two BDOS functions the exerciser ROMs call: print a
// single character (function 2, character in E) and print a '$'-terminated
// string (function 9, string address in DE).
func trapBDOS(s *cpu.State, m memory.Bank, out *bytes.Buffer) {
	switch s.C {
	case bdosPrintChar:
		out.WriteByte(s.E)
	case bdosPrintString:
		for addr := s.DE(); m.Read(addr) != '$'; addr++ {
			out.WriteByte(m.Read(addr))
		}
	}
}
