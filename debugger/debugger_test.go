package debugger

import (
	"strings"
	"testing"
)

func TestStepCommand(t *testing.T) {
	m := newModel([]uint8{0x3E, 0x42, 0x76}) // MVI A,0x42 ; HLT
	m.runCommand("s")
	if m.cpu.A != 0x42 {
		t.Fatalf("A: got 0x%.2X want 0x42", m.cpu.A)
	}
	if m.cpu.PC != loadAddr+2 {
		t.Fatalf("PC: got 0x%.4X want 0x%.4X", m.cpu.PC, loadAddr+2)
	}
}

func TestStepCommandWithCount(t *testing.T) {
	m := newModel([]uint8{0x00, 0x00, 0x00, 0x76})
	m.runCommand("s 3")
	if m.cpu.PC != loadAddr+3 {
		t.Fatalf("PC: got 0x%.4X want 0x%.4X", m.cpu.PC, loadAddr+3)
	}
}

func TestBreakpointToggle(t *testing.T) {
	m := newModel([]uint8{0x76})
	m.runCommand("b 0x0100")
	if !m.breakpoints[0x0100] {
		t.Fatal("expected breakpoint set")
	}
	m.runCommand("b 0x0100")
	if m.breakpoints[0x0100] {
		t.Fatal("expected breakpoint cleared")
	}
}

func TestContinueStopsAtBreakpoint(t *testing.T) {
	m := newModel([]uint8{0x00, 0x00, 0x00, 0x76})
	m.breakpoints[loadAddr+2] = true
	m.runCommand("c")
	if m.cpu.PC != loadAddr+2 {
		t.Fatalf("PC: got 0x%.4X want 0x%.4X", m.cpu.PC, loadAddr+2)
	}
}

func TestContinueStopsAtHalt(t *testing.T) {
	m := newModel([]uint8{0x00, 0x76})
	m.runCommand("c")
	if m.cpu.PC != loadAddr+1 {
		t.Fatalf("PC: got 0x%.4X want 0x%.4X", m.cpu.PC, loadAddr+1)
	}
}

func TestDisassembleCommand(t *testing.T) {
	m := newModel([]uint8{0x00, 0x76})
	m.runCommand("d 2")
	if len(m.history) != 2 {
		t.Fatalf("history: got %d lines want 2", len(m.history))
	}
	if !strings.Contains(m.history[0], "NOP") {
		t.Errorf("history[0] = %q, want NOP", m.history[0])
	}
	if !strings.Contains(m.history[1], "HLT") {
		t.Errorf("history[1] = %q, want HLT", m.history[1])
	}
}

func TestHelpCommand(t *testing.T) {
	m := newModel([]uint8{0x76})
	m.runCommand("h")
	if len(m.history) == 0 {
		t.Fatal("expected help text in history")
	}
}

func TestQuitCommand(t *testing.T) {
	m := newModel([]uint8{0x76})
	m.runCommand("q")
	if !m.quitting {
		t.Fatal("expected quitting to be set")
	}
}

func TestCpmPrintStringTrap(t *testing.T) {
	// LXI D, msg ; MVI C, 9 ; CALL 0x0005 ; HLT ; msg: "OK$"
	code := []uint8{
		0x11, 0x00, 0x00,
		0x0E, 0x09,
		0xCD, 0x05, 0x00,
		0x76,
	}
	msgAddr := loadAddr + uint16(len(code))
	code[1], code[2] = uint8(msgAddr), uint8(msgAddr>>8)
	rom := append(code, 'O', 'K', '$')

	m := newModel(rom)
	m.runCommand("s 3")
	if len(m.history) == 0 || m.history[len(m.history)-1] != "OK" {
		t.Fatalf("history: got %v want last entry OK", m.history)
	}
}
