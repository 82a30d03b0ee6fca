package disassemble

import (
	"strings"
	"testing"

	"github.com/jmchacon/i8080/memory"
)

func TestStep(t *testing.T) {
	tests := []struct {
		name    string
		bytes   []uint8
		wantLen int
		wantSub string
	}{
		{"NOP", []uint8{0x00}, 1, "NOP"},
		{"undocumented NOP", []uint8{0x08}, 1, "NOP"},
		{"MOV B,C", []uint8{0x41}, 1, "MOV    B,C"},
		{"MOV A,M", []uint8{0x7E}, 1, "MOV    A,M"},
		{"HLT", []uint8{0x76}, 1, "HLT"},
		{"MVI A,byte", []uint8{0x3E, 0x42}, 2, "MVI    A,42"},
		{"LXI H,word", []uint8{0x21, 0x34, 0x12}, 3, "LXI    H,1234"},
		{"JMP word", []uint8{0xC3, 0x00, 0x20}, 3, "JMP    2000"},
		{"CALL undocumented alias", []uint8{0xDD, 0x00, 0x20}, 3, "CALL   2000"},
		{"ADI byte", []uint8{0xC6, 0x05}, 2, "ADI    05"},
		{"RST 4", []uint8{0xE7}, 1, "RST    4"},
		{"RST 7", []uint8{0xFF}, 1, "RST    7"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := memory.NewRAM()
			memory.Load(m, 0, tc.bytes)
			text, n := Step(0, m)
			if n != tc.wantLen {
				t.Errorf("length: got %d want %d", n, tc.wantLen)
			}
			if !strings.Contains(text, tc.wantSub) {
				t.Errorf("text %q does not contain %q", text, tc.wantSub)
			}
		})
	}
}

func TestStepAdvancesAcrossInstructions(t *testing.T) {
	m := memory.NewRAM()
	memory.Load(m, 0, []uint8{0x3E, 0x10, 0x00, 0x76})
	pc := uint16(0)
	var seen []string
	for i := 0; i < 3; i++ {
		text, n := Step(pc, m)
		seen = append(seen, text)
		pc += uint16(n)
	}
	if len(seen) != 3 {
		t.Fatalf("expected 3 instructions decoded, got %d", len(seen))
	}
	if !strings.Contains(seen[0], "MVI") || !strings.Contains(seen[1], "NOP") || !strings.Contains(seen[2], "HLT") {
		t.Errorf("unexpected decode sequence: %v", seen)
	}
}
