// Package disassemble implements a disassembler for 8080 opcodes.
package disassemble

import (
	"fmt"

	"github.com/jmchacon/i8080/memory"
)

const (
	modeImplied = iota
	modeImm8
	modeImm16
	modeReg // implied operand already folded into the mnemonic text
)

// mnemonics holds the fixed text for every opcode that needs no operand
// substitution; entries left empty are handled specially in Step because
// their text embeds an operand placeholder or a register name not worth
// tabulating.
var mnemonics = [256]string{
	0x00: "NOP", 0x08: "NOP", 0x10: "NOP", 0x18: "NOP",
	0x20: "NOP", 0x28: "NOP", 0x30: "NOP", 0x38: "NOP",
	0x02: "STAX   B", 0x12: "STAX   D",
	0x0A: "LDAX   B", 0x1A: "LDAX   D",
	0x03: "INX    B", 0x13: "INX    D", 0x23: "INX    H", 0x33: "INX    SP",
	0x0B: "DCX    B", 0x1B: "DCX    D", 0x2B: "DCX    H", 0x3B: "DCX    SP",
	0x04: "INR    B", 0x0C: "INR    C", 0x14: "INR    D", 0x1C: "INR    E",
	0x24: "INR    H", 0x2C: "INR    L", 0x34: "INR    M", 0x3C: "INR    A",
	0x05: "DCR    B", 0x0D: "DCR    C", 0x15: "DCR    D", 0x1D: "DCR    E",
	0x25: "DCR    H", 0x2D: "DCR    L", 0x35: "DCR    M", 0x3D: "DCR    A",
	0x07: "RLC", 0x0F: "RRC", 0x17: "RAL", 0x1F: "RAR",
	0x09: "DAD    B", 0x19: "DAD    D", 0x29: "DAD    H", 0x39: "DAD    SP",
	0x27: "DAA", 0x2F: "CMA", 0x37: "STC", 0x3F: "CMC",
	0x76: "HLT",
	0x80: "ADD    B", 0x81: "ADD    C", 0x82: "ADD    D", 0x83: "ADD    E",
	0x84: "ADD    H", 0x85: "ADD    L", 0x86: "ADD    M", 0x87: "ADD    A",
	0x88: "ADC    B", 0x89: "ADC    C", 0x8A: "ADC    D", 0x8B: "ADC    E",
	0x8C: "ADC    H", 0x8D: "ADC    L", 0x8E: "ADC    M", 0x8F: "ADC    A",
	0x90: "SUB    B", 0x91: "SUB    C", 0x92: "SUB    D", 0x93: "SUB    E",
	0x94: "SUB    H", 0x95: "SUB    L", 0x96: "SUB    M", 0x97: "SUB    A",
	0x98: "SBB    B", 0x99: "SBB    C", 0x9A: "SBB    D", 0x9B: "SBB    E",
	0x9C: "SBB    H", 0x9D: "SBB    L", 0x9E: "SBB    M", 0x9F: "SBB    A",
	0xA0: "ANA    B", 0xA1: "ANA    C", 0xA2: "ANA    D", 0xA3: "ANA    E",
	0xA4: "ANA    H", 0xA5: "ANA    L", 0xA6: "ANA    M", 0xA7: "ANA    A",
	0xA8: "XRA    B", 0xA9: "XRA    C", 0xAA: "XRA    D", 0xAB: "XRA    E",
	0xAC: "XRA    H", 0xAD: "XRA    L", 0xAE: "XRA    M", 0xAF: "XRA    A",
	0xB0: "ORA    B", 0xB1: "ORA    C", 0xB2: "ORA    D", 0xB3: "ORA    E",
	0xB4: "ORA    H", 0xB5: "ORA    L", 0xB6: "ORA    M", 0xB7: "ORA    A",
	0xB8: "CMP    B", 0xB9: "CMP    C", 0xBA: "CMP    D", 0xBB: "CMP    E",
	0xBC: "CMP    H", 0xBD: "CMP    L", 0xBE: "CMP    M", 0xBF: "CMP    A",
	0xC1: "POP    B", 0xD1: "POP    D", 0xE1: "POP    H", 0xF1: "POP    PSW",
	0xC5: "PUSH   B", 0xD5: "PUSH   D", 0xE5: "PUSH   H", 0xF5: "PUSH   PSW",
	0xC9: "RET", 0xD9: "RET",
	0xC0: "RNZ", 0xC8: "RZ", 0xD0: "RNC", 0xD8: "RC",
	0xE0: "RPO", 0xE8: "RPE", 0xF0: "RP", 0xF8: "RM",
	0xC7: "RST    0", 0xCF: "RST    1", 0xD7: "RST    2", 0xDF: "RST    3",
	0xE7: "RST    4", 0xEF: "RST    5", 0xF7: "RST    6", 0xFF: "RST    7",
	0xE3: "XTHL", 0xE9: "PCHL", 0xEB: "XCHG", 0xF9: "SPHL",
	0xF3: "DI", 0xFB: "EI",
}

// movDest maps each 3-bit register field of the 64-entry MOV r,r' (and
// MOV r,M / MOV M,r) space to its register name; 0x76 is HLT, handled in
// mnemonics instead.
var movDest = "BCDEHLMA"

func movMnemonic(op uint8) string {
	dst := movDest[(op>>3)&0x07]
	src := movDest[op&0x07]
	return fmt.Sprintf("MOV    %c,%c", dst, src)
}

// imm8Ops names opcodes whose second byte is an immediate 8-bit operand.
var imm8Ops = map[uint8]string{
	0x06: "MVI    B,%.2X", 0x0E: "MVI    C,%.2X", 0x16: "MVI    D,%.2X", 0x1E: "MVI    E,%.2X",
	0x26: "MVI    H,%.2X", 0x2E: "MVI    L,%.2X", 0x36: "MVI    M,%.2X", 0x3E: "MVI    A,%.2X",
	0xC6: "ADI    %.2X", 0xCE: "ACI    %.2X", 0xD6: "SUI    %.2X", 0xDE: "SBI    %.2X",
	0xE6: "ANI    %.2X", 0xEE: "XRI    %.2X", 0xF6: "ORI    %.2X", 0xFE: "CPI    %.2X",
	0xDB: "IN     %.2X", 0xD3: "OUT    %.2X",
}

// imm16Ops names opcodes whose second and third bytes are a 16-bit operand,
// little-endian in memory but printed high-byte-first to match the
// assembler's convention.
var imm16Ops = map[uint8]string{
	0x01: "LXI    B,%.2X%.2X", 0x11: "LXI    D,%.2X%.2X", 0x21: "LXI    H,%.2X%.2X", 0x31: "LXI    SP,%.2X%.2X",
	0x22: "SHLD   %.2X%.2X", 0x2A: "LHLD   %.2X%.2X",
	0x32: "STA    %.2X%.2X", 0x3A: "LDA    %.2X%.2X",
	0xC3: "JMP    %.2X%.2X", 0xCB: "JMP    %.2X%.2X",
	0xC2: "JNZ    %.2X%.2X", 0xCA: "JZ     %.2X%.2X",
	0xD2: "JNC    %.2X%.2X", 0xDA: "JC     %.2X%.2X",
	0xE2: "JPO    %.2X%.2X", 0xEA: "JPE    %.2X%.2X",
	0xF2: "JP     %.2X%.2X", 0xFA: "JM     %.2X%.2X",
	0xCD: "CALL   %.2X%.2X", 0xDD: "CALL   %.2X%.2X", 0xED: "CALL   %.2X%.2X", 0xFD: "CALL   %.2X%.2X",
	0xC4: "CNZ    %.2X%.2X", 0xCC: "CZ     %.2X%.2X",
	0xD4: "CNC    %.2X%.2X", 0xDC: "CC     %.2X%.2X",
	0xE4: "CPO    %.2X%.2X", 0xEC: "CPE    %.2X%.2X",
	0xF4: "CP     %.2X%.2X", 0xFC: "CM     %.2X%.2X",
}

// Step disassembles the instruction at pc, returning its text and the
// number of bytes (1, 2, or 3) the caller should advance pc by to reach the
// next instruction. It does not interpret control flow: a JMP is printed as
// text, not followed. Two- and three-byte instructions also read their
// operand bytes at pc+1 and pc+2 (wrapping mod 2^16).
func Step(pc uint16, m memory.Bank) (string, int) {
	op := m.Read(pc)

	if op >= 0x40 && op <= 0x7F && op != 0x76 {
		return fmt.Sprintf("%.4X %.2X       %s", pc, op, movMnemonic(op)), 1
	}

	if text, ok := imm8Ops[op]; ok {
		b1 := m.Read(pc + 1)
		return fmt.Sprintf("%.4X %.2X %.2X    %s", pc, op, b1, fmt.Sprintf(text, b1)), 2
	}

	if text, ok := imm16Ops[op]; ok {
		b1 := m.Read(pc + 1)
		b2 := m.Read(pc + 2)
		return fmt.Sprintf("%.4X %.2X %.2X %.2X %s", pc, op, b1, b2, fmt.Sprintf(text, b2, b1)), 3
	}

	if text := mnemonics[op]; text != "" {
		return fmt.Sprintf("%.4X %.2X       %s", pc, op, text), 1
	}

	return fmt.Sprintf("%.4X %.2X       DB     %.2Xh", pc, op, op), 1
}
