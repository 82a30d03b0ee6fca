// Package cpu implements the Intel 8080 instruction-decode/execute engine:
// the flag-arithmetic primitives (flags.go), the register/flag state
// container, and the single-entry-point Step/Interrupt dispatch. The package
// has no notion of a host's memory map or devices beyond the
// memory.Bank/io.Input8/io.Output8 capability interfaces it is handed at
// construction time.
package cpu

import (
	"fmt"

	"github.com/jmchacon/i8080/io"
	"github.com/jmchacon/i8080/memory"
)

// Flags holds the five 8080 condition bits.
type Flags struct {
	C bool // carry
	P bool // parity (1 == even)
	A bool // auxiliary carry
	Z bool // zero
	S bool // sign
}

// Devices is the capability set a host supplies at construction time so the
// core never holds bare function pointers or a process-global lookup table
// (a capability object is easier to reason about than link-time
// dispatch). Halt is invoked once per HLT opcode; the core does not track a
// halted mode of its own.
type Devices struct {
	Mem  memory.Bank
	In   [256]io.Input8  // devices behind IN ports; nil reads as 0.
	Out  [256]io.Output8 // devices behind OUT ports; nil writes are dropped.
	Halt func(s *State)
}

// State is the complete 8080 CPU state. It has no hidden
// resources: a zero State with a host-assigned PC and a non-nil Devices is
// ready to Step.
type State struct {
	A      uint8
	B, C   uint8
	D, E   uint8
	H, L   uint8
	SP     uint16
	PC     uint16
	F      Flags
	INTE   bool
	Cycles uint64

	devices Devices
}

// UnimplementedOpcode should never occur: the 8080 opcode space is fully
// decoded (including the eight documented undocumented aliases), so this
// only fires on an implementation bug, not on any input byte.
type UnimplementedOpcode struct {
	Opcode uint8
	PC     uint16
}

// Error implements the error interface.
func (e UnimplementedOpcode) Error() string {
	return fmt.Sprintf("unimplemented opcode 0x%.2X at PC 0x%.4X", e.Opcode, e.PC)
}

// New returns a zero-initialized State wired to the given Devices, with PC
// set to pc. That's the whole of construction:
// no other field needs seeding and there is no destruction ritual.
func New(pc uint16, d Devices) *State {
	return &State{PC: pc, devices: d}
}

// BC returns the 16-bit register pair with B as the high byte.
func (s *State) BC() uint16 { return uint16(s.B)<<8 | uint16(s.C) }

// DE returns the 16-bit register pair with D as the high byte.
func (s *State) DE() uint16 { return uint16(s.D)<<8 | uint16(s.E) }

// HL returns the 16-bit register pair with H as the high byte.
func (s *State) HL() uint16 { return uint16(s.H)<<8 | uint16(s.L) }

func (s *State) setBC(v uint16) { s.B, s.C = uint8(v>>8), uint8(v) }
func (s *State) setDE(v uint16) { s.D, s.E = uint8(v>>8), uint8(v) }
func (s *State) setHL(v uint16) { s.H, s.L = uint8(v>>8), uint8(v) }

func (s *State) readByte(a uint16) uint8 {
	return s.devices.Mem.Read(a)
}

func (s *State) writeByte(a uint16, v uint8) {
	s.devices.Mem.Write(a, v)
}

// readWord reads a little-endian word: low byte at addr, high byte at
// addr+1 mod 2^16.
func (s *State) readWord(a uint16) uint16 {
	lo := s.readByte(a)
	hi := s.readByte(a + 1)
	return uint16(hi)<<8 | uint16(lo)
}

// writeWord writes a little-endian word: low byte written first to
// the lower address.
func (s *State) writeWord(a uint16, w uint16) {
	s.writeByte(a, uint8(w))
	s.writeByte(a+1, uint8(w>>8))
}

// fetchByte reads the byte at PC and advances PC by one.
func (s *State) fetchByte() uint8 {
	v := s.readByte(s.PC)
	s.PC++
	return v
}

// fetchWord reads the word at PC and advances PC by two.
func (s *State) fetchWord() uint16 {
	v := s.readWord(s.PC)
	s.PC += 2
	return v
}

// push pushes a word onto the stack: SP -= 2 mod 2^16, then writeWord.
func (s *State) push(w uint16) {
	s.SP -= 2
	s.writeWord(s.SP, w)
}

// pop pops a word off the stack.
func (s *State) pop() uint16 {
	w := s.readWord(s.SP)
	s.SP += 2
	return w
}

// pushPSW packs A and the five flags into the classic 8080 PSW byte layout
// (bit 1 always 1, bits 3 and 5 always 0) and pushes it below A.
func (s *State) pushPSW() {
	psw := uint8(0x02) // bit 1 always reads as 1
	if s.F.C {
		psw |= 0x01
	}
	if s.F.P {
		psw |= 0x04
	}
	if s.F.A {
		psw |= 0x10
	}
	if s.F.Z {
		psw |= 0x40
	}
	if s.F.S {
		psw |= 0x80
	}
	s.push(uint16(s.A)<<8 | uint16(psw))
}

// popPSW is the inverse of pushPSW; bits 3 and 5 of the popped byte are
// discarded.
func (s *State) popPSW() {
	w := s.pop()
	s.A = uint8(w >> 8)
	psw := uint8(w)
	s.F.C = psw&0x01 != 0
	s.F.P = psw&0x04 != 0
	s.F.A = psw&0x10 != 0
	s.F.Z = psw&0x40 != 0
	s.F.S = psw&0x80 != 0
}

// baseCycles is the 256-entry base cycle cost table for each opcode.
var baseCycles = [256]uint8{
	4, 10, 7, 5, 5, 5, 7, 4, 4, 10, 7, 5, 5, 5, 7, 4, // 00..0f
	4, 10, 7, 5, 5, 5, 7, 4, 4, 10, 7, 5, 5, 5, 7, 4, // 10..1f
	4, 10, 16, 5, 5, 5, 7, 4, 4, 10, 16, 5, 5, 5, 7, 4, // 20..2f
	4, 10, 13, 5, 10, 10, 10, 4, 4, 10, 13, 5, 5, 5, 7, 4, // 30..3f
	5, 5, 5, 5, 5, 5, 7, 5, 5, 5, 5, 5, 5, 5, 7, 5, // 40..4f
	5, 5, 5, 5, 5, 5, 7, 5, 5, 5, 5, 5, 5, 5, 7, 5, // 50..5f
	5, 5, 5, 5, 5, 5, 7, 5, 5, 5, 5, 5, 5, 5, 7, 5, // 60..6f
	7, 7, 7, 7, 7, 7, 7, 7, 5, 5, 5, 5, 5, 5, 7, 5, // 70..7f
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4, // 80..8f
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4, // 90..9f
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4, // a0..af
	4, 4, 4, 4, 4, 4, 7, 4, 4, 4, 4, 4, 4, 4, 7, 4, // b0..bf
	5, 10, 10, 10, 11, 11, 7, 11, 5, 10, 10, 10, 11, 17, 7, 11, // c0..cf
	5, 10, 10, 10, 11, 11, 7, 11, 5, 10, 10, 10, 11, 17, 7, 11, // d0..df
	5, 10, 10, 18, 11, 11, 7, 11, 5, 5, 10, 5, 11, 17, 7, 11, // e0..ef
	5, 10, 10, 4, 11, 11, 7, 11, 5, 5, 10, 4, 11, 17, 7, 11, // f0..ff
}

// condTaken adds the +6 cycle conditional-branch surcharge when taken is
// true; callers evaluate the condition before calling this.
func (s *State) condTaken(taken bool) {
	if taken {
		s.Cycles += 6
	}
}

// condJmp implements the conditional JMP family: the 3-byte operand
// is always fetched (PC always advances past it) and the target is only
// assigned if condition holds.
func (s *State) condJmp(condition bool) {
	a := s.fetchWord()
	if condition {
		s.PC = a
	}
}

// condCall implements the conditional CALL family.
func (s *State) condCall(condition bool) {
	a := s.fetchWord()
	if condition {
		s.call(a)
		s.condTaken(true)
	}
}

// condRet implements the conditional RET family.
func (s *State) condRet(condition bool) {
	if condition {
		s.PC = s.pop()
		s.condTaken(true)
	}
}

func (s *State) call(a uint16) {
	s.push(s.PC)
	s.PC = a
}

// Step fetches, decodes, and executes exactly one instruction at PC:
// advance PC past the opcode before any side effect, charge
// the opcode's base cycle cost at decode, execute its effect (which may
// fetch further operand bytes, perform memory/IO callbacks, or assign a
// branch target), then return the number of cycles this instruction
// consumed (base plus any taken-branch surcharge).
func (s *State) Step() uint64 {
	before := s.Cycles
	op := s.fetchByte()
	s.Cycles += uint64(baseCycles[op])

	switch op {
	// NOPs, including the seven undocumented aliases.
	case 0x00, 0x08, 0x10, 0x18, 0x20, 0x28, 0x30, 0x38:
		// NOP

	case 0x01: // LXI B,word
		s.setBC(s.fetchWord())
	case 0x11: // LXI D,word
		s.setDE(s.fetchWord())
	case 0x21: // LXI H,word
		s.setHL(s.fetchWord())
	case 0x31: // LXI SP,word
		s.SP = s.fetchWord()

	case 0x02: // STAX B
		s.writeByte(s.BC(), s.A)
	case 0x12: // STAX D
		s.writeByte(s.DE(), s.A)
	case 0x0A: // LDAX B
		s.A = s.readByte(s.BC())
	case 0x1A: // LDAX D
		s.A = s.readByte(s.DE())

	case 0x03: // INX B
		s.setBC(s.BC() + 1)
	case 0x13: // INX D
		s.setDE(s.DE() + 1)
	case 0x23: // INX H
		s.setHL(s.HL() + 1)
	case 0x33: // INX SP
		s.SP++
	case 0x0B: // DCX B
		s.setBC(s.BC() - 1)
	case 0x1B: // DCX D
		s.setDE(s.DE() - 1)
	case 0x2B: // DCX H
		s.setHL(s.HL() - 1)
	case 0x3B: // DCX SP
		s.SP--

	case 0x04: // INR B
		s.B = s.inr(s.B)
	case 0x0C: // INR C
		s.C = s.inr(s.C)
	case 0x14: // INR D
		s.D = s.inr(s.D)
	case 0x1C: // INR E
		s.E = s.inr(s.E)
	case 0x24: // INR H
		s.H = s.inr(s.H)
	case 0x2C: // INR L
		s.L = s.inr(s.L)
	case 0x34: // INR M
		s.writeByte(s.HL(), s.inr(s.readByte(s.HL())))
	case 0x3C: // INR A
		s.A = s.inr(s.A)

	case 0x05: // DCR B
		s.B = s.dcr(s.B)
	case 0x0D: // DCR C
		s.C = s.dcr(s.C)
	case 0x15: // DCR D
		s.D = s.dcr(s.D)
	case 0x1D: // DCR E
		s.E = s.dcr(s.E)
	case 0x25: // DCR H
		s.H = s.dcr(s.H)
	case 0x2D: // DCR L
		s.L = s.dcr(s.L)
	case 0x35: // DCR M
		s.writeByte(s.HL(), s.dcr(s.readByte(s.HL())))
	case 0x3D: // DCR A
		s.A = s.dcr(s.A)

	case 0x06: // MVI B,byte
		s.B = s.fetchByte()
	case 0x0E: // MVI C,byte
		s.C = s.fetchByte()
	case 0x16: // MVI D,byte
		s.D = s.fetchByte()
	case 0x1E: // MVI E,byte
		s.E = s.fetchByte()
	case 0x26: // MVI H,byte
		s.H = s.fetchByte()
	case 0x2E: // MVI L,byte
		s.L = s.fetchByte()
	case 0x36: // MVI M,byte
		s.writeByte(s.HL(), s.fetchByte())
	case 0x3E: // MVI A,byte
		s.A = s.fetchByte()

	case 0x07: // RLC
		s.rlc()
	case 0x0F: // RRC
		s.rrc()
	case 0x17: // RAL
		s.ral()
	case 0x1F: // RAR
		s.rar()

	case 0x09: // DAD B
		s.dad(s.BC())
	case 0x19: // DAD D
		s.dad(s.DE())
	case 0x29: // DAD H
		s.dad(s.HL())
	case 0x39: // DAD SP
		s.dad(s.SP)

	case 0x22: // SHLD word
		s.writeWord(s.fetchWord(), s.HL())
	case 0x2A: // LHLD word
		s.setHL(s.readWord(s.fetchWord()))
	case 0x27: // DAA
		s.daa()
	case 0x2F: // CMA
		s.A = ^s.A
	case 0x32: // STA word
		s.writeByte(s.fetchWord(), s.A)
	case 0x3A: // LDA word
		s.A = s.readByte(s.fetchWord())
	case 0x37: // STC
		s.F.C = true
	case 0x3F: // CMC
		s.F.C = !s.F.C

	// MOV r,r' and MOV r,M / MOV M,r (0x40-0x7F except 0x76 which is HLT).
	case 0x40:
	case 0x41:
		s.B = s.C
	case 0x42:
		s.B = s.D
	case 0x43:
		s.B = s.E
	case 0x44:
		s.B = s.H
	case 0x45:
		s.B = s.L
	case 0x46:
		s.B = s.readByte(s.HL())
	case 0x47:
		s.B = s.A
	case 0x48:
		s.C = s.B
	case 0x49:
	case 0x4A:
		s.C = s.D
	case 0x4B:
		s.C = s.E
	case 0x4C:
		s.C = s.H
	case 0x4D:
		s.C = s.L
	case 0x4E:
		s.C = s.readByte(s.HL())
	case 0x4F:
		s.C = s.A
	case 0x50:
		s.D = s.B
	case 0x51:
		s.D = s.C
	case 0x52:
	case 0x53:
		s.D = s.E
	case 0x54:
		s.D = s.H
	case 0x55:
		s.D = s.L
	case 0x56:
		s.D = s.readByte(s.HL())
	case 0x57:
		s.D = s.A
	case 0x58:
		s.E = s.B
	case 0x59:
		s.E = s.C
	case 0x5A:
		s.E = s.D
	case 0x5B:
	case 0x5C:
		s.E = s.H
	case 0x5D:
		s.E = s.L
	case 0x5E:
		s.E = s.readByte(s.HL())
	case 0x5F:
		s.E = s.A
	case 0x60:
		s.H = s.B
	case 0x61:
		s.H = s.C
	case 0x62:
		s.H = s.D
	case 0x63:
		s.H = s.E
	case 0x64:
	case 0x65:
		s.H = s.L
	case 0x66:
		s.H = s.readByte(s.HL())
	case 0x67:
		s.H = s.A
	case 0x68:
		s.L = s.B
	case 0x69:
		s.L = s.C
	case 0x6A:
		s.L = s.D
	case 0x6B:
		s.L = s.E
	case 0x6C:
		s.L = s.H
	case 0x6D:
	case 0x6E:
		s.L = s.readByte(s.HL())
	case 0x6F:
		s.L = s.A
	case 0x70:
		s.writeByte(s.HL(), s.B)
	case 0x71:
		s.writeByte(s.HL(), s.C)
	case 0x72:
		s.writeByte(s.HL(), s.D)
	case 0x73:
		s.writeByte(s.HL(), s.E)
	case 0x74:
		s.writeByte(s.HL(), s.H)
	case 0x75:
		s.writeByte(s.HL(), s.L)
	case 0x77:
		s.writeByte(s.HL(), s.A)
	case 0x78:
		s.A = s.B
	case 0x79:
		s.A = s.C
	case 0x7A:
		s.A = s.D
	case 0x7B:
		s.A = s.E
	case 0x7C:
		s.A = s.H
	case 0x7D:
		s.A = s.L
	case 0x7E:
		s.A = s.readByte(s.HL())
	case 0x7F:

	case 0x76: // HLT
		if s.devices.Halt != nil {
			s.devices.Halt(s)
		}

	// ADD/ADC/SUB/SBB/ANA/XRA/ORA/CMP against B,C,D,E,H,L,M,A.
	case 0x80:
		s.A = s.add(s.B, 0)
	case 0x81:
		s.A = s.add(s.C, 0)
	case 0x82:
		s.A = s.add(s.D, 0)
	case 0x83:
		s.A = s.add(s.E, 0)
	case 0x84:
		s.A = s.add(s.H, 0)
	case 0x85:
		s.A = s.add(s.L, 0)
	case 0x86:
		s.A = s.add(s.readByte(s.HL()), 0)
	case 0x87:
		s.A = s.add(s.A, 0)
	case 0x88:
		s.A = s.add(s.B, b2u8(s.F.C))
	case 0x89:
		s.A = s.add(s.C, b2u8(s.F.C))
	case 0x8A:
		s.A = s.add(s.D, b2u8(s.F.C))
	case 0x8B:
		s.A = s.add(s.E, b2u8(s.F.C))
	case 0x8C:
		s.A = s.add(s.H, b2u8(s.F.C))
	case 0x8D:
		s.A = s.add(s.L, b2u8(s.F.C))
	case 0x8E:
		s.A = s.add(s.readByte(s.HL()), b2u8(s.F.C))
	case 0x8F:
		s.A = s.add(s.A, b2u8(s.F.C))
	case 0x90:
		s.A = s.sub(s.B, 0)
	case 0x91:
		s.A = s.sub(s.C, 0)
	case 0x92:
		s.A = s.sub(s.D, 0)
	case 0x93:
		s.A = s.sub(s.E, 0)
	case 0x94:
		s.A = s.sub(s.H, 0)
	case 0x95:
		s.A = s.sub(s.L, 0)
	case 0x96:
		s.A = s.sub(s.readByte(s.HL()), 0)
	case 0x97:
		s.A = s.sub(s.A, 0)
	case 0x98:
		s.A = s.sub(s.B, b2u8(s.F.C))
	case 0x99:
		s.A = s.sub(s.C, b2u8(s.F.C))
	case 0x9A:
		s.A = s.sub(s.D, b2u8(s.F.C))
	case 0x9B:
		s.A = s.sub(s.E, b2u8(s.F.C))
	case 0x9C:
		s.A = s.sub(s.H, b2u8(s.F.C))
	case 0x9D:
		s.A = s.sub(s.L, b2u8(s.F.C))
	case 0x9E:
		s.A = s.sub(s.readByte(s.HL()), b2u8(s.F.C))
	case 0x9F:
		s.A = s.sub(s.A, b2u8(s.F.C))
	case 0xA0:
		s.A = s.ana(s.B)
	case 0xA1:
		s.A = s.ana(s.C)
	case 0xA2:
		s.A = s.ana(s.D)
	case 0xA3:
		s.A = s.ana(s.E)
	case 0xA4:
		s.A = s.ana(s.H)
	case 0xA5:
		s.A = s.ana(s.L)
	case 0xA6:
		s.A = s.ana(s.readByte(s.HL()))
	case 0xA7:
		s.A = s.ana(s.A)
	case 0xA8:
		s.A = s.xra(s.B)
	case 0xA9:
		s.A = s.xra(s.C)
	case 0xAA:
		s.A = s.xra(s.D)
	case 0xAB:
		s.A = s.xra(s.E)
	case 0xAC:
		s.A = s.xra(s.H)
	case 0xAD:
		s.A = s.xra(s.L)
	case 0xAE:
		s.A = s.xra(s.readByte(s.HL()))
	case 0xAF:
		s.A = s.xra(s.A)
	case 0xB0:
		s.A = s.ora(s.B)
	case 0xB1:
		s.A = s.ora(s.C)
	case 0xB2:
		s.A = s.ora(s.D)
	case 0xB3:
		s.A = s.ora(s.E)
	case 0xB4:
		s.A = s.ora(s.H)
	case 0xB5:
		s.A = s.ora(s.L)
	case 0xB6:
		s.A = s.ora(s.readByte(s.HL()))
	case 0xB7:
		s.A = s.ora(s.A)
	case 0xB8:
		s.sub(s.B, 0)
	case 0xB9:
		s.sub(s.C, 0)
	case 0xBA:
		s.sub(s.D, 0)
	case 0xBB:
		s.sub(s.E, 0)
	case 0xBC:
		s.sub(s.H, 0)
	case 0xBD:
		s.sub(s.L, 0)
	case 0xBE:
		s.sub(s.readByte(s.HL()), 0)
	case 0xBF:
		s.sub(s.A, 0)

	case 0xC0: // RNZ
		s.condRet(!s.F.Z)
	case 0xC8: // RZ
		s.condRet(s.F.Z)
	case 0xD0: // RNC
		s.condRet(!s.F.C)
	case 0xD8: // RC
		s.condRet(s.F.C)
	case 0xE0: // RPO
		s.condRet(!s.F.P)
	case 0xE8: // RPE
		s.condRet(s.F.P)
	case 0xF0: // RP
		s.condRet(!s.F.S)
	case 0xF8: // RM
		s.condRet(s.F.S)

	case 0xC1: // POP B
		s.setBC(s.pop())
	case 0xD1: // POP D
		s.setDE(s.pop())
	case 0xE1: // POP H
		s.setHL(s.pop())
	case 0xF1: // POP PSW
		s.popPSW()

	case 0xC2: // JNZ word
		s.condJmp(!s.F.Z)
	case 0xCA: // JZ word
		s.condJmp(s.F.Z)
	case 0xD2: // JNC word
		s.condJmp(!s.F.C)
	case 0xDA: // JC word
		s.condJmp(s.F.C)
	case 0xE2: // JPO word
		s.condJmp(!s.F.P)
	case 0xEA: // JPE word
		s.condJmp(s.F.P)
	case 0xF2: // JP word
		s.condJmp(!s.F.S)
	case 0xFA: // JM word
		s.condJmp(s.F.S)

	case 0xC3, 0xCB: // JMP word (CB undocumented alias)
		s.PC = s.fetchWord()

	case 0xC4: // CNZ word
		s.condCall(!s.F.Z)
	case 0xCC: // CZ word
		s.condCall(s.F.Z)
	case 0xD4: // CNC word
		s.condCall(!s.F.C)
	case 0xDC: // CC word
		s.condCall(s.F.C)
	case 0xE4: // CPO word
		s.condCall(!s.F.P)
	case 0xEC: // CPE word
		s.condCall(s.F.P)
	case 0xF4: // CP word
		s.condCall(!s.F.S)
	case 0xFC: // CM word
		s.condCall(s.F.S)

	case 0xC5: // PUSH B
		s.push(s.BC())
	case 0xD5: // PUSH D
		s.push(s.DE())
	case 0xE5: // PUSH H
		s.push(s.HL())
	case 0xF5: // PUSH PSW
		s.pushPSW()

	case 0xC6: // ADI byte
		s.A = s.add(s.fetchByte(), 0)
	case 0xCE: // ACI byte
		s.A = s.add(s.fetchByte(), b2u8(s.F.C))
	case 0xD6: // SUI byte
		s.A = s.sub(s.fetchByte(), 0)
	case 0xDE: // SBI byte
		s.A = s.sub(s.fetchByte(), b2u8(s.F.C))
	case 0xE6: // ANI byte
		s.A = s.ana(s.fetchByte())
	case 0xEE: // XRI byte
		s.A = s.xra(s.fetchByte())
	case 0xF6: // ORI byte
		s.A = s.ora(s.fetchByte())
	case 0xFE: // CPI byte
		s.sub(s.fetchByte(), 0)

	case 0xC7:
		s.call(0x00)
	case 0xCF:
		s.call(0x08)
	case 0xD7:
		s.call(0x10)
	case 0xDF:
		s.call(0x18)
	case 0xE7:
		s.call(0x20)
	case 0xEF:
		s.call(0x28)
	case 0xF7:
		s.call(0x30)
	case 0xFF:
		s.call(0x38)

	case 0xC9, 0xD9: // RET (D9 undocumented alias)
		s.PC = s.pop()

	case 0xCD, 0xDD, 0xED, 0xFD: // CALL word (DD/ED/FD undocumented aliases)
		s.call(s.fetchWord())

	case 0xD3: // OUT port
		port := s.fetchByte()
		if dev := s.devices.Out[port]; dev != nil {
			dev.Write(s.A)
		}
	case 0xDB: // IN port
		port := s.fetchByte()
		if dev := s.devices.In[port]; dev != nil {
			s.A = dev.Read()
		} else {
			s.A = 0
		}

	case 0xE3: // XTHL
		top := s.readWord(s.SP)
		s.writeWord(s.SP, s.HL())
		s.setHL(top)
	case 0xE9: // PCHL
		s.PC = s.HL()
	case 0xEB: // XCHG
		hl, de := s.HL(), s.DE()
		s.setHL(de)
		s.setDE(hl)
	case 0xF3: // DI
		s.INTE = false
	case 0xF9: // SPHL
		s.SP = s.HL()
	case 0xFB: // EI
		s.INTE = true

	default:
		panic(UnimplementedOpcode{Opcode: op, PC: s.PC - 1})
	}

	return s.Cycles - before
}

// Interrupt handles a pending interrupt: if INTE is clear this is a no-op
// returning 0. Otherwise INTE is cleared, PC is pushed, PC is set to
// vector, and 11 cycles are charged — equivalent to a taken CALL supplied
// by the interrupting device.
func (s *State) Interrupt(vector uint16) uint64 {
	before := s.Cycles
	if s.INTE {
		s.INTE = false
		s.call(vector)
		s.Cycles += 11
	}
	return s.Cycles - before
}
