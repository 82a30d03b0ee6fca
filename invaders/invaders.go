// Package invaders hosts a Space Invaders arcade ROM image against the 8080
// core: the 0x2000-0x3fff video/work RAM window, the external 8-bit
// shift-register device wired to ports 2/3/4, the cabinet's button inputs on
// port 1, and the two screen interrupts (RST 1 mid-frame, RST 2 end-of-frame)
// the ROM expects sixty times a second.
package invaders

import (
	"fmt"

	"github.com/jmchacon/i8080/cpu"
)

const (
	romSize = 8192 // invaders.h + .g + .f + .e banks concatenated, 2 KiB each

	vramBase = 0x2400
	screenW  = 224
	screenH  = 256

	// cyclesPerFrame is the 8080's ~2 MHz clock divided across a 60 Hz
	// frame; Space Invaders expects two screen interrupts per frame, split
	// at the midpoint and at end-of-screen.
	cyclesPerFrame = 2000000 / 60
	halfFrame      = cyclesPerFrame / 2

	rstMid = 0x08 // RST 1
	rstEnd = 0x10 // RST 2
)

// addressSpace is a flat 64 KiB bank that only accepts writes into the
// 0x2000-0x3fff video/work RAM window; every other address behaves as ROM,
// silently discarding writes the way mask ROM would.
type addressSpace struct {
	mem [1 << 16]uint8
}

func (a *addressSpace) Read(addr uint16) uint8 { return a.mem[addr] }

func (a *addressSpace) Write(addr uint16, val uint8) {
	if addr < 0x2000 || addr > 0x3fff {
		return
	}
	a.mem[addr] = val
}

func (a *addressSpace) PowerOn() {
	for i := range a.mem {
		a.mem[i] = 0
	}
}

// RomSizeError reports a ROM image that isn't the expected concatenation of
// the four 2 KiB bank files.
type RomSizeError struct {
	Got int
}

// Error implements the error interface.
func (e RomSizeError) Error() string {
	return fmt.Sprintf("invaders: rom image is %d bytes, want %d (h+g+f+e banks concatenated)", e.Got, romSize)
}

// HaltError reports the core executing an unexpected HLT; the ROM never
// intentionally halts.
type HaltError struct {
	PC uint16
}

// Error implements the error interface.
func (e HaltError) Error() string {
	return fmt.Sprintf("invaders: unexpected HLT at 0x%.4X", e.PC)
}

// shiftRegister is the external bit-shift hardware Space Invaders uses in
// place of the 8080's lack of a shift-by-N instruction: OUT 2 sets the
// read offset (0-7), OUT 4 shifts a new byte into the high half, IN 3 reads
// the 8 bits straddling the offset.
type shiftRegister struct {
	value  uint16
	offset uint8
}

func (r *shiftRegister) setOffset(v uint8) { r.offset = v & 0x07 }
func (r *shiftRegister) shiftIn(v uint8)   { r.value = uint16(v)<<8 | r.value>>8 }
func (r *shiftRegister) read() uint8       { return uint8(r.value >> (8 - r.offset)) }

type shiftOffsetPort struct{ r *shiftRegister }

func (p shiftOffsetPort) Write(v uint8) { p.r.setOffset(v) }

type shiftDataPort struct{ r *shiftRegister }

func (p shiftDataPort) Write(v uint8) { p.r.shiftIn(v) }

type shiftReadPort struct{ r *shiftRegister }

func (p shiftReadPort) Read() uint8 { return p.r.read() }

// Button values match input port 1's bit layout (bit 3 is hardwired high,
// bit 7 is unused and always low).
const (
	ButtonCoin    uint8 = 1 << 0
	ButtonP1Start uint8 = 1 << 2
	ButtonP1Shoot uint8 = 1 << 4
	ButtonP1Left  uint8 = 1 << 5
	ButtonP1Right uint8 = 1 << 6
)

// inputPort1 models port 1, the only port with real button assignments this
// host implements; player 2 and the coin/tilt ports are left at their
// always-zero default.
type inputPort1 struct{ bits uint8 }

func newInputPort1() *inputPort1 { return &inputPort1{bits: 0x08} }

func (p *inputPort1) Read() uint8 { return p.bits }

// Set raises or lowers button on port 1.
func (p *inputPort1) Set(button uint8, down bool) {
	if down {
		p.bits |= button
	} else {
		p.bits &^= button
	}
}

type zeroPort struct{}

func (zeroPort) Read() uint8 { return 0 }

// Machine is a single cabinet: its address space, the shift register and
// button state behind its I/O ports, and the 8080 core driving it.
type Machine struct {
	mem   *addressSpace
	shift *shiftRegister
	In1   *inputPort1
	CPU   *cpu.State
}

// New loads rom (the h/g/f/e bank files concatenated into a single 8 KiB
// image) at address 0 and wires the shift register and button ports behind
// it.
func New(rom []uint8) (*Machine, error) {
	if len(rom) != romSize {
		return nil, RomSizeError{Got: len(rom)}
	}

	mem := &addressSpace{}
	copy(mem.mem[:romSize], rom)

	shift := &shiftRegister{}
	in1 := newInputPort1()

	devices := cpu.Devices{Mem: mem}
	devices.Halt = func(s *cpu.State) {
		panic(HaltError{PC: s.PC})
	}
	devices.In[1] = in1
	devices.In[2] = zeroPort{}
	devices.In[3] = shiftReadPort{shift}
	devices.Out[2] = shiftOffsetPort{shift}
	devices.Out[4] = shiftDataPort{shift}

	return &Machine{
		mem:   mem,
		shift: shift,
		In1:   in1,
		CPU:   cpu.New(0, devices),
	}, nil
}

// RunFrame steps the core through one video frame's worth of cycles,
// delivering the mid-screen and end-of-screen interrupts where the ROM
// expects them.
func (m *Machine) RunFrame() {
	target := m.CPU.Cycles + halfFrame
	for m.CPU.Cycles < target {
		m.CPU.Step()
	}
	m.CPU.Interrupt(rstMid)

	target += halfFrame
	for m.CPU.Cycles < target {
		m.CPU.Step()
	}
	m.CPU.Interrupt(rstEnd)
}
