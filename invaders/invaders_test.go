package invaders

import (
	"image"
	"testing"
)

func TestNewRejectsWrongSizedRom(t *testing.T) {
	if _, err := New(make([]uint8, 100)); err == nil {
		t.Fatal("expected RomSizeError for undersized rom")
	} else if _, ok := err.(RomSizeError); !ok {
		t.Fatalf("expected RomSizeError, got %T", err)
	}
}

func TestShiftRegister(t *testing.T) {
	var r shiftRegister
	r.shiftIn(0x01) // value = 0x0100
	r.shiftIn(0x02) // value = 0x0201
	r.setOffset(0)
	if got, want := r.read(), uint8(0x02); got != want {
		t.Errorf("offset 0: got 0x%.2X want 0x%.2X", got, want)
	}
	r.setOffset(7)
	if got, want := r.read(), uint8((0x02<<7|0x01>>1)&0xFF); got != want {
		t.Errorf("offset 7: got 0x%.2X want 0x%.2X", got, want)
	}
}

func TestInputPort1Defaults(t *testing.T) {
	p := newInputPort1()
	if got, want := p.Read(), uint8(0x08); got != want {
		t.Errorf("default bits: got 0x%.2X want 0x%.2X", got, want)
	}
	p.Set(ButtonP1Shoot, true)
	if p.Read()&ButtonP1Shoot == 0 {
		t.Error("expected shoot bit set")
	}
	p.Set(ButtonP1Shoot, false)
	if p.Read()&ButtonP1Shoot != 0 {
		t.Error("expected shoot bit cleared")
	}
}

func TestMachineWiring(t *testing.T) {
	rom := make([]uint8, romSize)
	rom[0] = 0xD3 // OUT
	rom[1] = 0x02 // port 2: shift offset
	rom[2] = 0xDB // IN
	rom[3] = 0x03 // port 3: shifted read

	m, err := New(rom)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	m.CPU.A = 0x03
	m.CPU.Step() // OUT 2
	if m.shift.offset != 3 {
		t.Fatalf("offset: got %d want 3", m.shift.offset)
	}
	m.CPU.Step() // IN 3
	if got, want := m.CPU.A, m.shift.read(); got != want {
		t.Errorf("A after IN 3: got 0x%.2X want 0x%.2X", got, want)
	}
}

func TestFramebufferDimensions(t *testing.T) {
	rom := make([]uint8, romSize)
	m, err := New(rom)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	img := m.Framebuffer()
	if got, want := img.Bounds(), image.Rect(0, 0, screenW, screenH); got != want {
		t.Errorf("bounds: got %v want %v", got, want)
	}
}
