// Package io defines the basic interfaces the cpu package requires of
// host-supplied input and output devices attached to the 8080's 256 8-bit
// ports. Each port index is independent; a host maps port numbers to
// whatever peripheral sits behind them (shift register, keyboard matrix,
// sound latch, ...).
package io

// Input8 is implemented by a device sitting behind an IN port. Read() is
// called once per IN instruction, and its return value becomes the new
// accumulator value.
type Input8 interface {
	// Read returns the current value the device presents on this port.
	Read() uint8
}

// Output8 is implemented by a device sitting behind an OUT port. Write() is
// called once per OUT instruction with the accumulator's current value.
type Output8 interface {
	// Write latches val into the device.
	Write(val uint8)
}

// Port8 is the common case of a device that is both readable and writable
// on the same port number. Most 8080 peripherals are one-directional (the
// Space Invaders shift register, for instance, uses distinct read and write
// ports), so most devices only need one of Input8/Output8; Port8 is
// provided for the symmetric case.
type Port8 interface {
	Input8
	Output8
}
