// This file is part of ezsnes9x.
//
// ezsnes9x is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ezsnes9x is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ezsnes9x.  If not, see <https://www.gnu.org/licenses/>.

package controllers

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/adriaanm/ezsnes9x/hardware/memory"
	"github.com/adriaanm/ezsnes9x/logger"
)

// PortID differentiates the two controller sockets on the console.
type PortID int

// List of defined PortIDs.
const (
	Port1 PortID = iota
	Port2
	NumPorts
)

func (id PortID) String() string {
	switch id {
	case Port1:
		return "port 1"
	case Port2:
		return "port 2"
	}
	return "unknown port"
}

// PadID identifies one of the eight logical joypads, or no joypad at all.
type PadID int

// NoPad indicates an empty port.
const NoPad PadID = -1

// NumPads is the number of logical joypads the frontend can populate.
const NumPads = 8

func (id PadID) String() string {
	if id == NoPad {
		return "<none>"
	}
	return fmt.Sprintf("Joypad%d", int(id)+1)
}

// port records the plug state of one controller socket. changes to the
// assignment are staged in the pending field and committed on the next
// falling latch edge or reset.
type port struct {
	current PadID
	pending PadID

	// bits shifted out since the last falling latch edge. the second counter
	// exists only so that save states exchange cleanly with multitap-capable
	// implementations, which keep two counters per port.
	readIdx [2]uint8
}

// Controllers is the state machine behind the $4016/$4017 serial interface
// and the $4218-$421f auto-read registers.
type Controllers struct {
	mmio *memory.MMIO

	ports [NumPorts]port

	// button state for the eight logical joypads. atomic words because the
	// frontend is permitted to push button masks from outside the emulator
	// thread. only the low 16 bits are used.
	buttons [NumPads]atomic.Uint32

	// level of the latch line shared by both ports
	latch bool

	// whether the program has read the serial interface this frame and the
	// frame before. see EndOfFrame()
	padRead     bool
	padReadLast bool
}

// NewControllers is the preferred method of initialisation for the
// Controllers type. The MMIO page receives auto-read results and provides
// the open-bus value for serial reads.
//
// The first two joypads are plugged into the two ports, the conventional
// arrangement for a two-player console.
func NewControllers(mmio *memory.MMIO) *Controllers {
	c := &Controllers{mmio: mmio}

	for i := range c.ports {
		c.ports[i].current = NoPad
		c.ports[i].pending = NoPad
	}

	c.SetController(Port1, 0)
	c.SetController(Port2, 1)
	c.ResetHard()

	return c
}

func (c *Controllers) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("port 1: %s  port 2: %s", c.ports[Port1].current, c.ports[Port2].current))
	if c.latch {
		s.WriteString("  (latched)")
	}
	return s.String()
}

// ResetHard emulates a power cycle of the console.
func (c *Controllers) ResetHard() {
	c.ResetSoft()
}

// ResetSoft emulates the reset switch. The latch line is cleared, the serial
// read counters are zeroed and any pending controller changes are committed.
func (c *Controllers) ResetSoft() {
	for i := range c.ports {
		c.ports[i].readIdx[0] = 0
		c.ports[i].readIdx[1] = 0
		c.ports[i].current = c.ports[i].pending
	}
	c.latch = false
}

// SetController stages a joypad assignment for the port. The change is
// committed on the next falling latch edge or reset. A pad outside the range
// of valid joypads unplugs the port.
func (c *Controllers) SetController(id PortID, pad PadID) {
	if id < 0 || id >= NumPorts {
		return
	}

	if pad < 0 || pad >= NumPads {
		pad = NoPad
	}

	c.ports[id].pending = pad
}

// VerifyControllers checks the staged assignments for a joypad that appears
// on both ports. The lower-numbered port keeps the pad and the duplicate is
// unplugged. Returns true if anything was changed.
func (c *Controllers) VerifyControllers() bool {
	changed := false

	var used [NumPads]int
	for i := range c.ports {
		pad := c.ports[i].pending
		if pad == NoPad {
			continue
		}
		used[pad]++
		if used[pad] > 1 {
			logger.Logf("controllers", "%s used more than once. disabling extra instance on %s", pad, PortID(i))
			c.ports[i].pending = NoPad
			changed = true
		}
	}

	return changed
}

// SwapJoypads exchanges the controllers plugged into the two ports. Like
// SetController the swap is staged and becomes visible on the next falling
// latch edge or reset.
func (c *Controllers) SwapJoypads() {
	c.ports[Port1].pending = c.ports[Port2].current
	c.ports[Port2].pending = c.ports[Port1].current
	logger.Logf("controllers", "swap pads: P1=%s P2=%s", c.ports[Port1].pending, c.ports[Port2].pending)
}

// PluggedInto returns the joypad currently seen by the console on the port.
func (c *Controllers) PluggedInto(id PortID) PadID {
	if id < 0 || id >= NumPorts {
		return NoPad
	}
	return c.ports[id].current
}

// SetJoypadButtons overwrites the button mask for the joypad. This is the
// only function in the package that may be called from outside the emulator
// thread.
func (c *Controllers) SetJoypadButtons(pad PadID, buttons uint16) {
	if pad < 0 || pad >= NumPads {
		return
	}
	c.buttons[pad].Store(uint32(buttons))
}

// Buttons returns the current button mask for the joypad.
func (c *Controllers) Buttons(pad PadID) uint16 {
	if pad < 0 || pad >= NumPads {
		return 0
	}
	return uint16(c.buttons[pad].Load())
}

// SetLatch drives the latch line. The rising edge zeroes the serial read
// counters of both ports. The falling edge commits pending controller
// changes, which is when real hardware would notice a swapped controller.
func (c *Controllers) SetLatch(level bool) {
	if level && !c.latch {
		for i := range c.ports {
			c.ports[i].readIdx[0] = 0
			c.ports[i].readIdx[1] = 0
		}
	}

	if !level && c.latch {
		for i := range c.ports {
			c.ports[i].current = c.ports[i].pending
		}
	}

	c.latch = level
}

// Latched returns the current level of the latch line.
func (c *Controllers) Latched() bool {
	return c.latch
}

// increase the read counter, saturating at 255, and return the old value.
// without the saturation a program that reads the port more than 255 times
// between latches would wrap back into the button stream.
func incReadIdxPost(idx *uint8) uint8 {
	old := *idx
	if *idx < 255 {
		*idx++
	}
	return old
}

// ReadSerial performs one read of $4016 or $4017 on behalf of the emulated
// CPU. The undriven bits of the result float to the open-bus value, except
// that the second port's IO bits 2 to 4 are wired high.
func (c *Controllers) ReadSerial(id PortID) uint8 {
	if id < 0 || id >= NumPorts {
		return c.mmio.OpenBus
	}

	c.padRead = true

	bits := c.mmio.OpenBus &^ 0x03
	if id == Port2 {
		bits |= 0x1c
	}

	p := &c.ports[id]

	if c.latch {
		// while the latch is high a joypad continuously reloads its shift
		// register. the visible bit is always the first button in the
		// stream
		if p.current != NoPad {
			return bits | uint8((c.Buttons(p.current)>>15)&0x01)
		}
		return bits
	}

	if p.current == NoPad {
		incReadIdxPost(&p.readIdx[0])
		return bits
	}

	r := incReadIdxPost(&p.readIdx[0])
	if r >= 16 {
		// the button stream is over. the pull-up on the data line reads 1
		return bits | 0x01
	}

	return bits | uint8((c.Buttons(p.current)>>(15-r))&0x01)
}

// AutoRead performs the hardware auto-read sequence: strobe the latch high
// then low, then clock all sixteen bits out of every connected joypad into
// the registers at $4218-$421f. Ports without a controller report zero. The
// serial read counters of read ports are left at 16 so that manual reads
// that follow see only 1s.
func (c *Controllers) AutoRead() {
	c.SetLatch(true)
	c.SetLatch(false)

	for i := range c.ports {
		p := &c.ports[i]
		primary := memory.JOY1L + uint16(i)*2
		secondary := memory.JOY3L + uint16(i)*2

		if p.current == NoPad {
			c.mmio.PokeWord(primary, 0)
			c.mmio.PokeWord(secondary, 0)
			continue
		}

		p.readIdx[0] = 16
		c.mmio.PokeWord(primary, c.Buttons(p.current))
		c.mmio.PokeWord(secondary, 0)
	}
}

// EndOfFrame advances the pad-read telemetry: whether the program polled the
// controllers in the frame just ended.
func (c *Controllers) EndOfFrame() {
	c.padReadLast = c.padRead
	c.padRead = false
}

// PadReadThisFrame reports whether the serial interface has been read since
// the last EndOfFrame.
func (c *Controllers) PadReadThisFrame() bool {
	return c.padRead
}

// PadReadLastFrame reports whether the serial interface was read at all in
// the previous frame. Useful for a frontend that wants to indicate whether
// the running program is polling input.
func (c *Controllers) PadReadLastFrame() bool {
	return c.padReadLast
}
