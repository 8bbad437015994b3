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

package controllers_test

import (
	"testing"

	"github.com/adriaanm/ezsnes9x/hardware/controllers"
	"github.com/adriaanm/ezsnes9x/hardware/memory"
	"github.com/adriaanm/ezsnes9x/test"
)

func newControllers() (*controllers.Controllers, *memory.MMIO) {
	mmio := memory.NewMMIO()
	return controllers.NewControllers(mmio), mmio
}

func TestDefaultPlugging(t *testing.T) {
	c, _ := newControllers()

	// the first two joypads are plugged in by default
	test.Equate(t, int(c.PluggedInto(controllers.Port1)), 0)
	test.Equate(t, int(c.PluggedInto(controllers.Port2)), 1)
}

func TestSerialRead(t *testing.T) {
	c, _ := newControllers()

	// bit pattern 1010 1011 0101 0101
	c.SetJoypadButtons(0, 0xab55)

	c.SetLatch(true)
	c.SetLatch(false)

	expected := []uint8{1, 0, 1, 0, 1, 0, 1, 1, 0, 1, 0, 1, 0, 1, 0, 1}
	for i, e := range expected {
		r := c.ReadSerial(controllers.Port1) & 0x01
		if r != e {
			t.Fatalf("serial read #%d returned %d (wanted %d)", i+1, r, e)
		}
	}

	// the seventeenth read and beyond must return the pull-up value
	test.Equate(t, c.ReadSerial(controllers.Port1)&0x01, 1)
	test.Equate(t, c.ReadSerial(controllers.Port1)&0x01, 1)
}

func TestSerialReadLatchHeld(t *testing.T) {
	c, _ := newControllers()

	c.SetJoypadButtons(0, controllers.ButtonB)
	c.SetLatch(true)

	// while the latch is high every read returns the B button bit
	for i := 0; i < 20; i++ {
		test.Equate(t, c.ReadSerial(controllers.Port1)&0x01, 1)
	}

	c.SetJoypadButtons(0, 0x0000)
	test.Equate(t, c.ReadSerial(controllers.Port1)&0x01, 0)
}

func TestSerialReadOpenBus(t *testing.T) {
	c, mmio := newControllers()

	mmio.OpenBus = 0xff

	c.SetJoypadButtons(0, 0x0000)
	c.SetJoypadButtons(1, 0x0000)
	c.SetLatch(true)
	c.SetLatch(false)

	// the two low bits of the open bus are driven by the controller; bits 2
	// to 4 of the second port are wired high regardless of the bus
	test.Equate(t, c.ReadSerial(controllers.Port1), 0xfc)
	test.Equate(t, c.ReadSerial(controllers.Port2), 0xfc|0x1c)

	mmio.OpenBus = 0x00
	test.Equate(t, c.ReadSerial(controllers.Port1), 0x00)
	test.Equate(t, c.ReadSerial(controllers.Port2), 0x1c)
}

func TestSerialReadEmptyPort(t *testing.T) {
	c, _ := newControllers()

	c.SetController(controllers.Port1, controllers.NoPad)
	c.SetLatch(true)
	c.SetLatch(false)

	// an empty port drives nothing onto the bus
	for i := 0; i < 20; i++ {
		test.Equate(t, c.ReadSerial(controllers.Port1)&0x01, 0)
	}
}

func TestLatchCommitsPending(t *testing.T) {
	c, _ := newControllers()

	c.SetJoypadButtons(0, 0x0000)
	c.SetJoypadButtons(2, controllers.ButtonB)

	// plugging is staged. the console still sees the default pad
	c.SetController(controllers.Port1, 2)
	test.Equate(t, int(c.PluggedInto(controllers.Port1)), 0)

	c.SetLatch(true)
	test.Equate(t, c.ReadSerial(controllers.Port1)&0x01, 0)

	// the falling edge commits the new controller
	c.SetLatch(false)
	test.Equate(t, int(c.PluggedInto(controllers.Port1)), 2)
	test.Equate(t, c.ReadSerial(controllers.Port1)&0x01, 1)
}

func TestVerifyControllers(t *testing.T) {
	c, _ := newControllers()

	c.SetController(controllers.Port1, 3)
	c.SetController(controllers.Port2, 3)

	test.ExpectSuccess(t, c.VerifyControllers())

	// the lower-numbered port keeps the pad
	c.ResetSoft()
	test.Equate(t, int(c.PluggedInto(controllers.Port1)), 3)
	test.Equate(t, int(c.PluggedInto(controllers.Port2)), int(controllers.NoPad))

	// a second verification changes nothing
	test.ExpectFailure(t, c.VerifyControllers())
}

func TestAutoRead(t *testing.T) {
	c, mmio := newControllers()

	for pad := 0; pad < controllers.NumPads; pad++ {
		for pt := controllers.Port1; pt <= controllers.Port2; pt++ {
			mask := uint16(0x1230) | uint16(pad)<<8

			c.SetController(pt, controllers.PadID(pad))
			c.SetLatch(true)
			c.SetLatch(false)

			c.SetJoypadButtons(controllers.PadID(pad), mask)
			c.AutoRead()

			test.Equate(t, mmio.PeekWord(memory.JOY1L+uint16(pt)*2), mask)
			test.Equate(t, mmio.PeekWord(memory.JOY3L+uint16(pt)*2), 0)

			// manual reads that follow an auto-read see only 1s
			test.Equate(t, c.ReadSerial(pt)&0x01, 1)
		}
	}
}

func TestAutoReadEmptyPort(t *testing.T) {
	c, mmio := newControllers()

	// make sure a previous auto-read result is overwritten with zeroes
	c.SetJoypadButtons(1, 0xfff0)
	c.AutoRead()
	test.Equate(t, mmio.PeekWord(memory.JOY2L), 0xfff0)

	c.SetController(controllers.Port2, controllers.NoPad)
	c.AutoRead()
	test.Equate(t, mmio.PeekWord(memory.JOY2L), 0)
	test.Equate(t, mmio.PeekWord(memory.JOY4L), 0)
}

func TestSwapJoypads(t *testing.T) {
	c, _ := newControllers()

	c.SwapJoypads()

	// the swap is staged like any other plugging change
	test.Equate(t, int(c.PluggedInto(controllers.Port1)), 0)
	c.SetLatch(true)
	c.SetLatch(false)
	test.Equate(t, int(c.PluggedInto(controllers.Port1)), 1)
	test.Equate(t, int(c.PluggedInto(controllers.Port2)), 0)
}

func TestPadReadTelemetry(t *testing.T) {
	c, _ := newControllers()

	test.ExpectFailure(t, c.PadReadThisFrame())
	test.ExpectFailure(t, c.PadReadLastFrame())

	_ = c.ReadSerial(controllers.Port1)
	test.ExpectSuccess(t, c.PadReadThisFrame())

	c.EndOfFrame()
	test.ExpectFailure(t, c.PadReadThisFrame())
	test.ExpectSuccess(t, c.PadReadLastFrame())

	// a frame without any reads clears the flag
	c.EndOfFrame()
	test.ExpectFailure(t, c.PadReadLastFrame())
}

func TestIgnoredArguments(t *testing.T) {
	c, _ := newControllers()

	// out of range ports and pads are ignored silently
	c.SetController(controllers.PortID(5), 3)
	c.SetJoypadButtons(controllers.PadID(9), 0xfff0)
	c.SetJoypadButtons(controllers.PadID(-3), 0xfff0)
	_ = c.ReadSerial(controllers.PortID(7))

	test.Equate(t, c.Buttons(controllers.PadID(9)), 0)

	// a pad number outside the valid range unplugs the port
	c.SetController(controllers.Port1, 8)
	c.SetLatch(true)
	c.SetLatch(false)
	test.Equate(t, int(c.PluggedInto(controllers.Port1)), int(controllers.NoPad))
}

func TestReadIdxSaturation(t *testing.T) {
	c, _ := newControllers()

	c.SetJoypadButtons(0, 0xfff0)
	c.SetLatch(true)
	c.SetLatch(false)

	// a runaway program reading the port hundreds of times must keep seeing
	// 1s rather than wrapping back into the button stream
	for i := 0; i < 300; i++ {
		_ = c.ReadSerial(controllers.Port1)
	}
	test.Equate(t, c.ReadSerial(controllers.Port1)&0x01, 1)
}
