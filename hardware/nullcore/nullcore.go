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

// Package nullcore is a stand-in for the real emulator core. It scrolls a
// test pattern under joypad control and hums when the B button is held,
// which is enough machine to exercise the controller protocol, the rewind
// ring and the frontends without a ROM.
//
// The real core is developed out of tree and reaches the controller
// sub-system through the same two interfaces this package implements:
// hardware.Core and hardware.BusConnector.
package nullcore

import (
	"encoding/binary"

	"github.com/adriaanm/ezsnes9x/curated"
	"github.com/adriaanm/ezsnes9x/hardware"
	"github.com/adriaanm/ezsnes9x/hardware/controllers"
	"github.com/adriaanm/ezsnes9x/hardware/memory"
)

// output dimensions of the test pattern.
const (
	width  = 256
	height = 224
)

// samples generated per frame: stereo at the native rate, 60 frames per
// second.
const samplesPerFrame = hardware.AudioSampleFreq / 60 * 2

// NullCore implements hardware.Core over a trivial machine: a scroll
// position, a frame counter and a tone generator.
type NullCore struct {
	bus  hardware.ControllerBus
	mmio *memory.MMIO

	x     uint16
	y     uint16
	frame uint64
	phase uint32

	pixels []uint16
	audio  []int16
}

// NewNullCore is the preferred method of initialisation for the NullCore
// type.
func NewNullCore() *NullCore {
	return &NullCore{
		pixels: make([]uint16, width*height),
	}
}

// Connect implements the hardware.BusConnector interface.
func (c *NullCore) Connect(bus hardware.ControllerBus, mmio *memory.MMIO) {
	c.bus = bus
	c.mmio = mmio
}

// FreezeSize implements the hardware.Core interface.
func (c *NullCore) FreezeSize() int {
	return 16
}

// Freeze implements the hardware.Core interface.
func (c *NullCore) Freeze(buf []byte) error {
	if len(buf) < c.FreezeSize() {
		return curated.Errorf("nullcore: freeze buffer too small (%d bytes)", len(buf))
	}
	binary.LittleEndian.PutUint16(buf[0:], c.x)
	binary.LittleEndian.PutUint16(buf[2:], c.y)
	binary.LittleEndian.PutUint64(buf[4:], c.frame)
	binary.LittleEndian.PutUint32(buf[12:], c.phase)
	return nil
}

// Unfreeze implements the hardware.Core interface.
func (c *NullCore) Unfreeze(buf []byte) error {
	if len(buf) < c.FreezeSize() {
		return curated.Errorf("nullcore: unfreeze buffer too small (%d bytes)", len(buf))
	}
	c.x = binary.LittleEndian.Uint16(buf[0:])
	c.y = binary.LittleEndian.Uint16(buf[2:])
	c.frame = binary.LittleEndian.Uint64(buf[4:])
	c.phase = binary.LittleEndian.Uint32(buf[12:])
	return nil
}

// RunFrame implements the hardware.Core interface. The "program" polls the
// joypads through the auto-read registers, the way most real programs do.
func (c *NullCore) RunFrame() error {
	var joy uint16
	if c.bus != nil {
		c.bus.AutoRead()
		joy = c.mmio.PeekWord(memory.JOY1L)
	}

	if joy&controllers.ButtonUp == controllers.ButtonUp {
		c.y--
	}
	if joy&controllers.ButtonDown == controllers.ButtonDown {
		c.y++
	}
	if joy&controllers.ButtonLeft == controllers.ButtonLeft {
		c.x--
	}
	if joy&controllers.ButtonRight == controllers.ButtonRight {
		c.x++
	}

	c.frame++
	c.render()
	c.mix(joy&controllers.ButtonB == controllers.ButtonB)

	return nil
}

// render the test pattern: an RGB565 gradient offset by the scroll
// position.
func (c *NullCore) render() {
	for y := 0; y < height; y++ {
		py := (y + int(c.y)) & 0xff
		for x := 0; x < width; x++ {
			px := (x + int(c.x)) & 0xff
			r := uint16(px>>3) << 11
			g := uint16(py>>2) << 5
			b := uint16((px ^ py) >> 3)
			c.pixels[y*width+x] = r | g | b
		}
	}
}

// mix one frame of audio: a square wave while the tone is on, silence
// otherwise.
func (c *NullCore) mix(tone bool) {
	if c.audio == nil {
		c.audio = make([]int16, samplesPerFrame)
	}

	// 440Hz at the native sample rate
	const halfPeriod = hardware.AudioSampleFreq / (2 * 440)

	for i := 0; i < len(c.audio); i += 2 {
		var v int16
		if tone {
			if (c.phase/halfPeriod)%2 == 0 {
				v = 6000
			} else {
				v = -6000
			}
			c.phase++
		} else {
			c.phase = 0
		}
		c.audio[i] = v
		c.audio[i+1] = v
	}
}

// ReadAudio implements the hardware.AudioProvider interface.
func (c *NullCore) ReadAudio(buf []int16) int {
	if c.audio == nil {
		return 0
	}
	return copy(buf, c.audio)
}

// Framebuffer implements the hardware.Core interface.
func (c *NullCore) Framebuffer() []uint16 {
	return c.pixels
}
