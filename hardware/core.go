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

package hardware

import (
	"github.com/adriaanm/ezsnes9x/hardware/controllers"
	"github.com/adriaanm/ezsnes9x/hardware/memory"
)

// ControllerBus is the narrow contract through which the emulated CPU inside
// the Core reaches the controller sub-system. It is the only path by which
// the Core may touch controller state.
type ControllerBus interface {
	// a read of $4016 or $4017
	ReadSerial(id controllers.PortID) uint8

	// a write to $4016. bit 0 of the written value is the latch level
	SetLatch(level bool)

	// the auto-read sequence triggered at the start of vblank when enabled
	// by the program
	AutoRead()
}

// Core is the external emulator: the CPU, PPU and APU that this repository
// deliberately does not implement. The hardware package drives it one frame
// at a time and copies its state in and out through the freeze interface.
type Core interface {
	// FreezeSize returns the fixed byte count of a full state snapshot
	FreezeSize() int

	// Freeze the live state into buf, which is FreezeSize() bytes long
	Freeze(buf []byte) error

	// Unfreeze loads the bytes as the live state
	Unfreeze(buf []byte) error

	// RunFrame executes the machine for one video frame
	RunFrame() error

	// Framebuffer returns the most recently rendered frame as RGB565
	// pixels, row-major
	Framebuffer() []uint16
}

// BusConnector is implemented by Cores that read controller state. The
// hardware package connects the controller bus and the shared MMIO page
// before the first frame is run.
type BusConnector interface {
	Connect(bus ControllerBus, mmio *memory.MMIO)
}

// AudioSampleFreq is the native sample rate of the console's audio
// hardware, in Hz.
const AudioSampleFreq = 32040

// AudioMixer implementations receive the externally mixed sample stream:
// 16-bit signed stereo samples, left then right.
type AudioMixer interface {
	SetAudio(samples []int16) error
	EndMixing() error
}

// AudioProvider is implemented by Cores that produce audio. The frame loop
// pulls the samples mixed during the frame and forwards them to the attached
// AudioMixer.
type AudioProvider interface {
	// ReadAudio fills buf with mixed samples and returns the number of
	// samples written
	ReadAudio(buf []int16) int
}
