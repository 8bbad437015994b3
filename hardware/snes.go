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

// Package hardware binds the externally implemented emulator core to the
// sub-systems this repository does implement: the controller ports and the
// MMIO page they share with the core.
package hardware

import (
	"github.com/adriaanm/ezsnes9x/hardware/controllers"
	"github.com/adriaanm/ezsnes9x/hardware/memory"
)

// reference output dimensions, reported until the core says otherwise.
const (
	defFrameWidth  = 256
	defFrameHeight = 224
)

// SNES is the main container for the emulated console.
type SNES struct {
	Core        Core
	MMIO        *memory.MMIO
	Controllers *controllers.Controllers

	// audio sink for the core's sample stream. may be nil
	mixer AudioMixer

	// sample buffer reused every frame
	samples []int16

	// dimensions of the core's output as most recently reported
	frameWidth  int
	frameHeight int
}

// NewSNES is the preferred method of initialisation for the SNES type.
func NewSNES(core Core) *SNES {
	s := &SNES{
		Core:        core,
		MMIO:        memory.NewMMIO(),
		frameWidth:  defFrameWidth,
		frameHeight: defFrameHeight,
	}

	s.Controllers = controllers.NewControllers(s.MMIO)

	if c, ok := core.(BusConnector); ok {
		c.Connect(s.Controllers, s.MMIO)
	}

	return s
}

// AttachAudioMixer directs the core's sample stream to the mixer. A nil
// mixer detaches audio.
func (s *SNES) AttachAudioMixer(m AudioMixer) {
	s.mixer = m
}

// RunFrame advances the emulation by one video frame and ends the frame for
// the controller sub-system.
func (s *SNES) RunFrame() error {
	err := s.Core.RunFrame()
	if err != nil {
		return err
	}

	s.Controllers.EndOfFrame()

	if s.mixer != nil {
		if p, ok := s.Core.(AudioProvider); ok {
			if s.samples == nil {
				s.samples = make([]int16, 4096)
			}
			n := p.ReadAudio(s.samples)
			if n > 0 {
				err = s.mixer.SetAudio(s.samples[:n])
				if err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// ResetSoft emulates the console's reset switch.
func (s *SNES) ResetSoft() {
	s.Controllers.ResetSoft()
}

// ResetHard emulates a power cycle.
func (s *SNES) ResetHard() {
	s.MMIO.Reset()
	s.Controllers.ResetHard()
}

// SetFrameSize records the output dimensions reported by the core. The core
// calls this whenever the emulated program changes the output resolution.
func (s *SNES) SetFrameSize(w, h int) {
	s.frameWidth = w
	s.frameHeight = h
}

// FrameSize returns the most recently reported output dimensions.
func (s *SNES) FrameSize() (int, int) {
	return s.frameWidth, s.frameHeight
}
