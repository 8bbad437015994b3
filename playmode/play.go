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

// Package playmode runs the emulation for normal play: the frame loop, the
// rewind gesture, and the connection between the frontend and the
// controller sub-system.
package playmode

import (
	"github.com/adriaanm/ezsnes9x/curated"
	"github.com/adriaanm/ezsnes9x/hardware"
	"github.com/adriaanm/ezsnes9x/hardware/controllers"
	"github.com/adriaanm/ezsnes9x/logger"
	"github.com/adriaanm/ezsnes9x/rewind"
)

// GUI is the display and input surface of a play session. The SDL
// implementation lives in the gui/sdlplay package.
type GUI interface {
	// SetFrame presents a rendered frame: RGB565 pixels, row-major
	SetFrame(pixels []uint16, w, h int) error

	// Service polls the windowing system, forwarding button changes to the
	// controllers and rewind gestures to the coordinator. It returns false
	// when the user has asked to quit.
	//
	// Must be called from the main thread.
	Service(co *Coordinator, c *controllers.Controllers) bool

	// release all resources used by the GUI
	Destroy()
}

// frames per second of the NTSC console. the frame loop ticks at this rate
// regardless of what the core renders.
const framesPerSecond = 60

// Play runs a play session over an already wired console until the user
// quits. The gui may be nil for a headless session (useful in benchmarks),
// in which case the session ends when the core returns an error.
func Play(snes *hardware.SNES, gui GUI, mixer hardware.AudioMixer) error {
	rew, err := rewind.NewRewind(snes.Core)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}

	co := NewCoordinator(snes, rew)
	co.SetRewindEnabled(rew.Prefs.Enabled.Get().(bool))

	if mixer != nil {
		snes.AttachAudioMixer(mixer)
		defer func() {
			if err := mixer.EndMixing(); err != nil {
				logger.Logf("playmode", "%v", err)
			}
		}()
	}

	if gui != nil {
		defer gui.Destroy()
	}

	logger.Logf("playmode", "starting: %s", rew.String())

	lmtr := newFPSLimiter(framesPerSecond)

	for {
		lmtr.wait()

		if gui != nil {
			if !gui.Service(co, snes.Controllers) {
				return nil
			}
		}

		err := co.Frame()
		if err != nil {
			return curated.Errorf("playmode: %v", err)
		}

		if gui != nil {
			w, h := snes.FrameSize()
			err = gui.SetFrame(snes.Core.Framebuffer(), w, h)
			if err != nil {
				return curated.Errorf("playmode: %v", err)
			}
		}
	}
}
