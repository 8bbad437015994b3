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

package sdlplay

import (
	"github.com/adriaanm/ezsnes9x/hardware/controllers"
	"github.com/adriaanm/ezsnes9x/playmode"

	"github.com/veandco/go-sdl2/sdl"
)

// keymap translates scancodes to joypad buttons for the first pad.
type keymap map[sdl.Scancode]uint16

func newKeymap() keymap {
	return keymap{
		sdl.SCANCODE_UP:     controllers.ButtonUp,
		sdl.SCANCODE_DOWN:   controllers.ButtonDown,
		sdl.SCANCODE_LEFT:   controllers.ButtonLeft,
		sdl.SCANCODE_RIGHT:  controllers.ButtonRight,
		sdl.SCANCODE_X:      controllers.ButtonA,
		sdl.SCANCODE_Z:      controllers.ButtonB,
		sdl.SCANCODE_S:      controllers.ButtonX,
		sdl.SCANCODE_A:      controllers.ButtonY,
		sdl.SCANCODE_Q:      controllers.ButtonL,
		sdl.SCANCODE_W:      controllers.ButtonR,
		sdl.SCANCODE_RETURN: controllers.ButtonStart,
		sdl.SCANCODE_RSHIFT: controllers.ButtonSelect,
	}
}

// Service implements the playmode.GUI interface.
//
// Must be called from the main thread.
func (scr *SdlPlay) Service(co *playmode.Coordinator, c *controllers.Controllers) bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return false

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				continue
			}

			pressed := ev.Type == sdl.KEYDOWN

			if b, ok := scr.keys[ev.Keysym.Scancode]; ok {
				pad := c.PluggedInto(controllers.Port1)
				mask := c.Buttons(pad)
				if pressed {
					mask |= b
				} else {
					mask &^= b
				}
				c.SetJoypadButtons(pad, mask)
				continue
			}

			switch ev.Keysym.Scancode {
			case sdl.SCANCODE_ESCAPE:
				if pressed {
					return false
				}

			case sdl.SCANCODE_BACKSPACE:
				// the rewind gesture lasts for as long as the key is held
				if pressed {
					co.StartRewind()
				} else {
					co.StopRewind()
				}

			case sdl.SCANCODE_F9:
				if pressed {
					c.SwapJoypads()
				}
			}
		}
	}

	scr.setTitle(co.IsRewinding(), co.Position(), co.BufferDepth())

	return true
}
