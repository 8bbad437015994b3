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

package playmode

import (
	"github.com/adriaanm/ezsnes9x/emulation"
	"github.com/adriaanm/ezsnes9x/hardware"
	"github.com/adriaanm/ezsnes9x/rewind"
)

// Coordinator wraps the emulator frame loop and translates the user's
// rewind gesture into commands on the rewind system.
//
// While running normally, each frame is: run the machine, then offer the
// rewind system a capture. While the rewind gesture is held, each frame is:
// step the rewind position back, then run the machine for one frame.
// Snapshots do not include the rendered framebuffer so the machine must
// re-execute one frame from the restored state to repaint it.
type Coordinator struct {
	snes *hardware.SNES
	rew  *rewind.Rewind

	state emulation.State

	// rewind can be turned off wholesale, in which case captures stop and
	// the gesture is ignored
	enabled bool
}

// NewCoordinator is the preferred method of initialisation for the
// Coordinator type.
func NewCoordinator(snes *hardware.SNES, rew *rewind.Rewind) *Coordinator {
	return &Coordinator{
		snes:    snes,
		rew:     rew,
		state:   emulation.Running,
		enabled: true,
	}
}

// SetRewindEnabled turns the rewind system on or off. Turning it off while
// a rewind is in progress ends the rewind first.
func (co *Coordinator) SetRewindEnabled(enabled bool) {
	if !enabled {
		co.StopRewind()
	}
	co.enabled = enabled
}

// Frame runs the emulation for one frame, honouring the current gesture
// state.
func (co *Coordinator) Frame() error {
	if co.state == emulation.Rewinding {
		return co.Tick()
	}

	err := co.snes.RunFrame()
	if err != nil {
		return err
	}

	if co.enabled {
		co.rew.Capture()
	}

	return nil
}

// StartRewind begins the rewind gesture. The rewind position jumps to the
// most recent snapshot immediately so the user sees instant feedback. A
// no-op if a rewind is already in progress.
func (co *Coordinator) StartRewind() {
	if !co.enabled || co.state == emulation.Rewinding {
		return
	}

	// nothing to rewind to
	if co.rew.Count() == 0 {
		return
	}

	co.state = emulation.Rewinding
	co.rew.StepBack()
}

// StopRewind ends the rewind gesture, discarding the abandoned future. A
// no-op if no rewind is in progress.
func (co *Coordinator) StopRewind() {
	if co.state != emulation.Rewinding {
		return
	}

	co.rew.Release()
	co.state = emulation.Running
}

// Tick performs one frame of rewinding: step the rewind position back (a
// no-op at the oldest snapshot) and re-run the machine for one frame to
// repaint the framebuffer.
func (co *Coordinator) Tick() error {
	if co.state != emulation.Rewinding {
		return nil
	}

	co.rew.StepBack()
	return co.snes.RunFrame()
}

// IsRewinding returns true while the rewind gesture is held.
func (co *Coordinator) IsRewinding() bool {
	return co.state == emulation.Rewinding
}

// State returns the current condition of the emulation.
func (co *Coordinator) State() emulation.State {
	return co.state
}

// BufferDepth returns the number of snapshots in the rewind buffer. Useful
// for a frontend progress bar.
func (co *Coordinator) BufferDepth() int {
	return co.rew.Count()
}

// Position returns the offset of the rewind position from the oldest
// snapshot.
func (co *Coordinator) Position() int {
	return co.rew.Position()
}
