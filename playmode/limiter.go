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
	"time"
)

// a rough and ready way of limiting the frame loop to a fixed rate.
// probably only any good if base performance of the machine is well above
// the required rate.
type fpsLimiter struct {
	secondsPerFrame time.Duration
	tick            chan bool
}

func newFPSLimiter(framesPerSecond int) *fpsLimiter {
	lim := &fpsLimiter{
		secondsPerFrame: time.Second / time.Duration(framesPerSecond),
		tick:            make(chan bool),
	}

	// run ticker concurrently, adjusting the sleep period for the drift
	// accumulated on the previous frame
	go func() {
		adjusted := lim.secondsPerFrame
		t := time.Now()
		for {
			lim.tick <- true
			time.Sleep(adjusted)
			nt := time.Now()
			adjusted -= nt.Sub(t) - lim.secondsPerFrame
			t = nt
		}
	}()

	return lim
}

// wait blocks until the next frame is due.
func (lim *fpsLimiter) wait() {
	<-lim.tick
}
