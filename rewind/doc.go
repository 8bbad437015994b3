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

// Package rewind keeps a bounded history of emulator states and can walk the
// emulation backwards through them.
//
// States are captured at a fixed frame cadence through the Snapshotter
// interface. Most captures are stored as the XOR of the state against the
// previous capture, a delta that is mostly zero bytes for an emulated
// machine running normally. Every few captures a full copy of the state (a
// keyframe) is stored instead, which bounds the number of XOR passes needed
// to rebuild any snapshot in the ring.
//
// While the user holds the rewind gesture the ring is walked from the most
// recent snapshot towards the oldest, each snapshot being rebuilt and thawed
// into the live emulation. Releasing the gesture discards the abandoned
// future and normal capture resumes from the rewound point.
package rewind
