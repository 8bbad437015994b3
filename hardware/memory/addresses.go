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

package memory

// Addresses of the MMIO registers handled by this package.
const (
	// JOYSER0 doubles as the joypad latch line on write. bit 0 of the written
	// value is the level of the latch.
	JOYSER0 uint16 = 0x4016
	JOYSER1 uint16 = 0x4017

	// the auto-read registers. one 16-bit little-endian word per port at
	// JOY1L/JOY2L and the secondary word at JOY3L/JOY4L.
	JOY1L uint16 = 0x4218
	JOY2L uint16 = 0x421a
	JOY3L uint16 = 0x421c
	JOY4L uint16 = 0x421e
)

// extent of the MMIO page.
const (
	OriginMMIO uint16 = 0x4000
	MemtopMMIO uint16 = 0x43ff
)
