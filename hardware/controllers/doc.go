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

// Package controllers models the two controller ports of the console and the
// bit-serial protocol by which the emulated CPU reads joypad state through
// them.
//
// The console sees controllers through the registers at $4016 and $4017. A
// write to $4016 drives the latch line shared by both ports: while the latch
// is high a connected joypad continuously reloads its shift register; when
// the latch falls the joypad freezes the register and subsequent reads of
// $4016/$4017 shift the sixteen button bits out one at a time, most
// significant first. After the sixteenth bit a real joypad returns 1s
// indefinitely (there is a pull-up on the data line).
//
// Eight logical joypads exist and the frontend decides which of them is
// plugged into which port. Plugging is staged: a new assignment becomes
// visible to the console on the next falling latch edge, mirroring the fact
// that real hardware only notices a controller swap when the game next
// polls.
//
// The frontend pushes button state with SetJoypadButtons. That function is
// the only part of the sub-system that may be called from outside the
// emulator thread.
package controllers
