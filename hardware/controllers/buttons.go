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

package controllers

import "strings"

// Button masks for the 16-bit joypad state word. The bit order is the order
// in which the bits are shifted out of the serial interface, B first. The
// low four bits of the word are always zero.
const (
	ButtonB      uint16 = 0x8000
	ButtonY      uint16 = 0x4000
	ButtonSelect uint16 = 0x2000
	ButtonStart  uint16 = 0x1000
	ButtonUp     uint16 = 0x0800
	ButtonDown   uint16 = 0x0400
	ButtonLeft   uint16 = 0x0200
	ButtonRight  uint16 = 0x0100
	ButtonA      uint16 = 0x0080
	ButtonX      uint16 = 0x0040
	ButtonL      uint16 = 0x0020
	ButtonR      uint16 = 0x0010
)

// ButtonsMask covers every valid button bit.
const ButtonsMask uint16 = 0xfff0

var buttonNames = []struct {
	mask uint16
	name string
}{
	{ButtonB, "B"},
	{ButtonY, "Y"},
	{ButtonSelect, "Select"},
	{ButtonStart, "Start"},
	{ButtonUp, "Up"},
	{ButtonDown, "Down"},
	{ButtonLeft, "Left"},
	{ButtonRight, "Right"},
	{ButtonA, "A"},
	{ButtonX, "X"},
	{ButtonL, "L"},
	{ButtonR, "R"},
}

// ButtonsString returns a readable representation of a button mask.
func ButtonsString(buttons uint16) string {
	if buttons&ButtonsMask == 0 {
		return "none"
	}

	s := strings.Builder{}
	for _, b := range buttonNames {
		if buttons&b.mask == b.mask {
			if s.Len() > 0 {
				s.WriteString("+")
			}
			s.WriteString(b.name)
		}
	}
	return s.String()
}
