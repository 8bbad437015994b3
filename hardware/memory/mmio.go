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

// Package memory implements the slice of the console's bus-visible register
// file that the controller sub-system reads and writes: the $4000 to $43ff
// page. The wider memory map (WRAM, cartridge, PPU registers) belongs to the
// external emulator core; only this page is shared with the core through the
// MMIO type.
package memory

// MMIO is the register page at $4000 to $43ff plus the current open-bus
// value. Reads of unmapped or write-only addresses on real silicon return
// the last value seen on the data bus; writers of the OpenBus field decide
// what that value is.
type MMIO struct {
	page [MemtopMMIO - OriginMMIO + 1]uint8

	// the most recent value on the data bus. used to fill the undriven bits
	// of serial controller reads.
	OpenBus uint8
}

// NewMMIO is the preferred method of initialisation for the MMIO type.
func NewMMIO() *MMIO {
	return &MMIO{}
}

// Snapshot creates a copy of the MMIO page in its current state.
func (m *MMIO) Snapshot() *MMIO {
	n := *m
	return &n
}

// Reset the contents of the page to zero.
func (m *MMIO) Reset() {
	for i := range m.page {
		m.page[i] = 0
	}
	m.OpenBus = 0
}

// Peek returns the byte at the address. Addresses outside the page return
// the open-bus value.
func (m *MMIO) Peek(address uint16) uint8 {
	if address < OriginMMIO || address > MemtopMMIO {
		return m.OpenBus
	}
	return m.page[address-OriginMMIO]
}

// Poke writes the byte at the address. Addresses outside the page are
// ignored.
func (m *MMIO) Poke(address uint16, data uint8) {
	if address < OriginMMIO || address > MemtopMMIO {
		return
	}
	m.page[address-OriginMMIO] = data
}

// PeekWord returns the 16-bit little-endian word at the address.
func (m *MMIO) PeekWord(address uint16) uint16 {
	return uint16(m.Peek(address)) | uint16(m.Peek(address+1))<<8
}

// PokeWord writes the 16-bit word at the address, little-endian.
func (m *MMIO) PokeWord(address uint16, data uint16) {
	m.Poke(address, uint8(data))
	m.Poke(address+1, uint8(data>>8))
}
