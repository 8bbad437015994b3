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

import (
	"encoding/binary"

	"github.com/adriaanm/ezsnes9x/curated"
	"github.com/adriaanm/ezsnes9x/hardware/memory"
)

// SnapshotVersion is the version byte written into new controller records.
const SnapshotVersion = 7

// SnapshotLength is the length in bytes of a version 7 controller record.
const SnapshotLength = 39

// offsets into the controller record. the reserved runs between the fields
// are where older versions stored mouse, lightgun and multitap state.
const (
	offVersion     = 0
	offPort1Idx    = 1
	offPort2Idx    = 7
	offPadRead     = 21
	offPadReadLast = 22
	offButtons     = 23
)

// sentinel error patterns for the Restore() function.
const (
	// the record is shorter than its version demands.
	SnapshotTooShort = "controllers: snapshot record too short (%d bytes)"
)

// Snapshot serialises the controller state into a save-state record. The
// layout is bit-exact with the version 7 record used by other
// implementations: little-endian, reserved areas zeroed.
func (c *Controllers) Snapshot() []byte {
	data := make([]byte, SnapshotLength)

	data[offVersion] = SnapshotVersion

	data[offPort1Idx] = c.ports[Port1].readIdx[0]
	data[offPort1Idx+1] = c.ports[Port1].readIdx[1]
	data[offPort2Idx] = c.ports[Port2].readIdx[0]
	data[offPort2Idx+1] = c.ports[Port2].readIdx[1]

	if c.padRead {
		data[offPadRead] = 1
	}
	if c.padReadLast {
		data[offPadReadLast] = 1
	}

	for i := 0; i < NumPads; i++ {
		binary.LittleEndian.PutUint16(data[offButtons+i*2:], c.Buttons(PadID(i)))
	}

	return data
}

// Restore deserialises a controller record created by Snapshot, or by an
// older implementation using an earlier version of the layout.
//
// Version 6 is identical to version 7. Versions before 6 carried state for
// devices this implementation does not model; only the joypad button masks
// are recovered from the record's internal area and the rest is ignored.
// Versions 2 and earlier did not record the pad-read flags.
//
// The level of the latch line is not part of the record. It is re-inferred
// from bit 0 of the $4016 register as restored by the wider save state.
func (c *Controllers) Restore(data []byte) error {
	if len(data) < 1 {
		return curated.Errorf(SnapshotTooShort, len(data))
	}

	ver := data[offVersion]

	// every version records the serial read counters and button masks at the
	// same offsets
	if len(data) < SnapshotLength {
		return curated.Errorf(SnapshotTooShort, len(data))
	}

	c.ports[Port1].readIdx[0] = data[offPort1Idx]
	c.ports[Port1].readIdx[1] = data[offPort1Idx+1]
	c.ports[Port2].readIdx[0] = data[offPort2Idx]
	c.ports[Port2].readIdx[1] = data[offPort2Idx+1]

	for i := 0; i < NumPads; i++ {
		c.SetJoypadButtons(PadID(i), binary.LittleEndian.Uint16(data[offButtons+i*2:]))
	}

	if ver > 2 {
		c.padRead = data[offPadRead] != 0
		c.padReadLast = data[offPadReadLast] != 0
	}

	c.latch = c.mmio.Peek(memory.JOYSER0)&0x01 == 0x01

	return nil
}
