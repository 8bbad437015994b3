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

package rewind

import (
	"fmt"

	"github.com/adriaanm/ezsnes9x/curated"
	"github.com/adriaanm/ezsnes9x/logger"
)

// Snapshotter is the contract with the external emulator core: freeze the
// live state into a fixed-size byte buffer and thaw it back. The rewind
// system never inspects the bytes. Freezing followed by thawing of the same
// bytes must leave the emulation in the same state.
type Snapshotter interface {
	// FreezeSize returns the byte count of a full state snapshot. The value
	// is constant for the lifetime of a loaded ROM.
	FreezeSize() int

	// Freeze writes the current live state into the buffer. A failed freeze
	// is treated as a missed capture, never as fatal.
	Freeze(buf []byte) error

	// Unfreeze loads the given bytes as the live state.
	Unfreeze(buf []byte) error
}

// Config collects the three ring tunables.
type Config struct {
	// number of snapshot slots in the ring
	Capacity int

	// how many frames between captures
	CaptureInterval int

	// how many captures between keyframes
	KeyframeInterval int
}

// Reference values for the ring tunables. At 60Hz they give about ten
// seconds of history and bound reconstruction to at most KeyframeInterval
// XOR passes.
var DefaultConfig = Config{
	Capacity:         200,
	CaptureInterval:  3,
	KeyframeInterval: 30,
}

// sentinel error patterns for the rewind package.
const (
	// the configuration violates the ring contract.
	InvalidConfig = "rewind: invalid configuration: %v"
)

// a snapshot slot is either a keyframe (a full copy of the state) or a
// delta (the XOR of the state against the capture before it).
type snapshotKind int

const (
	kindKeyframe snapshotKind = iota
	kindDelta
)

type slot struct {
	kind snapshotKind
	data []byte
}

// Rewind contains a history of machine states for the emulation.
type Rewind struct {
	core Snapshotter

	// preferences are only attached when the Rewind was created with
	// NewRewind. see preferences.go
	Prefs *Preferences

	capacity         int
	captureInterval  int
	keyframeInterval int

	// size of one frozen state. established once from the Snapshotter
	stateSize int

	// circular array of snapshot slots. head is the index of the most
	// recent snapshot. the tail index is derived from head and count
	entries []slot
	head    int
	count   int

	// position in the ring while rewinding. meaningless unless active
	cursor int
	active bool

	// frames since the last capture and captures since the last keyframe
	frameCtr int
	keyCtr   int

	// scratch buffers of stateSize bytes. curState receives freezes and
	// reconstructions; prevState remembers the previous capture so that the
	// next delta can be computed. prevValid is false before the first
	// capture
	curState  []byte
	prevState []byte
	prevValid bool

	// reconstruction walks gather slot indices here. allocated once so that
	// stepping backwards does not allocate
	chain []int
}

// NewRewind is the preferred method of initialisation for the Rewind type.
// The ring tunables are read from the preferences file.
func NewRewind(core Snapshotter) (*Rewind, error) {
	r, err := NewRewindWithConfig(core, DefaultConfig)
	if err != nil {
		return nil, err
	}

	r.Prefs, err = newPreferences(r)
	if err != nil {
		return nil, curated.Errorf("rewind: %v", err)
	}

	return r, nil
}

// NewRewindWithConfig initialises a Rewind with explicit tunables, without
// touching the preferences file.
func NewRewindWithConfig(core Snapshotter, cfg Config) (*Rewind, error) {
	r := &Rewind{core: core}

	if err := r.setConfig(cfg); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Rewind) setConfig(cfg Config) error {
	if cfg.CaptureInterval < 1 {
		return curated.Errorf(InvalidConfig, fmt.Sprintf("capture interval must be at least 1 (%d)", cfg.CaptureInterval))
	}
	if cfg.KeyframeInterval < 1 {
		return curated.Errorf(InvalidConfig, fmt.Sprintf("keyframe interval must be at least 1 (%d)", cfg.KeyframeInterval))
	}
	if cfg.Capacity < cfg.KeyframeInterval {
		return curated.Errorf(InvalidConfig, fmt.Sprintf("capacity (%d) is less than the keyframe interval (%d)", cfg.Capacity, cfg.KeyframeInterval))
	}

	sz := r.core.FreezeSize()
	if sz <= 0 {
		return curated.Errorf(InvalidConfig, fmt.Sprintf("state size must be positive (%d)", sz))
	}

	r.capacity = cfg.Capacity
	r.captureInterval = cfg.CaptureInterval
	r.keyframeInterval = cfg.KeyframeInterval
	r.stateSize = sz

	r.allocate()

	return nil
}

// allocate the ring and scratch buffers. any existing snapshot history is
// discarded.
func (r *Rewind) allocate() {
	r.entries = make([]slot, r.capacity)
	r.curState = make([]byte, r.stateSize)
	r.prevState = make([]byte, r.stateSize)

	// a delta chain can span the release point, where one partial chain is
	// continued by another. twice the keyframe interval covers the worst
	// case
	r.chain = make([]int, 0, r.keyframeInterval*2)

	r.Reset()
}

// Reset the rewind system, removing all snapshots. This should be called
// whenever a new ROM is attached to the emulation.
func (r *Rewind) Reset() {
	for i := range r.entries {
		r.entries[i].data = nil
	}
	r.head = -1
	r.count = 0
	r.cursor = -1
	r.active = false
	r.frameCtr = 0
	r.keyCtr = 0
	r.prevValid = false
}

// ring index helpers.
func (r *Rewind) ringPrev(i int) int {
	if i == 0 {
		return r.capacity - 1
	}
	return i - 1
}

func (r *Rewind) ringNext(i int) int {
	if i == r.capacity-1 {
		return 0
	}
	return i + 1
}

func (r *Rewind) tail() int {
	return (r.head - r.count + 1 + r.capacity) % r.capacity
}

// Capture advances the frame counter and, every captureInterval frames,
// stores a snapshot of the live state. Capture does nothing while a rewind
// is in progress: a delta taken then would be computed against the wrong
// predecessor.
func (r *Rewind) Capture() {
	if r.active {
		return
	}

	r.frameCtr++
	if r.frameCtr < r.captureInterval {
		return
	}

	if err := r.core.Freeze(r.curState); err != nil {
		// a missed capture. the frame counter is left alone so another
		// attempt is made on the very next frame
		logger.Logf("rewind", "capture skipped: %v", err)
		return
	}
	r.frameCtr = 0

	// advance head, overwriting the oldest slot once the ring is full
	head := 0
	if r.head >= 0 {
		head = r.ringNext(r.head)
	}

	s := &r.entries[head]
	if s.data == nil {
		s.data = make([]byte, r.stateSize)
	}

	// the first capture is always a keyframe, and every keyframeInterval
	// captures thereafter (keyCtr counts the deltas since the last
	// keyframe). periodic keyframes guarantee that when the ring wraps and
	// the oldest slot is overwritten, the new tail still reaches a keyframe
	// within a bounded number of steps
	if !r.prevValid || r.keyCtr >= r.keyframeInterval-1 {
		s.kind = kindKeyframe
		copy(s.data, r.curState)
		r.keyCtr = 0
	} else {
		s.kind = kindDelta
		copy(s.data, r.curState)
		xorBuffer(s.data, r.prevState)
		r.keyCtr++
	}

	r.head = head
	if r.count < r.capacity {
		r.count++
	} else {
		// the oldest slot has just been overwritten. evict any deltas now
		// stranded at the tail so that the oldest snapshot always sits on a
		// forward chain from a keyframe. capacity >= keyframeInterval
		// guarantees the loop finds one
		for r.entries[r.tail()].kind != kindKeyframe {
			r.count--
		}
	}

	copy(r.prevState, r.curState)
	r.prevValid = true
}

// reconstruct the full state at ring index idx into the curState buffer.
// walks backwards to the nearest keyframe then replays the deltas forward.
// returns the length of the chain that was walked.
//
// a chain that runs off the tail without finding a keyframe means the ring
// invariants have been broken. that is unreachable by construction so the
// function panics rather than returning an error.
func (r *Rewind) reconstruct(idx int) int {
	r.chain = r.chain[:0]

	tail := r.tail()
	i := idx
	for {
		r.chain = append(r.chain, i)
		if r.entries[i].kind == kindKeyframe {
			break
		}
		if i == tail {
			panic(fmt.Sprintf("rewind: no keyframe reachable from slot %d", idx))
		}
		i = r.ringPrev(i)
	}

	// the last entry in the chain is the keyframe
	copy(r.curState, r.entries[r.chain[len(r.chain)-1]].data)

	// replay deltas forward
	for i := len(r.chain) - 2; i >= 0; i-- {
		xorBuffer(r.curState, r.entries[r.chain[i]].data)
	}

	return len(r.chain)
}

// StepBack moves the rewind position one snapshot into the past and thaws
// the snapshot into the live emulation. The first call after a period of
// normal running activates rewind and thaws the most recent snapshot.
// Stepping at the oldest snapshot is a no-op.
func (r *Rewind) StepBack() {
	if r.count == 0 {
		return
	}

	if !r.active {
		r.active = true
		r.cursor = r.head
	} else {
		if r.cursor == r.tail() {
			// history exhausted
			return
		}
		r.cursor = r.ringPrev(r.cursor)
	}

	r.reconstruct(r.cursor)
	if err := r.core.Unfreeze(r.curState); err != nil {
		logger.Logf("rewind", "thaw failed: %v", err)
	}
}

// Release ends the rewind. Snapshots newer than the rewind position are
// discarded and capture resumes from the rewound state.
func (r *Rewind) Release() {
	if !r.active {
		return
	}

	// discard every slot strictly newer than the cursor
	for i := r.ringNext(r.cursor); i != r.ringNext(r.head); i = r.ringNext(i) {
		r.entries[i].data = nil
	}
	r.count = (r.cursor-r.tail()+r.capacity)%r.capacity + 1
	r.head = r.cursor

	// rebuild prevState from the new head so that the next capture produces
	// a valid delta. the chain length also tells us how many deltas deep
	// the new head is, which keeps the keyframe cadence intact across the
	// release
	n := r.reconstruct(r.head)
	copy(r.prevState, r.curState)
	r.prevValid = true
	r.keyCtr = n - 1

	r.active = false
	r.cursor = -1
	r.frameCtr = 0
}

// IsActive returns true while a rewind is in progress.
func (r *Rewind) IsActive() bool {
	return r.active
}

// Count returns the number of snapshots in the ring.
func (r *Rewind) Count() int {
	return r.count
}

// Position returns the offset of the rewind position from the oldest
// snapshot: 0 is the oldest, Count()-1 the newest. When no rewind is in
// progress the position is that of the most recent snapshot.
func (r *Rewind) Position() int {
	if r.count == 0 {
		return 0
	}

	i := r.head
	if r.active {
		i = r.cursor
	}

	return (i - r.tail() + r.capacity) % r.capacity
}

// StateSize returns the size in bytes of one frozen state.
func (r *Rewind) StateSize() int {
	return r.stateSize
}

func (r *Rewind) String() string {
	return fmt.Sprintf("rewind: %d of %d slots used (state size %d)", r.count, r.capacity, r.stateSize)
}
