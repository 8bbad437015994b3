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
	"bytes"
	"testing"

	"github.com/adriaanm/ezsnes9x/test"
)

// stubCore is a Snapshotter over a small byte buffer that stands in for the
// live emulator state.
type stubCore struct {
	size      int
	state     []byte
	freezeErr error
}

func newStubCore(size int) *stubCore {
	return &stubCore{
		size:  size,
		state: make([]byte, size),
	}
}

func (c *stubCore) FreezeSize() int {
	return c.size
}

func (c *stubCore) Freeze(buf []byte) error {
	if c.freezeErr != nil {
		return c.freezeErr
	}
	copy(buf, c.state)
	return nil
}

func (c *stubCore) Unfreeze(buf []byte) error {
	copy(c.state, buf)
	return nil
}

func (c *stubCore) set(b ...byte) {
	copy(c.state, make([]byte, c.size))
	copy(c.state, b)
}

func TestCaptureAndReconstruct(t *testing.T) {
	core := newStubCore(8)
	r, err := NewRewindWithConfig(core, Config{Capacity: 4, CaptureInterval: 1, KeyframeInterval: 4})
	test.ExpectSuccess(t, err)

	states := [][]byte{
		{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x01, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0x01, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00},
		{0xff, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00},
	}

	for _, s := range states {
		core.set(s...)
		r.Capture()
	}
	test.Equate(t, r.Count(), 4)

	// tail to head: a keyframe followed by three deltas
	test.Equate(t, r.entries[r.tail()].kind == kindKeyframe, true)
	for i := 1; i < 4; i++ {
		idx := (r.tail() + i) % r.capacity
		test.Equate(t, r.entries[idx].kind == kindDelta, true)
	}

	// a delta payload is the XOR of the state against its predecessor
	second := (r.tail() + 1) % r.capacity
	if !bytes.Equal(r.entries[second].data, []byte{0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}) {
		t.Fatalf("unexpected delta payload: %v", r.entries[second].data)
	}

	// stepping back from the head reconstructs the captured states in
	// reverse
	for i := 3; i >= 0; i-- {
		r.StepBack()
		if !bytes.Equal(core.state, states[i]) {
			t.Fatalf("step back to state %d reconstructed %v (wanted %v)", i, core.state, states[i])
		}
	}

	// history is exhausted. another step is a no-op
	r.StepBack()
	if !bytes.Equal(core.state, states[0]) {
		t.Fatalf("step back at the tail changed the state")
	}
}

func TestKeyframeCadence(t *testing.T) {
	core := newStubCore(8)
	r, err := NewRewindWithConfig(core, Config{Capacity: 4, CaptureInterval: 1, KeyframeInterval: 3})
	test.ExpectSuccess(t, err)

	for i := 0; i < 10; i++ {
		core.set(byte(i + 1))
		r.Capture()

		isKey := r.entries[r.head].kind == kindKeyframe
		wantKey := i%3 == 0
		if isKey != wantKey {
			t.Fatalf("capture %d: keyframe=%v (wanted %v)", i, isKey, wantKey)
		}
	}
}

func TestReconstructAcrossWrap(t *testing.T) {
	core := newStubCore(8)
	r, err := NewRewindWithConfig(core, Config{Capacity: 4, CaptureInterval: 1, KeyframeInterval: 3})
	test.ExpectSuccess(t, err)

	// ten captures into a four slot ring. only the last four survive
	for i := 0; i < 10; i++ {
		core.set(byte(i + 1))
		r.Capture()
	}
	test.Equate(t, r.Count(), 4)

	for i := 9; i >= 6; i-- {
		r.StepBack()
		test.Equate(t, core.state[0], byte(i+1))
	}

	// the tail has been reached
	test.Equate(t, r.Position(), 0)
	r.StepBack()
	test.Equate(t, core.state[0], 7)
}

func TestRoundTripEveryPosition(t *testing.T) {
	core := newStubCore(16)
	r, err := NewRewindWithConfig(core, Config{Capacity: 30, CaptureInterval: 1, KeyframeInterval: 5})
	test.ExpectSuccess(t, err)

	var states [][]byte
	for i := 0; i < 30; i++ {
		core.set(byte(i), byte(i*3), 0xaa, byte(255-i))
		states = append(states, append([]byte(nil), core.state...))
		r.Capture()
	}

	// every snapshot in the ring reconstructs to exactly the bytes that
	// were frozen at capture time
	for i := 29; i >= 0; i-- {
		r.StepBack()
		if !bytes.Equal(core.state, states[i]) {
			t.Fatalf("position %d reconstructed %v (wanted %v)", i, core.state, states[i])
		}
	}
}

func TestCaptureInterval(t *testing.T) {
	core := newStubCore(8)
	r, err := NewRewindWithConfig(core, Config{Capacity: 10, CaptureInterval: 3, KeyframeInterval: 3})
	test.ExpectSuccess(t, err)

	// a capture happens once every three frames
	for i := 0; i < 9; i++ {
		r.Capture()
	}
	test.Equate(t, r.Count(), 3)
}

func TestCaptureFailure(t *testing.T) {
	core := newStubCore(8)
	r, err := NewRewindWithConfig(core, Config{Capacity: 10, CaptureInterval: 3, KeyframeInterval: 3})
	test.ExpectSuccess(t, err)

	r.Capture()
	r.Capture()

	// the third frame triggers a capture but the freeze is refused
	core.freezeErr = bytes.ErrTooLarge
	r.Capture()
	test.Equate(t, r.Count(), 0)

	// the capture is retried on the very next frame, not an interval later
	core.freezeErr = nil
	r.Capture()
	test.Equate(t, r.Count(), 1)
}

func TestCaptureDuringRewind(t *testing.T) {
	core := newStubCore(8)
	r, err := NewRewindWithConfig(core, Config{Capacity: 10, CaptureInterval: 1, KeyframeInterval: 3})
	test.ExpectSuccess(t, err)

	for i := 0; i < 5; i++ {
		core.set(byte(i + 1))
		r.Capture()
	}

	r.StepBack()
	test.ExpectSuccess(t, r.IsActive())

	// captures are forbidden while rewinding
	r.Capture()
	r.Capture()
	test.Equate(t, r.Count(), 5)
}

func TestRelease(t *testing.T) {
	core := newStubCore(8)
	r, err := NewRewindWithConfig(core, Config{Capacity: 40, CaptureInterval: 1, KeyframeInterval: 10})
	test.ExpectSuccess(t, err)

	for i := 0; i < 30; i++ {
		core.set(byte(i + 1))
		r.Capture()
	}

	r.StepBack()
	test.ExpectSuccess(t, r.IsActive())
	test.Equate(t, r.Position(), 29)

	for i := 0; i < 28; i++ {
		r.StepBack()
	}
	test.Equate(t, r.Position(), 1)

	cursor := r.cursor
	r.Release()
	test.ExpectFailure(t, r.IsActive())

	// the buffer holds the tail and the snapshot at the former cursor.
	// the head is the former cursor
	test.Equate(t, r.Count(), 2)
	test.Equate(t, r.head, cursor)

	// the capture following a release is a delta against the reconstructed
	// state at the former cursor
	core.set(0x99)
	r.Capture()
	test.Equate(t, r.Count(), 3)
	test.Equate(t, r.entries[r.head].kind == kindDelta, true)

	// and the history is still walkable: state 2, then the tail state 1
	r.StepBack()
	r.StepBack()
	test.Equate(t, core.state[0], 2)
	r.StepBack()
	test.Equate(t, core.state[0], 1)
}

func TestPositionWhenInactive(t *testing.T) {
	core := newStubCore(8)
	r, err := NewRewindWithConfig(core, Config{Capacity: 10, CaptureInterval: 1, KeyframeInterval: 3})
	test.ExpectSuccess(t, err)

	test.Equate(t, r.Position(), 0)

	for i := 0; i < 4; i++ {
		r.Capture()
	}
	test.Equate(t, r.Position(), 3)
}

func TestConfigValidation(t *testing.T) {
	core := newStubCore(8)

	_, err := NewRewindWithConfig(core, Config{Capacity: 2, CaptureInterval: 1, KeyframeInterval: 3})
	test.ExpectFailure(t, err)

	_, err = NewRewindWithConfig(core, Config{Capacity: 10, CaptureInterval: 0, KeyframeInterval: 3})
	test.ExpectFailure(t, err)

	_, err = NewRewindWithConfig(newStubCore(0), Config{Capacity: 10, CaptureInterval: 1, KeyframeInterval: 3})
	test.ExpectFailure(t, err)
}

func TestXorBuffer(t *testing.T) {
	// an odd length exercises both the word loop and the byte remainder
	a := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b}
	b := []byte{0xff, 0x00, 0xff, 0x00, 0xff, 0x00, 0xff, 0x00, 0xff, 0x00, 0xff}

	dst := append([]byte(nil), a...)
	xorBuffer(dst, b)
	for i := range dst {
		test.Equate(t, dst[i], a[i]^b[i])
	}

	// XOR-ing again recovers the original bytes
	xorBuffer(dst, b)
	if !bytes.Equal(dst, a) {
		t.Fatalf("double XOR did not round trip")
	}
}
