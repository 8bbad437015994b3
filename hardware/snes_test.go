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

package hardware_test

import (
	"bytes"
	"testing"

	"github.com/adriaanm/ezsnes9x/hardware"
	"github.com/adriaanm/ezsnes9x/hardware/controllers"
	"github.com/adriaanm/ezsnes9x/hardware/memory"
	"github.com/adriaanm/ezsnes9x/hardware/nullcore"
	"github.com/adriaanm/ezsnes9x/test"
)

func TestFrameLoop(t *testing.T) {
	snes := hardware.NewSNES(nullcore.NewNullCore())

	// the test program polls the joypads through auto-read every frame
	mask := controllers.ButtonRight | controllers.ButtonB
	snes.Controllers.SetJoypadButtons(0, mask)
	test.ExpectSuccess(t, snes.RunFrame())

	test.Equate(t, snes.MMIO.PeekWord(memory.JOY1L), mask)
	test.Equate(t, snes.MMIO.PeekWord(memory.JOY3L), 0)
}

func TestFreezeRoundTrip(t *testing.T) {
	snes := hardware.NewSNES(nullcore.NewNullCore())

	snes.Controllers.SetJoypadButtons(0, controllers.ButtonRight)
	for i := 0; i < 5; i++ {
		test.ExpectSuccess(t, snes.RunFrame())
	}

	frozen := make([]byte, snes.Core.FreezeSize())
	test.ExpectSuccess(t, snes.Core.Freeze(frozen))

	for i := 0; i < 5; i++ {
		test.ExpectSuccess(t, snes.RunFrame())
	}

	later := make([]byte, snes.Core.FreezeSize())
	test.ExpectSuccess(t, snes.Core.Freeze(later))
	if bytes.Equal(frozen, later) {
		t.Fatalf("state did not advance between freezes")
	}

	// thawing the earlier state rewinds the machine exactly
	test.ExpectSuccess(t, snes.Core.Unfreeze(frozen))
	again := make([]byte, snes.Core.FreezeSize())
	test.ExpectSuccess(t, snes.Core.Freeze(again))
	if !bytes.Equal(frozen, again) {
		t.Fatalf("freeze after unfreeze does not match the original state")
	}
}

func TestFrameSize(t *testing.T) {
	snes := hardware.NewSNES(nullcore.NewNullCore())

	w, h := snes.FrameSize()
	test.Equate(t, w, 256)
	test.Equate(t, h, 224)

	snes.SetFrameSize(512, 448)
	w, h = snes.FrameSize()
	test.Equate(t, w, 512)
	test.Equate(t, h, 448)
}
