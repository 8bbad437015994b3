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

// Package sdlaudio plays the core's sample stream through an SDL audio
// queue.
package sdlaudio

import (
	"github.com/adriaanm/ezsnes9x/curated"
	"github.com/adriaanm/ezsnes9x/hardware"

	"github.com/veandco/go-sdl2/sdl"
)

// if the queue grows beyond this many bytes the incoming samples are
// dropped. the queue only grows when the frame loop runs faster than the
// sound device drains, and unbounded growth means unbounded latency.
const maxQueuedBytes = 32768

// Audio outputs sound using SDL.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// sample words converted to bytes, reused between calls
	scratch []byte
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() (*Audio, error) {
	aud := &Audio{}

	err := sdl.InitSubSystem(sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}

	spec := &sdl.AudioSpec{
		Freq:     hardware.AudioSampleFreq,
		Format:   sdl.AUDIO_S16LSB,
		Channels: 2,
		Samples:  512,
	}

	var actualSpec sdl.AudioSpec
	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, curated.Errorf("sdlaudio: %v", err)
	}
	aud.spec = actualSpec

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// SetAudio implements the hardware.AudioMixer interface.
func (aud *Audio) SetAudio(samples []int16) error {
	if sdl.GetQueuedAudioSize(aud.id) > maxQueuedBytes {
		return nil
	}

	if len(aud.scratch) < len(samples)*2 {
		aud.scratch = make([]byte, len(samples)*2)
	}

	for i, s := range samples {
		aud.scratch[i*2] = byte(s)
		aud.scratch[i*2+1] = byte(uint16(s) >> 8)
	}

	err := sdl.QueueAudio(aud.id, aud.scratch[:len(samples)*2])
	if err != nil {
		return curated.Errorf("sdlaudio: %v", err)
	}

	return nil
}

// EndMixing implements the hardware.AudioMixer interface.
func (aud *Audio) EndMixing() error {
	sdl.CloseAudioDevice(aud.id)
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
	return nil
}
