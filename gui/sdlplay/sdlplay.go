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

// Package sdlplay is a simple SDL implementation of the playmode.GUI
// interface: one window showing the core's framebuffer, with the keyboard
// standing in for the first joypad.
package sdlplay

import (
	"fmt"

	"github.com/adriaanm/ezsnes9x/curated"
	"github.com/adriaanm/ezsnes9x/logger"
	"github.com/adriaanm/ezsnes9x/version"

	"github.com/veandco/go-sdl2/sdl"
)

// two bytes per RGB565 pixel.
const pixelDepth = 2

// SdlPlay is a simple SDL implementation of the playmode.GUI interface.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// dimensions of the texture currently allocated. the texture is
	// recreated whenever the core reports a new resolution
	width  int32
	height int32

	// the amount of scaling applied to the window relative to the
	// framebuffer
	scale int32

	// pixels is the byte array we copy to the texture every frame
	pixels []byte

	keys keymap
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay
// type.
//
// Must be called from the main thread.
func NewSdlPlay(scale int) (*SdlPlay, error) {
	scr := &SdlPlay{
		scale: int32(scale),
		keys:  newKeymap(),
	}

	if scr.scale < 1 {
		scr.scale = 2
	}

	err := sdl.InitSubSystem(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// window size is set by the first call to resize()
	scr.window, err = sdl.CreateWindow(version.ApplicationName,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		0, 0,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	return scr, nil
}

// resize the texture and window for a new framebuffer resolution.
func (scr *SdlPlay) resize(w, h int32) error {
	if scr.texture != nil {
		_ = scr.texture.Destroy()
	}

	var err error
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_RGB565),
		int(sdl.TEXTUREACCESS_STREAMING), w, h)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	scr.width = w
	scr.height = h
	scr.pixels = make([]byte, w*h*pixelDepth)

	scr.window.SetSize(w*scr.scale, h*scr.scale)
	scr.window.Show()

	logger.Logf("sdlplay", "window resized to %dx%d (scale %d)", w, h, scr.scale)

	return nil
}

// SetFrame implements the playmode.GUI interface.
func (scr *SdlPlay) SetFrame(pixels []uint16, w, h int) error {
	if len(pixels) < w*h || w <= 0 || h <= 0 {
		return nil
	}

	if int32(w) != scr.width || int32(h) != scr.height {
		err := scr.resize(int32(w), int32(h))
		if err != nil {
			return err
		}
	}

	for i, p := range pixels[:w*h] {
		scr.pixels[i*2] = byte(p)
		scr.pixels[i*2+1] = byte(p >> 8)
	}

	err := scr.texture.Update(nil, scr.pixels, int(scr.width)*pixelDepth)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer.Present()

	return nil
}

// setTitle annotates the window title with the rewind position.
func (scr *SdlPlay) setTitle(rewinding bool, pos int, depth int) {
	if rewinding {
		scr.window.SetTitle(fmt.Sprintf("%s [rewind %d/%d]", version.ApplicationName, pos+1, depth))
	} else {
		scr.window.SetTitle(version.ApplicationName)
	}
}

// Destroy implements the playmode.GUI interface.
//
// Must be called from the main thread.
func (scr *SdlPlay) Destroy() {
	if scr.texture != nil {
		_ = scr.texture.Destroy()
	}
	if scr.renderer != nil {
		_ = scr.renderer.Destroy()
	}
	if scr.window != nil {
		_ = scr.window.Destroy()
	}
	sdl.QuitSubSystem(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
}
