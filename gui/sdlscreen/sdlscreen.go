// This file is part of Splitloop.
//
// Splitloop is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Splitloop is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Splitloop.  If not, see <https://www.gnu.org/licenses/>.

// Package sdlscreen is the SDL implementation of the gui.Screen interface.
//
// SDL requires that window and event handling happen on the main OS thread.
// Every function in this package MUST only be called from the #mainthread.
package sdlscreen

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/splitloop/curated"
	"github.com/jetsetilly/splitloop/version"
)

const pixelDepth = 4

// default scaling applied to the window. the texture itself is always the
// size of the frame
const windowScale = 2

// Screen is the SDL window, renderer and streaming texture that frames are
// blitted to.
type Screen struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// geometry of every frame written to the texture. window size is this,
	// scaled
	width  int32
	height int32
}

// NewScreen is the preferred method of initialisation for the Screen type.
//
// MUST ONLY be called from the #mainthread.
func NewScreen() (*Screen, error) {
	scr := &Screen{}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf("sdlscreen: %v", err)
	}

	// window size is set in the Resize() function
	scr.window, err = sdl.CreateWindow(version.ApplicationName,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		0, 0,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		return nil, curated.Errorf("sdlscreen: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlscreen: %v", err)
	}

	// window is shown on the first Resize()

	return scr, nil
}

// Resize implements the gui.Screen interface.
func (scr *Screen) Resize(width int, height int) error {
	scr.width = int32(width)
	scr.height = int32(height)

	// texture is the same size as the frame. the renderer scales it to
	// whatever size the window is
	var err error
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		scr.width, scr.height)
	if err != nil {
		return curated.Errorf("sdlscreen: %v", err)
	}

	scr.window.SetSize(scr.width*windowScale, scr.height*windowScale)
	scr.window.Show()

	return nil
}

// WriteFrame implements the gui.Screen interface.
func (scr *Screen) WriteFrame(pix []byte) error {
	err := scr.texture.Update(nil, pix, int(scr.width*pixelDepth))
	if err != nil {
		return curated.Errorf("sdlscreen: %v", err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf("sdlscreen: %v", err)
	}

	return nil
}

// Present implements the gui.Screen interface.
func (scr *Screen) Present() error {
	scr.renderer.Present()
	return nil
}

// Destroy implements the gui.Screen interface.
func (scr *Screen) Destroy() {
	if scr.texture != nil {
		_ = scr.texture.Destroy()
	}
	if scr.renderer != nil {
		_ = scr.renderer.Destroy()
	}
	if scr.window != nil {
		_ = scr.window.Destroy()
	}
	sdl.Quit()
}
