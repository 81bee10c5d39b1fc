// This file is part of Nazara.
//
// Nazara is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Nazara is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Nazara.  If not, see <https://www.gnu.org/licenses/>.

// Package sdlwindow opens an SDL window and delivers the events it receives,
// normalised to canonical events, to a platform.Handler.
package sdlwindow

import (
	"context"
	"io"
	"runtime"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/nazara-engine/nazara/curated"
	"github.com/nazara-engine/nazara/events"
	"github.com/nazara-engine/nazara/gui"
	"github.com/nazara-engine/nazara/logger"
	"github.com/nazara-engine/nazara/platform"
	"github.com/nazara-engine/nazara/platform/sdlevents"
)

// Sentinel error patterns for the sdlwindow package.
const (
	InitError   = "sdlwindow: initialisation: %v"
	WindowError = "sdlwindow: window: %v"
)

const logTag = "sdlwindow"

// how long to wait for an event before checking the context
const waitTimeout = 50

// Window is an SDL window with an OpenGL context.
type Window struct {
	window    *sdl.Window
	glContext sdl.GLContext

	prf  *gui.Preferences
	disp *platform.Dispatcher[sdlevents.Raw]

	// raw events are dumped here
	dump io.Writer
}

// NewWindow is the preferred method of initialisation for the Window type. It
// must be called from the main thread and the window must be used only from
// the main thread.
//
// The audio subsystem is initialised along with the video subsystem.
func NewWindow(title string, prf *gui.Preferences, handler platform.Handler, dump io.Writer) (*Window, error) {
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf(InitError, err)
	}

	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	_ = sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	wnd := &Window{
		prf:  prf,
		dump: dump,
	}

	wnd.window, err = sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, 640, 480,
		sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(WindowError, err)
	}

	wnd.glContext, err = wnd.window.GLCreateContext()
	if err != nil {
		wnd.Destroy()
		return nil, curated.Errorf(WindowError, err)
	}

	err = wnd.window.GLMakeCurrent(wnd.glContext)
	if err != nil {
		wnd.Destroy()
		return nil, curated.Errorf(WindowError, err)
	}

	err = gl.Init()
	if err != nil {
		wnd.Destroy()
		return nil, curated.Errorf(InitError, err)
	}
	logger.Logf(logger.Allow, logTag, "OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	_ = sdl.GLSetSwapInterval(1)

	wnd.disp = platform.NewDispatcher[sdlevents.Raw](sdlevents.Normaliser{}, handler)
	wnd.disp.LogUnrecognised(&prf.LogUnrecognised)

	return wnd, nil
}

// Destroy the window and quit SDL.
func (wnd *Window) Destroy() {
	if wnd.glContext != nil {
		sdl.GLDeleteContext(wnd.glContext)
		wnd.glContext = nil
	}
	if wnd.window != nil {
		_ = wnd.window.Destroy()
		wnd.window = nil
	}
	sdl.Quit()
}

// Run implements the gui.Host interface. Returns when the window is asked to
// close, on SDL quit, when the context is done, or when the handler returns an
// error.
func (wnd *Window) Run(ctx context.Context) error {
	wnd.render()

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		ev := sdl.WaitEventTimeout(waitTimeout)
		for ; ev != nil; ev = sdl.PollEvent() {
			wnd.prf.Dump(wnd.dump, ev)

			if _, ok := ev.(*sdl.QuitEvent); ok {
				logger.Log(logger.Allow, logTag, "quit")
				return nil
			}

			cev, err := wnd.disp.Dispatch(sdlevents.Capture(ev))
			if err != nil {
				return err
			}

			if w, ok := cev.(events.EventWindow); ok {
				switch w.Window {
				case events.WindowCloseRequested:
					logger.Log(logger.Allow, logTag, "close requested")
					return nil
				case events.WindowResized:
					wnd.render()
				}
			}
		}

		wnd.render()
	}
}

// render clears the drawable area of the window.
func (wnd *Window) render() {
	w, h := wnd.window.GLGetDrawableSize()
	gl.Viewport(0, 0, w, h)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	wnd.window.GLSwap()
}
