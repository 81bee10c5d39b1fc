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

// Package x11window opens a window on an X server and delivers the events it
// receives, normalised to canonical events, to a platform.Handler.
package x11window

import (
	"context"
	"io"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xkb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xcursor"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/BurntSushi/xgbutil/xwindow"

	"github.com/nazara-engine/nazara/curated"
	"github.com/nazara-engine/nazara/events"
	"github.com/nazara-engine/nazara/gui"
	"github.com/nazara-engine/nazara/logger"
	"github.com/nazara-engine/nazara/platform"
	"github.com/nazara-engine/nazara/platform/x11events"
)

// Sentinel error patterns for the x11window package.
const (
	ConnectionError = "x11window: connection: %v"
	WindowError     = "x11window: window: %v"
)

const logTag = "x11window"

const eventMask = xproto.EventMaskStructureNotify |
	xproto.EventMaskFocusChange |
	xproto.EventMaskPointerMotion |
	xproto.EventMaskButtonPress |
	xproto.EventMaskButtonRelease |
	xproto.EventMaskKeyPress |
	xproto.EventMaskKeyRelease

// Window is a top level X11 window.
type Window struct {
	xu  *xgbutil.XUtil
	win *xwindow.Window
	km  *x11events.KMap

	prf  *gui.Preferences
	disp *platform.Dispatcher[x11events.Raw]
	dump io.Writer

	// the last known geometry of the window
	geometry x11events.Geometry

	// keys currently held down
	held x11events.Held

	closeOnce sync.Once
}

// NewWindow is the preferred method of initialisation for the Window type. The
// X server is named by the DISPLAY environment variable.
func NewWindow(title string, prf *gui.Preferences, handler platform.Handler, dump io.Writer) (*Window, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, curated.Errorf(ConnectionError, err)
	}

	wnd := &Window{
		xu:   xu,
		prf:  prf,
		dump: dump,
	}

	wnd.km, err = x11events.NewKMap(xu.Conn())
	if err != nil {
		wnd.Destroy()
		return nil, curated.Errorf(ConnectionError, err)
	}

	// auto-repeated keys are still seen as key presses but without the
	// intervening key release
	if err := detectableRepeat(xu.Conn()); err != nil {
		logger.Logf(logger.Allow, logTag, "key repeat will not be filtered: %v", err)
	}

	var atoms x11events.Atoms
	atoms.WMProtocols, err = xprop.Atm(xu, "WM_PROTOCOLS")
	if err != nil {
		wnd.Destroy()
		return nil, curated.Errorf(ConnectionError, err)
	}
	atoms.WMDeleteWindow, err = xprop.Atm(xu, "WM_DELETE_WINDOW")
	if err != nil {
		wnd.Destroy()
		return nil, curated.Errorf(ConnectionError, err)
	}

	wnd.win, err = xwindow.Generate(xu)
	if err != nil {
		wnd.Destroy()
		return nil, curated.Errorf(WindowError, err)
	}

	wnd.geometry = x11events.Geometry{Width: 640, Height: 480}
	wnd.win.Create(xu.RootWin(), 0, 0, wnd.geometry.Width, wnd.geometry.Height,
		xproto.CwBackPixel|xproto.CwEventMask, 0x1a1a26, eventMask)

	err = icccm.WmNameSet(xu, wnd.win.Id, title)
	if err != nil {
		wnd.Destroy()
		return nil, curated.Errorf(WindowError, err)
	}

	// without WM_DELETE_WINDOW in WM_PROTOCOLS the window manager will kill
	// the connection rather than ask for the window to be closed
	err = icccm.WmProtocolsSet(xu, wnd.win.Id, []string{"WM_DELETE_WINDOW"})
	if err != nil {
		wnd.Destroy()
		return nil, curated.Errorf(WindowError, err)
	}

	cursor, err := xcursor.CreateCursor(xu, xcursor.Crosshair)
	if err == nil {
		xproto.ChangeWindowAttributes(xu.Conn(), wnd.win.Id, xproto.CwCursor, []uint32{uint32(cursor)})
	}

	wnd.win.Map()

	wnd.disp = platform.NewDispatcher[x11events.Raw](x11events.NewNormaliser(wnd.km, atoms), handler)
	wnd.disp.LogUnrecognised(&prf.LogUnrecognised)

	return wnd, nil
}

// detectableRepeat puts the connection into the XKB detectable auto-repeat
// mode.
func detectableRepeat(conn *xgb.Conn) error {
	if err := xkb.Init(conn); err != nil {
		return err
	}

	ext, err := xkb.UseExtension(conn, 1, 0).Reply()
	if err != nil {
		return err
	}
	if !ext.Supported {
		return curated.Errorf(ConnectionError, "XKB 1.0 not supported")
	}

	const flag = xkb.PerClientFlagDetectableAutoRepeat
	rep, err := xkb.PerClientFlags(conn, xkb.IdUseCoreKbd, flag, flag, 0, 0, 0).Reply()
	if err != nil {
		return err
	}
	if rep.Value&flag == 0 {
		return curated.Errorf(ConnectionError, "detectable auto-repeat not supported")
	}

	return nil
}

// Destroy the window and close the connection to the X server. It is safe to
// call Destroy() more than once or concurrently with Run().
func (wnd *Window) Destroy() {
	wnd.closeOnce.Do(func() {
		if wnd.win != nil {
			wnd.win.Destroy()
		}
		wnd.xu.Conn().Close()
	})
}

// Run implements the gui.Host interface. Returns when the window is asked to
// close, when the window is destroyed, when the context is done, or when the
// handler returns an error.
func (wnd *Window) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	// waiting for an event can't be interrupted except by closing the
	// connection
	go func() {
		select {
		case <-ctx.Done():
			wnd.Destroy()
		case <-done:
		}
	}()

	conn := wnd.xu.Conn()
	for {
		ev, xerr := conn.WaitForEvent()
		if ev == nil && xerr == nil {
			logger.Log(logger.Allow, logTag, "connection closed")
			return nil
		}
		if xerr != nil {
			logger.Logf(logger.Allow, logTag, "%v", xerr)
			continue
		}

		wnd.prf.Dump(wnd.dump, ev)

		switch ev := ev.(type) {
		case xproto.MappingNotifyEvent:
			if ev.Request == xproto.MappingKeyboard {
				if err := wnd.km.ReadMapping(); err != nil {
					logger.Log(logger.Allow, logTag, err)
				}
			}
		case xproto.DestroyNotifyEvent:
			if ev.Window == wnd.win.Id {
				logger.Log(logger.Allow, logTag, "window destroyed")
				return nil
			}
		}

		raw := x11events.Raw{Event: ev, Geometry: wnd.geometry, Repeat: wnd.held.Repeat(ev)}
		wnd.geometry = x11events.Track(raw)

		cev, err := wnd.disp.Dispatch(raw)
		if err != nil {
			return err
		}

		if w, ok := cev.(events.EventWindow); ok && w.Window == events.WindowCloseRequested {
			logger.Log(logger.Allow, logTag, "close requested")
			return nil
		}
	}
}
