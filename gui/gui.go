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

// Package gui contains the parts of the event viewer that are common to every
// window backend. The backends themselves are in the sub-packages.
package gui

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/davecgh/go-spew/spew"

	"github.com/nazara-engine/nazara/events"
)

// Host is implemented by the window backends. Run() delivers canonical events
// until the window is closed or the context is done. It must be called from
// the main thread.
type Host interface {
	Run(ctx context.Context) error
}

// Printer is a platform.Handler that writes every canonical event to an
// io.Writer. Unrecognised events are not written.
type Printer struct {
	crit  sync.Mutex
	w     io.Writer
	count int

	closeRequested bool
}

// NewPrinter is the preferred method of initialisation for the Printer type.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// HandleEvent implements the platform.Handler interface.
func (p *Printer) HandleEvent(ev events.Event) error {
	p.crit.Lock()
	defer p.crit.Unlock()

	if events.IsUnrecognised(ev) {
		return nil
	}

	if w, ok := ev.(events.EventWindow); ok && w.Window == events.WindowCloseRequested {
		p.closeRequested = true
	}

	p.count++
	_, err := fmt.Fprintf(p.w, "%04d %s\n", p.count, ev)
	return err
}

// CloseRequested returns true once a CloseRequested event has been handled.
func (p *Printer) CloseRequested() bool {
	p.crit.Lock()
	defer p.crit.Unlock()
	return p.closeRequested
}

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Dump writes a detailed representation of a raw backend event if the
// DumpRaw preference is set.
func (p *Preferences) Dump(w io.Writer, raw any) {
	if !p.DumpRaw.Get().(bool) {
		return
	}
	dumper.Fdump(w, raw)
}
