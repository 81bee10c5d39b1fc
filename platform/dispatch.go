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

package platform

import (
	"github.com/nazara-engine/nazara/events"
	"github.com/nazara-engine/nazara/logger"
)

// Handler is implemented by application logic that consumes canonical events.
type Handler interface {
	HandleEvent(ev events.Event) error
}

// HandlerFunc allows an ordinary function to be used as a Handler.
type HandlerFunc func(ev events.Event) error

// HandleEvent implements the Handler interface.
func (f HandlerFunc) HandleEvent(ev events.Event) error {
	return f(ev)
}

// Dispatcher normalises raw events and hands the result to a Handler.
type Dispatcher[T any] struct {
	norm    Normaliser[T]
	handler Handler

	// log unrecognised events if the permission allows. the raw event is
	// formatted with the %v verb
	logUnrecognised logger.Permission
}

// NewDispatcher is the preferred method of initialisation for the Dispatcher
// type.
func NewDispatcher[T any](norm Normaliser[T], handler Handler) *Dispatcher[T] {
	return &Dispatcher[T]{
		norm:    norm,
		handler: handler,
	}
}

// LogUnrecognised sets the permission that decides whether unrecognised
// events are logged. A nil permission stops logging. The permission is
// consulted for every unrecognised event so it can be a preference value that
// changes while the program is running.
func (d *Dispatcher[T]) LogUnrecognised(perm logger.Permission) {
	d.logUnrecognised = perm
}

// Dispatch normalises the raw event and passes it to the handler. The
// canonical event is returned along with any error from the handler.
func (d *Dispatcher[T]) Dispatch(raw T) (events.Event, error) {
	ev := d.norm.Normalise(raw)
	if ev == nil {
		ev = events.Unrecognised
	}

	if events.IsUnrecognised(ev) && d.logUnrecognised != nil {
		logger.Logf(d.logUnrecognised, "dispatch", "unrecognised: %v", raw)
	}

	if d.handler == nil {
		return ev, nil
	}
	return ev, d.handler.HandleEvent(ev)
}
