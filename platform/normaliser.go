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

import "github.com/nazara-engine/nazara/events"

// Normaliser converts a raw backend event of type T into a canonical event.
// Implementations must be total and deterministic: every value of T,
// including the zero value, produces an event and the same value always
// produces the same event.
type Normaliser[T any] interface {
	Normalise(raw T) events.Event
}

// NormaliserFunc allows an ordinary function to be used as a Normaliser.
type NormaliserFunc[T any] func(raw T) events.Event

// Normalise implements the Normaliser interface.
func (f NormaliserFunc[T]) Normalise(raw T) events.Event {
	ev := f(raw)
	if ev == nil {
		return events.Unrecognised
	}
	return ev
}
