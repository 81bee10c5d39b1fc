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

// Package statsview runs a web server showing live runtime statistics
// (goroutines, heap, GC pauses) of the running program. It is useful when
// checking that a host event loop does not allocate on every event.
//
// The server is only compiled in when the statsview build tag is given:
//
//	go build -tags statsview .
//
// Without the tag Available() returns false and Launch() does nothing.
package statsview
