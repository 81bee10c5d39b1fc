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

package events

import "fmt"

// WindowEvent is a window lifecycle notification.
type WindowEvent int

// List of valid WindowEvent values.
const (
	WindowResized WindowEvent = iota + 1
	WindowMoved
	WindowCloseRequested
	WindowFocusGained
	WindowFocusLost
)

func (w WindowEvent) String() string {
	switch w {
	case WindowResized:
		return "Resized"
	case WindowMoved:
		return "Moved"
	case WindowCloseRequested:
		return "CloseRequested"
	case WindowFocusGained:
		return "FocusGained"
	case WindowFocusLost:
		return "FocusLost"
	}
	return fmt.Sprintf("WindowEvent(%d)", int(w))
}
