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

// ButtonKind distinguishes the three named mouse buttons from auxiliary
// buttons.
type ButtonKind int

// List of valid ButtonKind values.
const (
	ButtonLeft ButtonKind = iota + 1
	ButtonRight
	ButtonMiddle
	ButtonOther
)

// MouseButton identifies a mouse button. For ButtonOther the Index field is
// the button number reported by the backend; it is never renumbered. Index is
// zero for the named buttons.
type MouseButton struct {
	Kind  ButtonKind
	Index uint16
}

// The named mouse buttons.
var (
	MouseLeft   = MouseButton{Kind: ButtonLeft}
	MouseRight  = MouseButton{Kind: ButtonRight}
	MouseMiddle = MouseButton{Kind: ButtonMiddle}
)

// MouseOther returns the MouseButton for an auxiliary button with the backend
// button number n.
func MouseOther(n uint16) MouseButton {
	return MouseButton{Kind: ButtonOther, Index: n}
}

func (b MouseButton) String() string {
	switch b.Kind {
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonMiddle:
		return "Middle"
	case ButtonOther:
		return fmt.Sprintf("Other(%d)", b.Index)
	}
	return "NoButton"
}

// MouseEvent is either a MouseButtonEvent or a MouseMoved value.
type MouseEvent interface {
	fmt.Stringer
	isMouseEvent()
}

// MouseButtonEvent is a press or release of a mouse button.
type MouseButtonEvent struct {
	Button MouseButton
	State  State
}

func (MouseButtonEvent) isMouseEvent() {}

func (ev MouseButtonEvent) String() string {
	return fmt.Sprintf("Button{%s, %s}", ev.Button, ev.State)
}

// MouseMoved notifies that the cursor has moved. X and Y are the cursor
// position relative to the window in the backend's pixel coordinates.
type MouseMoved struct {
	X, Y int
}

func (MouseMoved) isMouseEvent() {}

func (ev MouseMoved) String() string {
	return fmt.Sprintf("Moved{%d, %d}", ev.X, ev.Y)
}
