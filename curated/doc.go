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

// Package curated is a helper package for the plain Go error type. Curated
// errors are created with Errorf() which takes a formatting pattern and
// placeholder values, similar to fmt.Errorf().
//
// The pattern of a curated error identifies it. Is() checks whether an error
// was created with a specific pattern and Has() checks whether the pattern
// occurs anywhere in the chain of wrapped curated errors. Patterns that
// callers are expected to test for should be declared as exported constants
// next to the function that returns them. For example:
//
//	const NoOutputDevice = "sdlaudio: no output device: %v"
//
//	if curated.Is(err, sdlaudio.NoOutputDevice) {
//		// continue without sound
//	}
//
// The Error() implementation normalises the message chain by removing
// duplicate adjacent parts. Chain parts are separated by the sub-string ": ".
// This means that wrapping an error with the same prefix more than once does
// not result in a message like:
//
//	sound: sound: file not found
package curated
