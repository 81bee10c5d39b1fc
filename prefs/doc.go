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

// Package prefs stores and persists preference values. A preference is one of
// the types Bool, String, Int or Generic. Preferences are added to a Disk
// instance with a key and are saved to and loaded from a single file.
//
// The file format is a warning line followed by one preference per line:
//
//	viewer.logunrecognised :: true
//	audio.device ::
//
// More than one Disk instance can point to the same file. Saving a Disk only
// replaces the keys that the Disk knows about and leaves every other line in
// the file untouched.
//
// Values on the command line can override the values in the file. See
// PushCommandLineStack().
//
// Watch() reloads a Disk whenever the file changes on disk, which allows a
// running viewer to pick up changes made with a text editor.
package prefs
