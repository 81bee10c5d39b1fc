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

// Package paths contains functions to prepare paths for files kept in the
// Nazara resource directory, for example the prefs file.
//
// When built with the release tag the resource directory is the "nazara"
// directory in the user's configuration directory as returned by
// os.UserConfigDir(). Otherwise the resource directory is ".nazara" in the
// current working directory. This allows development builds to be run
// without disturbing the configuration of an installed release.
//
// ResourcePath() creates the directories it needs. The file itself is never
// created.
package paths
