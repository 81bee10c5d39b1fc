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

// Package sound decodes WAV and MP3 sources into 16 bit PCM data suitable for
// queueing to an audio device.
//
// The decoded data is always signed 16 bit and interleaved. Source data with
// a different bit depth is scaled to 16 bits. The number of channels and the
// sample rate of the source are preserved.
package sound
